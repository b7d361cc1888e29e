package domain

// Persisted collections. The values double as storage keys.
const (
	FieldFavorites = "favorites"
	FieldCartItems = "cartItems"
)

// ChangeTracker records which persisted collections a mutation touched so
// the store rewrites only those keys.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirtyFields: make(map[string]bool)}
}

func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

func (ct *ChangeTracker) Clear() {
	ct.dirtyFields = make(map[string]bool)
}

func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}
