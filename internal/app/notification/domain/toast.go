package domain

import "time"

// DefaultDuration is how long a toast lives unless it sets its own duration.
const DefaultDuration = 5 * time.Second

// Kind is the severity of a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Action names the surface a toast links to.
type Action string

const (
	ActionNone     Action = ""
	ActionCart     Action = "cart"
	ActionWishlist Action = "wishlist"
)

// ProductRef is the product snapshot shown next to a toast.
type ProductRef struct {
	Name  string
	Image string
}

// Toast is a transient notification describing the result of a mutation.
type Toast struct {
	ID        string
	Kind      Kind
	Title     string
	Message   string
	Duration  time.Duration
	Action    Action
	Product   *ProductRef
	CreatedAt time.Time
}

// Lifetime returns the toast's duration, falling back to DefaultDuration.
func (t Toast) Lifetime() time.Duration {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}
