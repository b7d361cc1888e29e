// Package selection is the per-device shopping state: wishlist, cart and
// compare list. Every mutation runs under the store's lock, raises its
// toasts and rewrites the persisted collections it touched.
package selection

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	catalogcontracts "github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	checkout "github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/notification"
	"github.com/light-bringer/storefront-service/internal/app/selection/contracts"
	"github.com/light-bringer/storefront-service/internal/app/selection/domain"
)

// StoreOptions wires a Store.
type StoreOptions struct {
	Catalog catalogcontracts.CatalogReader
	Storage contracts.Storage
	Toasts  *notification.Queue
	Logger  *slog.Logger
}

// Store serializes all mutations of one device's Selection.
type Store struct {
	mu      sync.Mutex
	catalog catalogcontracts.CatalogReader
	storage contracts.Storage
	toasts  *notification.Queue
	logger  *slog.Logger
	sel     *domain.Selection
}

// Snapshot is a point-in-time copy of a Store.
type Snapshot struct {
	Wishlist []string
	Cart     []domain.CartLine
	Compare  []*catalog.Product
}

// NewStore restores the wishlist and cart from storage. Missing or corrupt
// values start empty.
func NewStore(ctx context.Context, opts StoreOptions) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		catalog: opts.Catalog,
		storage: opts.Storage,
		toasts:  opts.Toasts,
		logger:  logger,
	}

	favorites := s.loadFavorites(ctx)
	cart := s.loadCart(ctx)
	s.sel = domain.ReconstructSelection(favorites, cart)

	return s
}

// Toasts returns the store's notification queue.
func (s *Store) Toasts() *notification.Queue {
	return s.toasts
}

// ToggleWishlist flips id in the wishlist. Unknown ids are ignored.
func (s *Store) ToggleWishlist(ctx context.Context, id string) {
	p, ok := s.catalog.Product(id)
	if !ok {
		return
	}
	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.ToggleWishlist(p)
		return nil
	})
}

// AddToCart adds one unit of id. Unknown ids are ignored.
func (s *Store) AddToCart(ctx context.Context, id string) {
	p, ok := s.catalog.Product(id)
	if !ok {
		return
	}

	brandName := ""
	if b, ok := s.catalog.Brand(p.Brand()); ok {
		brandName = b.Name
	}

	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.AddToCart(p, brandName)
		return nil
	})
}

// UpdateCartQuantity sets the quantity of id's line. Zero removes the line.
func (s *Store) UpdateCartQuantity(ctx context.Context, id string, quantity int) error {
	return s.mutate(ctx, func(sel *domain.Selection) error {
		return sel.UpdateCartQuantity(id, quantity)
	})
}

// RemoveFromCart deletes id's line if present.
func (s *Store) RemoveFromCart(ctx context.Context, id string) {
	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.RemoveFromCart(id)
		return nil
	})
}

// ClearCart empties the cart without raising a toast.
func (s *Store) ClearCart(ctx context.Context) {
	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.ClearCart()
		return nil
	})
}

// RemoveOrdered drops the ordered quantities from the cart without raising a
// toast.
func (s *Store) RemoveOrdered(ctx context.Context, lines []domain.CartLine) {
	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.RemoveOrdered(lines)
		return nil
	})
}

// AddToCompare appends id to the compare list. Unknown ids are ignored.
func (s *Store) AddToCompare(ctx context.Context, id string) {
	p, ok := s.catalog.Product(id)
	if !ok {
		return
	}
	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.AddToCompare(p)
		return nil
	})
}

// RemoveFromCompare drops id from the compare list.
func (s *Store) RemoveFromCompare(ctx context.Context, id string) {
	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.RemoveFromCompare(id)
		return nil
	})
}

// ClearCompare empties the compare list.
func (s *Store) ClearCompare(ctx context.Context) {
	_ = s.mutate(ctx, func(sel *domain.Selection) error {
		sel.ClearCompare()
		return nil
	})
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Wishlist: s.sel.Wishlist(),
		Cart:     s.sel.Cart(),
		Compare:  s.sel.Compare(),
	}
}

// CartLines returns the cart lines.
func (s *Store) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Cart()
}

// CartSummary prices the cart without a coupon.
func (s *Store) CartSummary() checkout.Totals {
	return checkout.ComputeTotals(s.CartLines(), nil)
}

// WishlistProducts resolves the wishlist against the catalog in catalog
// order. Ids no longer in the catalog are skipped.
func (s *Store) WishlistProducts() []*catalog.Product {
	s.mu.Lock()
	wished := make(map[string]bool)
	for _, id := range s.sel.Wishlist() {
		wished[id] = true
	}
	s.mu.Unlock()

	var out []*catalog.Product
	for _, p := range s.catalog.Products() {
		if wished[p.ID()] {
			out = append(out, p)
		}
	}
	return out
}

// Flush rewrites both persisted collections.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sel.Changes().MarkDirty(domain.FieldFavorites)
	s.sel.Changes().MarkDirty(domain.FieldCartItems)
	return s.persist(ctx)
}

func (s *Store) mutate(ctx context.Context, fn func(sel *domain.Selection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.sel); err != nil {
		s.sel.ClearEvents()
		s.sel.Changes().Clear()
		return err
	}

	if err := s.persist(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to persist selection", slog.Any("error", err))
	}
	s.notify()
	return nil
}

// persist writes the dirty collections. Every key is attempted even if an
// earlier one fails.
func (s *Store) persist(ctx context.Context) error {
	changes := s.sel.Changes()
	defer changes.Clear()

	var errs []error
	if changes.Dirty(domain.FieldFavorites) {
		if data, err := EncodeFavorites(s.sel.Wishlist()); err != nil {
			errs = append(errs, err)
		} else if err := s.storage.Save(ctx, domain.FieldFavorites, data); err != nil {
			errs = append(errs, err)
		}
	}
	if changes.Dirty(domain.FieldCartItems) {
		if data, err := EncodeCart(s.sel.Cart()); err != nil {
			errs = append(errs, err)
		} else if err := s.storage.Save(ctx, domain.FieldCartItems, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) notify() {
	defer s.sel.ClearEvents()
	if s.toasts == nil {
		return
	}
	for _, event := range s.sel.DomainEvents() {
		if toast, ok := toastFor(event); ok {
			s.toasts.Push(toast)
		}
	}
}

func (s *Store) loadFavorites(ctx context.Context) []string {
	data, ok := s.load(ctx, domain.FieldFavorites)
	if !ok {
		return nil
	}
	ids, err := DecodeFavorites(data)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt favorites", slog.Any("error", err))
		return nil
	}
	return ids
}

func (s *Store) loadCart(ctx context.Context) []domain.CartLine {
	data, ok := s.load(ctx, domain.FieldCartItems)
	if !ok {
		return nil
	}
	lines, err := DecodeCart(data)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt cart", slog.Any("error", err))
		return nil
	}
	return lines
}

func (s *Store) load(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.storage.Load(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load selection", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return data, true
}
