package domain

import (
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// CompareCapacity is the maximum number of products in the compare list.
const CompareCapacity = 4

// Selection is the aggregate root for one shopper's wishlist, cart and
// compare list. It is not safe for concurrent use; the owning store
// serializes access.
type Selection struct {
	wishlist []string
	cart     []CartLine
	compare  []*catalog.Product

	changes *ChangeTracker
	events  []DomainEvent
}

// NewSelection creates an empty Selection.
func NewSelection() *Selection {
	return &Selection{
		changes: NewChangeTracker(),
		events:  make([]DomainEvent, 0),
	}
}

// ReconstructSelection rebuilds a Selection from persisted collections.
// Duplicate ids and invalid lines are dropped.
func ReconstructSelection(wishlist []string, cart []CartLine) *Selection {
	s := NewSelection()

	seen := make(map[string]bool, len(wishlist))
	for _, id := range wishlist {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		s.wishlist = append(s.wishlist, id)
	}

	for _, line := range cart {
		if line.Validate() != nil || s.lineIndex(line.ProductID) >= 0 {
			continue
		}
		s.cart = append(s.cart, line)
	}

	return s
}

func (s *Selection) Changes() *ChangeTracker     { return s.changes }
func (s *Selection) DomainEvents() []DomainEvent { return s.events }

// ClearEvents drops recorded events once they have been handled.
func (s *Selection) ClearEvents() {
	s.events = make([]DomainEvent, 0)
}

// Wishlist returns the wishlisted ids in the order they were added.
func (s *Selection) Wishlist() []string {
	return append([]string(nil), s.wishlist...)
}

// InWishlist reports whether id is wishlisted.
func (s *Selection) InWishlist(id string) bool {
	return indexOf(s.wishlist, id) >= 0
}

// Cart returns a copy of the cart lines.
func (s *Selection) Cart() []CartLine {
	return append([]CartLine(nil), s.cart...)
}

// CartLine returns the line for productID.
func (s *Selection) CartLine(productID string) (CartLine, bool) {
	if i := s.lineIndex(productID); i >= 0 {
		return s.cart[i], true
	}
	return CartLine{}, false
}

// Compare returns the compare list, oldest first.
func (s *Selection) Compare() []*catalog.Product {
	return append([]*catalog.Product(nil), s.compare...)
}

// ToggleWishlist flips membership of p and reports whether it is now wishlisted.
func (s *Selection) ToggleWishlist(p *catalog.Product) bool {
	info := productInfo(p)

	if i := indexOf(s.wishlist, p.ID()); i >= 0 {
		s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
		s.changes.MarkDirty(FieldFavorites)
		s.recordEvent(&WishlistItemRemovedEvent{Product: info})
		return false
	}

	s.wishlist = append(s.wishlist, p.ID())
	s.changes.MarkDirty(FieldFavorites)
	s.recordEvent(&WishlistItemAddedEvent{Product: info})
	return true
}

// AddToCart increments the existing line for p or appends a new line with
// quantity 1. brandName is the display name stored on a new line.
func (s *Selection) AddToCart(p *catalog.Product, brandName string) CartLine {
	info := productInfo(p)

	if i := s.lineIndex(p.ID()); i >= 0 {
		s.cart[i].Quantity++
		s.changes.MarkDirty(FieldCartItems)
		s.recordEvent(&CartQuantityIncreasedEvent{Product: info, Quantity: s.cart[i].Quantity})
		return s.cart[i]
	}

	line := CartLine{
		ProductID: p.ID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Image:     p.Image(),
		Brand:     brandName,
		Quantity:  1,
	}
	s.cart = append(s.cart, line)
	s.changes.MarkDirty(FieldCartItems)
	s.recordEvent(&CartItemAddedEvent{Product: info})
	return line
}

// UpdateCartQuantity sets the quantity of an existing line. Zero removes the
// line; a missing line is left alone.
func (s *Selection) UpdateCartQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		s.RemoveFromCart(productID)
		return nil
	}

	i := s.lineIndex(productID)
	if i < 0 || s.cart[i].Quantity == quantity {
		return nil
	}

	s.cart[i].Quantity = quantity
	s.changes.MarkDirty(FieldCartItems)
	s.recordEvent(&CartQuantitySetEvent{ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveFromCart deletes the line for productID and reports whether it existed.
func (s *Selection) RemoveFromCart(productID string) bool {
	i := s.lineIndex(productID)
	if i < 0 {
		return false
	}

	line := s.cart[i]
	s.cart = append(s.cart[:i], s.cart[i+1:]...)
	s.changes.MarkDirty(FieldCartItems)
	s.recordEvent(&CartItemRemovedEvent{Product: ProductInfo{
		ID:    line.ProductID,
		Name:  line.Name,
		Image: line.Image,
	}})
	return true
}

// ClearCart empties the cart.
func (s *Selection) ClearCart() {
	if len(s.cart) == 0 {
		return
	}
	n := len(s.cart)
	s.cart = nil
	s.changes.MarkDirty(FieldCartItems)
	s.recordEvent(&CartClearedEvent{Lines: n})
}

// RemoveOrdered takes the ordered quantities out of the cart. Lines or units
// added after the order was priced stay in the cart.
func (s *Selection) RemoveOrdered(ordered []CartLine) {
	removed := 0
	for _, o := range ordered {
		i := s.lineIndex(o.ProductID)
		if i < 0 {
			continue
		}
		if s.cart[i].Quantity > o.Quantity {
			s.cart[i].Quantity -= o.Quantity
		} else {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		}
		removed++
	}
	if removed == 0 {
		return
	}
	s.changes.MarkDirty(FieldCartItems)
	s.recordEvent(&CartLinesOrderedEvent{Lines: removed})
}

// AddToCompare appends p, evicting the oldest entry when the list is full.
// A product already in the list is not added again.
func (s *Selection) AddToCompare(p *catalog.Product) {
	info := productInfo(p)

	if s.compareIndex(p.ID()) >= 0 {
		s.recordEvent(&CompareItemDuplicateEvent{Product: info})
		return
	}

	var evicted *ProductInfo
	if len(s.compare) >= CompareCapacity {
		oldest := productInfo(s.compare[0])
		evicted = &oldest
		s.compare = append([]*catalog.Product(nil), s.compare[1:]...)
	}

	s.compare = append(s.compare, p)
	s.recordEvent(&CompareItemAddedEvent{Product: info, Evicted: evicted})
}

// RemoveFromCompare drops productID from the compare list.
func (s *Selection) RemoveFromCompare(productID string) {
	i := s.compareIndex(productID)
	if i < 0 {
		return
	}
	s.compare = append(s.compare[:i], s.compare[i+1:]...)
	s.recordEvent(&CompareItemRemovedEvent{ProductID: productID})
}

// ClearCompare empties the compare list.
func (s *Selection) ClearCompare() {
	if len(s.compare) == 0 {
		return
	}
	s.compare = nil
	s.recordEvent(&CompareClearedEvent{})
}

func (s *Selection) lineIndex(productID string) int {
	for i, l := range s.cart {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Selection) compareIndex(productID string) int {
	for i, p := range s.compare {
		if p.ID() == productID {
			return i
		}
	}
	return -1
}

func (s *Selection) recordEvent(event DomainEvent) {
	s.events = append(s.events, event)
}

func productInfo(p *catalog.Product) ProductInfo {
	return ProductInfo{ID: p.ID(), Name: p.Name(), Image: p.Image()}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
