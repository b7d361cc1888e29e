package domain

// DomainEvent is implemented by everything a Selection records.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductInfo is the product snapshot carried by selection events.
type ProductInfo struct {
	ID    string
	Name  string
	Image string
}

type WishlistItemAddedEvent struct {
	Product ProductInfo
}

func (e *WishlistItemAddedEvent) EventType() string   { return "wishlist.item_added" }
func (e *WishlistItemAddedEvent) AggregateID() string { return e.Product.ID }

type WishlistItemRemovedEvent struct {
	Product ProductInfo
}

func (e *WishlistItemRemovedEvent) EventType() string   { return "wishlist.item_removed" }
func (e *WishlistItemRemovedEvent) AggregateID() string { return e.Product.ID }

type CartItemAddedEvent struct {
	Product ProductInfo
}

func (e *CartItemAddedEvent) EventType() string   { return "cart.item_added" }
func (e *CartItemAddedEvent) AggregateID() string { return e.Product.ID }

// CartQuantityIncreasedEvent is recorded when an add hits an existing line.
type CartQuantityIncreasedEvent struct {
	Product  ProductInfo
	Quantity int
}

func (e *CartQuantityIncreasedEvent) EventType() string   { return "cart.quantity_increased" }
func (e *CartQuantityIncreasedEvent) AggregateID() string { return e.Product.ID }

// CartQuantitySetEvent is recorded by an explicit quantity update.
type CartQuantitySetEvent struct {
	ProductID string
	Quantity  int
}

func (e *CartQuantitySetEvent) EventType() string   { return "cart.quantity_set" }
func (e *CartQuantitySetEvent) AggregateID() string { return e.ProductID }

type CartItemRemovedEvent struct {
	Product ProductInfo
}

func (e *CartItemRemovedEvent) EventType() string   { return "cart.item_removed" }
func (e *CartItemRemovedEvent) AggregateID() string { return e.Product.ID }

type CartClearedEvent struct {
	Lines int
}

func (e *CartClearedEvent) EventType() string   { return "cart.cleared" }
func (e *CartClearedEvent) AggregateID() string { return "" }

// CartLinesOrderedEvent is recorded when placed order lines leave the cart.
type CartLinesOrderedEvent struct {
	Lines int
}

func (e *CartLinesOrderedEvent) EventType() string   { return "cart.lines_ordered" }
func (e *CartLinesOrderedEvent) AggregateID() string { return "" }

// CompareItemAddedEvent carries the evicted product when the list was full.
type CompareItemAddedEvent struct {
	Product ProductInfo
	Evicted *ProductInfo
}

func (e *CompareItemAddedEvent) EventType() string   { return "compare.item_added" }
func (e *CompareItemAddedEvent) AggregateID() string { return e.Product.ID }

type CompareItemDuplicateEvent struct {
	Product ProductInfo
}

func (e *CompareItemDuplicateEvent) EventType() string   { return "compare.item_duplicate" }
func (e *CompareItemDuplicateEvent) AggregateID() string { return e.Product.ID }

type CompareItemRemovedEvent struct {
	ProductID string
}

func (e *CompareItemRemovedEvent) EventType() string   { return "compare.item_removed" }
func (e *CompareItemRemovedEvent) AggregateID() string { return e.ProductID }

type CompareClearedEvent struct{}

func (e *CompareClearedEvent) EventType() string   { return "compare.cleared" }
func (e *CompareClearedEvent) AggregateID() string { return "" }
