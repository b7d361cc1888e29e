package domain

import (
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// CartLine is one product in the cart with the display fields captured when
// it was added.
type CartLine struct {
	ProductID string
	Name      string
	Price     money.Money
	Image     string
	Brand     string
	Quantity  int
}

// Total returns price times quantity.
func (l CartLine) Total() money.Money {
	return l.Price.MultiplyInt(l.Quantity)
}

// Validate reports whether the line can live in a cart.
func (l CartLine) Validate() error {
	if l.ProductID == "" {
		return ErrEmptyLineID
	}
	if l.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Subtotal sums the line totals.
func Subtotal(lines []CartLine) money.Money {
	total := money.Zero()
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

// ItemCount sums the quantities.
func ItemCount(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
