package domain

import (
	selection "github.com/light-bringer/storefront-service/internal/app/selection/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

var (
	// FreeShippingOver is the subtotal above which shipping is free.
	FreeShippingOver = money.FromCents(5000)
	// StandardShipping is charged at or below FreeShippingOver.
	StandardShipping = money.FromCents(599)
)

// Totals is the priced view of a set of cart lines.
type Totals struct {
	ItemCount int
	Subtotal  money.Money
	Shipping  money.Money
	Discount  money.Money
	Total     money.Money
}

// ShippingFor returns the shipping charge for subtotal.
func ShippingFor(subtotal money.Money) money.Money {
	if subtotal.GreaterThan(FreeShippingOver) {
		return money.Zero()
	}
	return StandardShipping
}

// ComputeTotals prices lines and applies coupon, which may be nil. The
// discount is rounded to the cent so every field is an exact cent amount and
// total = subtotal + shipping - discount holds after formatting.
func ComputeTotals(lines []selection.CartLine, coupon *Coupon) Totals {
	subtotal := selection.Subtotal(lines)
	shipping := ShippingFor(subtotal)

	discount := money.Zero()
	if coupon != nil {
		discount = subtotal.Percent(coupon.Percent).RoundCents()
	}

	return Totals{
		ItemCount: selection.ItemCount(lines),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Discount:  discount,
		Total:     subtotal.Add(shipping).Subtract(discount),
	}
}
