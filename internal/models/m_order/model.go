package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders table.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// Columns lists every column in insert order.
func Columns() []string {
	return []string{
		OrderNumber, Email, CustomerName, Phone, Address, City, State, ZipCode, Country,
		PaymentType, PaymentSummary, CouponCode, ItemCount,
		SubtotalCents, ShippingCents, DiscountCents, TotalCents,
		Lines, EstimatedDelivery, PlacedAt, CreatedAt,
	}
}

// InsertMut creates a Spanner mutation for inserting an order. Orders are
// never updated, so a second insert with the same number fails the commit.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns(), []interface{}{
		data.OrderNumber,
		data.Email,
		data.CustomerName,
		data.Phone,
		data.Address,
		data.City,
		data.State,
		data.ZipCode,
		data.Country,
		data.PaymentType,
		data.PaymentSummary,
		data.CouponCode,
		data.ItemCount,
		data.SubtotalCents,
		data.ShippingCents,
		data.DiscountCents,
		data.TotalCents,
		data.Lines,
		data.EstimatedDelivery,
		data.PlacedAt,
		spanner.CommitTimestamp,
	})
}
