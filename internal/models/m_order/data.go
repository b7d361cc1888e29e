package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
type Data struct {
	OrderNumber       string
	Email             string
	CustomerName      string
	Phone             string
	Address           string
	City              string
	State             string
	ZipCode           string
	Country           string
	PaymentType       string
	PaymentSummary    string
	CouponCode        spanner.NullString
	ItemCount         int64
	SubtotalCents     int64
	ShippingCents     int64
	DiscountCents     int64
	TotalCents        int64
	Lines             spanner.NullJSON
	EstimatedDelivery time.Time
	PlacedAt          time.Time
	CreatedAt         time.Time
}
