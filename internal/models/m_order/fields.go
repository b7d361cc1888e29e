package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderNumber       = "order_number"
	Email             = "email"
	CustomerName      = "customer_name"
	Phone             = "phone"
	Address           = "address"
	City              = "city"
	State             = "state"
	ZipCode           = "zip_code"
	Country           = "country"
	PaymentType       = "payment_type"
	PaymentSummary    = "payment_summary"
	CouponCode        = "coupon_code"
	ItemCount         = "item_count"
	SubtotalCents     = "subtotal_cents"
	ShippingCents     = "shipping_cents"
	DiscountCents     = "discount_cents"
	TotalCents        = "total_cents"
	Lines             = "lines"
	EstimatedDelivery = "estimated_delivery"
	PlacedAt          = "placed_at"
	CreatedAt         = "created_at"
)
