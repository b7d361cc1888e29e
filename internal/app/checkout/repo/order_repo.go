package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// OrderRepo writes orders to Spanner.
type OrderRepo struct {
	committer *committer.Committer
	outbox    contracts.OutboxRepository
	model     *m_order.Model
}

var _ contracts.OrderRepository = (*OrderRepo)(nil)

func NewOrderRepo(c *committer.Committer, outbox contracts.OutboxRepository) *OrderRepo {
	return &OrderRepo{
		committer: c,
		outbox:    outbox,
		model:     m_order.NewModel(),
	}
}

type orderLine struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	PriceCent int64  `json:"priceCents"`
	Quantity  int    `json:"quantity"`
}

// InsertMut creates a mutation for inserting order.
func (r *OrderRepo) InsertMut(order *domain.Order) (*spanner.Mutation, error) {
	lines := make([]orderLine, 0, len(order.Lines()))
	for _, l := range order.Lines() {
		lines = append(lines, orderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Brand:     l.Brand,
			PriceCent: l.Price.Cents(),
			Quantity:  l.Quantity,
		})
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lines: %w", err)
	}

	d := order.Delivery()
	t := order.Totals()
	data := &m_order.Data{
		OrderNumber:       order.Number(),
		Email:             d.Email,
		CustomerName:      d.FullName(),
		Phone:             d.Phone,
		Address:           d.Address,
		City:              d.City,
		State:             d.State,
		ZipCode:           d.ZipCode,
		Country:           d.Country,
		PaymentType:       string(order.Payment().Type()),
		PaymentSummary:    order.Payment().Describe(),
		ItemCount:         int64(t.ItemCount),
		SubtotalCents:     t.Subtotal.Cents(),
		ShippingCents:     t.Shipping.Cents(),
		DiscountCents:     t.Discount.Cents(),
		TotalCents:        t.Total.Cents(),
		Lines:             spanner.NullJSON{Value: json.RawMessage(raw), Valid: true},
		EstimatedDelivery: order.EstimatedDelivery(),
		PlacedAt:          order.CreatedAt(),
	}
	if c, ok := order.Coupon(); ok {
		data.CouponCode = spanner.NullString{StringVal: c.Code, Valid: true}
	}
	return r.model.InsertMut(data), nil
}

// Save follows the Golden Mutation Pattern: the order row and one outbox row
// per domain event go into a single commit plan.
func (r *OrderRepo) Save(ctx context.Context, order *domain.Order) error {
	plan := committer.NewPlan()

	mut, err := r.InsertMut(order)
	if err != nil {
		return err
	}
	plan.Add(mut)

	for _, event := range order.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return err
		}
		plan.Add(r.outbox.InsertMut(r.outbox.EnrichEvent(event, payload)))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return domain.ErrDuplicateOrder
		}
		return fmt.Errorf("failed to commit order %s: %w", order.Number(), err)
	}
	return nil
}
