package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/light-bringer/storefront-service/internal/app/tracking/contracts"
	"github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

const uniqueViolation = "23505"

// DBPool is the subset of *pgxpool.Pool the registry needs.
type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// PostgresRegistry stores tracked orders in three tables: the order header,
// its items and its timeline. Amounts are stored in cents.
type PostgresRegistry struct {
	pool DBPool
}

var _ contracts.OrderRegistry = (*PostgresRegistry)(nil)

func NewPostgresRegistry(pool DBPool) *PostgresRegistry {
	return &PostgresRegistry{pool: pool}
}

const selectOrderSQL = `
SELECT order_number, status, order_date, estimated_delivery, actual_delivery,
       subtotal_cents, shipping_cents, tax_cents, total_cents,
       ship_name, ship_address, ship_city, ship_state, ship_zip, ship_phone,
       payment_method, carrier, tracking_number
FROM tracked_orders WHERE order_number = $1`

const selectItemsSQL = `
SELECT item_id, name, image, price_cents, quantity, category
FROM tracked_order_items WHERE order_number = $1 ORDER BY position`

const selectEventsSQL = `
SELECT event_id, status, description, occurred_at, location, completed
FROM tracking_events WHERE order_number = $1 ORDER BY position`

func (r *PostgresRegistry) Find(ctx context.Context, orderNumber string) (*domain.TrackedOrder, error) {
	number := domain.NormalizeOrderNumber(orderNumber)

	var (
		o                              domain.TrackedOrder
		status                         string
		orderDate, estimated, actual   pgtype.Date
		subtotal, shipping, tax, total int64
	)
	err := r.pool.QueryRow(ctx, selectOrderSQL, number).Scan(
		&o.OrderNumber, &status, &orderDate, &estimated, &actual,
		&subtotal, &shipping, &tax, &total,
		&o.ShippingAddress.Name, &o.ShippingAddress.Address, &o.ShippingAddress.City,
		&o.ShippingAddress.State, &o.ShippingAddress.ZipCode, &o.ShippingAddress.Phone,
		&o.PaymentMethod, &o.Carrier, &o.TrackingNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("select order %s: %w", number, err)
	}

	o.Status = domain.Status(status)
	o.OrderDate = dateValue(orderDate)
	o.EstimatedDelivery = dateValue(estimated)
	o.ActualDelivery = dateValue(actual)
	o.Subtotal = money.FromCents(subtotal)
	o.Shipping = money.FromCents(shipping)
	o.Tax = money.FromCents(tax)
	o.Total = money.FromCents(total)

	if o.Items, err = r.items(ctx, number); err != nil {
		return nil, err
	}
	if o.Events, err = r.events(ctx, number); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRegistry) items(ctx context.Context, number string) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, selectItemsSQL, number)
	if err != nil {
		return nil, fmt.Errorf("select items %s: %w", number, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var (
			it    domain.Item
			price int64
		)
		if err := rows.Scan(&it.ID, &it.Name, &it.Image, &price, &it.Quantity, &it.Category); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Price = money.FromCents(price)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRegistry) events(ctx context.Context, number string) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, selectEventsSQL, number)
	if err != nil {
		return nil, fmt.Errorf("select events %s: %w", number, err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e  domain.Event
			at pgtype.Timestamptz
		)
		if err := rows.Scan(&e.ID, &e.Status, &e.Description, &at, &e.Location, &e.Completed); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if at.Valid {
			e.Timestamp = at.Time.UTC()
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

const insertOrderSQL = `
INSERT INTO tracked_orders (
    order_number, status, order_date, estimated_delivery, actual_delivery,
    subtotal_cents, shipping_cents, tax_cents, total_cents,
    ship_name, ship_address, ship_city, ship_state, ship_zip, ship_phone,
    payment_method, carrier, tracking_number
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`

const insertItemSQL = `
INSERT INTO tracked_order_items (order_number, position, item_id, name, image, price_cents, quantity, category)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

const insertEventSQL = `
INSERT INTO tracking_events (order_number, position, event_id, status, description, occurred_at, location, completed)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

// Register writes the order, its items and its timeline in one transaction.
func (r *PostgresRegistry) Register(ctx context.Context, order *domain.TrackedOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}
	number := domain.NormalizeOrderNumber(order.OrderNumber)

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	a := order.ShippingAddress
	_, err = tx.Exec(ctx, insertOrderSQL,
		number, string(order.Status),
		dateParam(order.OrderDate), dateParam(order.EstimatedDelivery), dateParam(order.ActualDelivery),
		order.Subtotal.Cents(), order.Shipping.Cents(), order.Tax.Cents(), order.Total.Cents(),
		a.Name, a.Address, a.City, a.State, a.ZipCode, a.Phone,
		order.PaymentMethod, order.Carrier, order.TrackingNumber,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateOrder
		}
		return fmt.Errorf("insert order %s: %w", number, err)
	}

	for i, it := range order.Items {
		if _, err := tx.Exec(ctx, insertItemSQL,
			number, i, it.ID, it.Name, it.Image, it.Price.Cents(), it.Quantity, it.Category,
		); err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}

	for i, e := range order.Events {
		if _, err := tx.Exec(ctx, insertEventSQL,
			number, i, e.ID, e.Status, e.Description, timestampParam(e.Timestamp), e.Location, e.Completed,
		); err != nil {
			return fmt.Errorf("insert event %d: %w", i, err)
		}
	}

	return tx.Commit(ctx)
}

func dateValue(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

func dateParam(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t, Valid: true}
}

func timestampParam(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
