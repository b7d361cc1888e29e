package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/compare_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_filters"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/app/checkout/queries/get_checkout"
	"github.com/light-bringer/storefront-service/internal/app/checkout/queries/list_events"
	checkoutrepo "github.com/light-bringer/storefront-service/internal/app/checkout/repo"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/apply_coupon"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/go_back"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/select_payment"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/start_checkout"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/submit_delivery"
	"github.com/light-bringer/storefront-service/internal/app/selection"
	selectionrepo "github.com/light-bringer/storefront-service/internal/app/selection/repo"
	"github.com/light-bringer/storefront-service/internal/app/tracking/queries/track_order"
	trackingrepo "github.com/light-bringer/storefront-service/internal/app/tracking/repo"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cat, err := catalogrepo.LoadDefault()
	require.NoError(t, err)

	clk := clock.NewMockClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	sessions := selection.NewSessions(cat, selectionrepo.NewMemoryStorage(), clk, logger.Discard())
	t.Cleanup(func() { _ = sessions.Flush(context.Background()) })

	registry, err := trackingrepo.NewMemoryRegistry(trackingrepo.SeedOrders()...)
	require.NoError(t, err)

	workflows := checkoutrepo.NewMemoryWorkflowRepo()
	outbox := checkoutrepo.NewMemoryOutbox(clk)

	return NewRouter(NewHandler(Deps{
		ListProducts:    list_products.NewQuery(cat),
		ListFilters:     list_filters.NewQuery(cat),
		GetProduct:      get_product.NewQuery(cat),
		CompareProducts: compare_products.NewQuery(),
		Sessions:        sessions,
		StartCheckout:   start_checkout.NewInteractor(workflows, sessions),
		SubmitDelivery:  submit_delivery.NewInteractor(workflows),
		SelectPayment:   select_payment.NewInteractor(workflows),
		GoBack:          go_back.NewInteractor(workflows),
		ApplyCoupon:     apply_coupon.NewInteractor(workflows),
		PlaceOrder: place_order.NewInteractor(place_order.Options{
			Workflows: workflows,
			Orders:    checkoutrepo.NewMemoryOrderRepo(outbox),
			Sessions:  sessions,
			Tracking:  registry,
			Clock:     clk,
			Logger:    logger.Discard(),
		}),
		GetCheckout: get_checkout.NewQuery(workflows),
		TrackOrder:  track_order.NewQuery(registry, clk, 0),
		ListEvents:  list_events.NewQuery(outbox),
		Logger:      logger.Discard(),
	}))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCatalogRoutes(t *testing.T) {
	h := newTestRouter(t)

	t.Run("list partitions every visible product", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/catalog/products?sort=price-low", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[listProductsResponse](t, rec)
		assert.Equal(t, 11, resp.Total)
		assert.Len(t, resp.Products, resp.Total)
		assert.Equal(t, resp.Total, len(resp.Sponsored)+len(resp.Trending)+len(resp.Regular))
		for i := 1; i < len(resp.Products); i++ {
			assert.False(t, resp.Products[i].Price.LessThan(resp.Products[i-1].Price))
		}
	})

	t.Run("invalid price range", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/catalog/products?priceRange=cheap", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("product detail", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/catalog/products/journals", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[productDetailResponse](t, rec)
		assert.Equal(t, "Leather-bound Executive Journals", resp.Product.Name)
		assert.Equal(t, resp.Product.Brand, resp.Brand.ID)

		rec = do(t, h, http.MethodGet, "/api/v1/catalog/products/ghost", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("filters", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/catalog/filters", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[filtersResponse](t, rec)
		assert.Len(t, resp.Categories, 4)
		assert.Len(t, resp.Brands, 5)
		assert.Len(t, resp.PriceRanges, 6)
		assert.Equal(t, "all", resp.Categories[0].Value)
	})
}

func TestSelectionRoutes(t *testing.T) {
	h := newTestRouter(t)
	base := "/api/v1/devices/device-1"

	do(t, h, http.MethodPost, base+"/cart/journals", nil)
	rec := do(t, h, http.MethodPost, base+"/cart/journals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sel := decode[selectionDTO](t, rec)
	require.Len(t, sel.Cart, 1)
	assert.Equal(t, 2, sel.Cart[0].Quantity)
	assert.Equal(t, "69.98", sel.CartSummary.Subtotal.String())

	rec = do(t, h, http.MethodPut, base+"/cart/journals", quantityRequest{Quantity: -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/wishlist/journals/toggle", nil)
	assert.Equal(t, []string{"journals"}, decode[selectionDTO](t, rec).Wishlist)

	rec = do(t, h, http.MethodGet, "/api/v1/devices/device-2/selection", nil)
	other := decode[selectionDTO](t, rec)
	assert.Empty(t, other.Cart, "devices are isolated")
	assert.Empty(t, other.Wishlist)

	rec = do(t, h, http.MethodGet, base+"/toasts", nil)
	toasts := decode[[]toastDTO](t, rec)
	require.Len(t, toasts, 3)
	assert.Equal(t, "Added to Cart", toasts[0].Title)
	assert.Equal(t, "cart", toasts[0].Action)
	assert.Equal(t, int64(5000), toasts[0].DurationMS)

	rec = do(t, h, http.MethodDelete, base+"/toasts/"+toasts[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, base+"/toasts", nil)
	assert.Len(t, decode[[]toastDTO](t, rec), 2)

	rec = do(t, h, http.MethodDelete, base+"/cart", nil)
	assert.Empty(t, decode[selectionDTO](t, rec).Cart)
}

func TestCompareRoutes(t *testing.T) {
	h := newTestRouter(t)
	base := "/api/v1/devices/device-1"

	for _, id := range []string{"journals", "laser-mono", "brochures", "office-tablet", "smart-scanner"} {
		do(t, h, http.MethodPost, base+"/compare/"+id, nil)
	}

	rec := do(t, h, http.MethodGet, base+"/selection", nil)
	sel := decode[selectionDTO](t, rec)
	require.Len(t, sel.Compare, 4)
	assert.Equal(t, "laser-mono", sel.Compare[0].ID)

	rec = do(t, h, http.MethodGet, base+"/compare", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	matrix := decode[compareResponse](t, rec)
	assert.Len(t, matrix.Products, 4)
	assert.Len(t, matrix.Rows, len(matrix.SpecKeys))
	for _, row := range matrix.Rows {
		assert.Len(t, row.Values, 4)
	}

	rec = do(t, h, http.MethodGet, base+"/compare?priceRange=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, base+"/compare", nil)
	assert.Empty(t, decode[selectionDTO](t, rec).Compare)
}

func TestCheckoutFlow(t *testing.T) {
	h := newTestRouter(t)
	base := "/api/v1/devices/device-1"

	rec := do(t, h, http.MethodGet, base+"/checkout", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(t, h, http.MethodPost, base+"/cart/journals", nil)

	rec = do(t, h, http.MethodPost, base+"/checkout", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	co := decode[checkoutDTO](t, rec)
	assert.Equal(t, "delivery_details", co.Step)
	assert.Equal(t, 1, co.StepNumber)
	assert.Equal(t, "United States", co.Delivery.Country)
	assert.Len(t, co.MissingFields, 8)

	rec = do(t, h, http.MethodPut, base+"/checkout/delivery", deliveryDTO{FirstName: "Ada"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[errorResponse](t, rec).MissingFields, "email")

	rec = do(t, h, http.MethodPut, base+"/checkout/delivery", deliveryDTO{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100",
		Address: "1 Analytical Way", City: "London", State: "LDN", ZipCode: "N1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payment_method", decode[checkoutDTO](t, rec).Step)

	rec = do(t, h, http.MethodPut, base+"/checkout/payment", paymentRequest{Type: "wallet", Wallet: "Venmo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, base+"/checkout/payment", paymentRequest{Type: "wallet", Wallet: "Apple Pay"})
	require.Equal(t, http.StatusOK, rec.Code)
	co = decode[checkoutDTO](t, rec)
	assert.Equal(t, "order_summary", co.Step)
	assert.Equal(t, "Apple Pay", co.PaymentLabel)

	rec = do(t, h, http.MethodPost, base+"/checkout/coupon", couponRequest{Code: "BOGUS"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/checkout/coupon", couponRequest{Code: "WELCOME20"})
	require.Equal(t, http.StatusOK, rec.Code)
	co = decode[checkoutDTO](t, rec)
	assert.Equal(t, "WELCOME20", co.Coupon)
	assert.False(t, co.Totals.Discount.IsZero())

	rec = do(t, h, http.MethodPost, base+"/checkout/order", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	confirmation := decode[confirmationDTO](t, rec)
	assert.Equal(t, "ORD-1714557600000", confirmation.OrderNumber)
	assert.Equal(t, 1, confirmation.ItemCount)

	rec = do(t, h, http.MethodPost, base+"/checkout/back", nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "a confirmed checkout is closed")

	rec = do(t, h, http.MethodGet, base+"/selection", nil)
	assert.Empty(t, decode[selectionDTO](t, rec).Cart)

	rec = do(t, h, http.MethodGet, base+"/toasts", nil)
	toasts := decode[[]toastDTO](t, rec)
	last := toasts[len(toasts)-1]
	assert.Equal(t, "Order Placed Successfully!", last.Title)
	assert.Equal(t, int64(8000), last.DurationMS)

	rec = do(t, h, http.MethodGet, "/api/v1/orders/"+confirmation.OrderNumber+"/tracking", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tracked := decode[trackResponse](t, rec)
	assert.Equal(t, "processing", tracked.Order.Status)

	rec = do(t, h, http.MethodGet, "/api/v1/events?event_type=order.placed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode[ListEventsResponse](t, rec)
	require.Len(t, events.Events, 1)
	assert.Equal(t, confirmation.OrderNumber, events.Events[0].AggregateID)
	assert.Equal(t, "pending", events.Events[0].Status)
}

func TestPlaceOrderKeepsLaterCartLines(t *testing.T) {
	h := newTestRouter(t)
	base := "/api/v1/devices/device-2"

	do(t, h, http.MethodPost, base+"/cart/notebook-premium", nil)
	rec := do(t, h, http.MethodPost, base+"/checkout", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	do(t, h, http.MethodPost, base+"/cart/laser-color", nil)

	rec = do(t, h, http.MethodPut, base+"/checkout/delivery", deliveryDTO{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100",
		Address: "1 Analytical Way", City: "London", State: "LDN", ZipCode: "N1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodPut, base+"/checkout/payment", paymentRequest{Type: "upi", UPIID: "ada@upi"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/checkout/order", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decode[confirmationDTO](t, rec).ItemCount)

	rec = do(t, h, http.MethodGet, base+"/selection", nil)
	cart := decode[selectionDTO](t, rec).Cart
	require.Len(t, cart, 1)
	assert.Equal(t, "laser-color", cart[0].ID)
}

func TestTrackOrderRoute(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/orders/ord-1234567890/tracking", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[trackResponse](t, rec)
	assert.True(t, resp.Found)
	assert.Equal(t, "FedEx", resp.Order.Carrier)
	assert.Equal(t, "in-transit", resp.Order.Status)
	assert.Len(t, resp.Order.Events, 6)

	rec = do(t, h, http.MethodGet, "/api/v1/orders/ORD-0000000000/tracking", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, track_order.MessageNotFound, decode[trackResponse](t, rec).Message)

	rec = do(t, h, http.MethodGet, "/api/v1/orders/%20%20/tracking", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, track_order.MessageEmptyQuery, decode[trackResponse](t, rec).Message)
}
