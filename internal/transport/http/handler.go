// Package http exposes the storefront as a JSON REST API under /api/v1.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/compare_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_filters"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	checkout "github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/queries/get_checkout"
	"github.com/light-bringer/storefront-service/internal/app/checkout/queries/list_events"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/apply_coupon"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/go_back"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/select_payment"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/start_checkout"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/submit_delivery"
	"github.com/light-bringer/storefront-service/internal/app/selection"
	selectiondomain "github.com/light-bringer/storefront-service/internal/app/selection/domain"
	tracking "github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/app/tracking/queries/track_order"
)

// Deps are the queries and use cases the API delegates to.
type Deps struct {
	ListProducts    *list_products.Query
	ListFilters     *list_filters.Query
	GetProduct      *get_product.Query
	CompareProducts *compare_products.Query

	Sessions *selection.Sessions

	StartCheckout  *start_checkout.Interactor
	SubmitDelivery *submit_delivery.Interactor
	SelectPayment  *select_payment.Interactor
	GoBack         *go_back.Interactor
	ApplyCoupon    *apply_coupon.Interactor
	PlaceOrder     *place_order.Interactor
	GetCheckout    *get_checkout.Query

	TrackOrder *track_order.Query
	ListEvents *list_events.Query

	Logger *slog.Logger
}

// Handler is a thin coordinator that decodes requests, delegates to use
// cases and queries, and encodes the result.
type Handler struct {
	deps Deps
}

func NewHandler(deps Deps) *Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Handler{deps: deps}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, checkout.ErrCheckoutNotFound),
		errors.Is(err, tracking.ErrOrderNotFound):
		return http.StatusNotFound

	case errors.Is(err, catalog.ErrInvalidPriceRange),
		errors.Is(err, catalog.ErrInvalidSortKey),
		errors.Is(err, selectiondomain.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrUnknownPaymentType),
		errors.Is(err, checkout.ErrUnknownWallet),
		errors.Is(err, tracking.ErrEmptyOrderNumber):
		return http.StatusBadRequest

	case errors.Is(err, checkout.ErrIncompleteDelivery),
		errors.Is(err, checkout.ErrUnknownCoupon):
		return http.StatusUnprocessableEntity

	case errors.Is(err, checkout.ErrWrongStep),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrWorkflowComplete),
		errors.Is(err, checkout.ErrOrderInProgress),
		errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusConflict

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.deps.Logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
