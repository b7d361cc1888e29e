package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/tracking/queries/track_order"
)

type trackResponse struct {
	Found   bool             `json:"found"`
	Order   *trackedOrderDTO `json:"order,omitempty"`
	Message string           `json:"message,omitempty"`
}

// TrackOrder handles GET /api/v1/orders/{orderNumber}/tracking. A miss is
// a 404 carrying the lookup message.
func (h *Handler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.TrackOrder.Execute(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		if statusFor(err) == http.StatusBadRequest {
			writeJSON(w, http.StatusBadRequest, trackResponse{Message: track_order.MessageEmptyQuery})
			return
		}
		h.writeError(w, r, err)
		return
	}

	if !res.Found {
		writeJSON(w, http.StatusNotFound, trackResponse{Message: res.Message})
		return
	}
	order := toTrackedOrderDTO(res.Order)
	writeJSON(w, http.StatusOK, trackResponse{Found: true, Order: &order})
}
