package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) respondSelection(w http.ResponseWriter, r *http.Request) {
	store := h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID"))
	writeJSON(w, http.StatusOK, toSelectionDTO(store))
}

// GetSelection handles GET /api/v1/devices/{deviceID}/selection.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	h.respondSelection(w, r)
}

// ToggleWishlist handles POST .../wishlist/{productID}/toggle.
func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID")).
		ToggleWishlist(r.Context(), chi.URLParam(r, "productID"))
	h.respondSelection(w, r)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID")).
		AddToCart(r.Context(), chi.URLParam(r, "productID"))
	h.respondSelection(w, r)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request"})
		return
	}

	store := h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID"))
	if err := store.UpdateCartQuantity(r.Context(), chi.URLParam(r, "productID"), req.Quantity); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondSelection(w, r)
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID")).
		RemoveFromCart(r.Context(), chi.URLParam(r, "productID"))
	h.respondSelection(w, r)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID")).ClearCart(r.Context())
	h.respondSelection(w, r)
}

func (h *Handler) AddToCompare(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID")).
		AddToCompare(r.Context(), chi.URLParam(r, "productID"))
	h.respondSelection(w, r)
}

func (h *Handler) RemoveFromCompare(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID")).
		RemoveFromCompare(r.Context(), chi.URLParam(r, "productID"))
	h.respondSelection(w, r)
}

func (h *Handler) ClearCompare(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID")).ClearCompare(r.Context())
	h.respondSelection(w, r)
}

// ListToasts handles GET .../toasts. Expired toasts are already gone.
func (h *Handler) ListToasts(w http.ResponseWriter, r *http.Request) {
	store := h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID"))
	writeJSON(w, http.StatusOK, toToastDTOs(store.Toasts().List()))
}

// DismissToast handles DELETE .../toasts/{toastID}. Unknown ids are a no-op.
func (h *Handler) DismissToast(w http.ResponseWriter, r *http.Request) {
	store := h.deps.Sessions.Get(r.Context(), chi.URLParam(r, "deviceID"))
	store.Toasts().Dismiss(chi.URLParam(r, "toastID"))
	w.WriteHeader(http.StatusNoContent)
}
