package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	checkout "github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/apply_coupon"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/go_back"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/select_payment"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/start_checkout"
	"github.com/light-bringer/storefront-service/internal/app/checkout/usecases/submit_delivery"
)

// respondCheckout writes the device's current checkout.
func (h *Handler) respondCheckout(w http.ResponseWriter, r *http.Request, status int) {
	res, err := h.deps.GetCheckout.Execute(r.Context(), chi.URLParam(r, "deviceID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, status, toCheckoutDTO(res))
}

// StartCheckout handles POST .../checkout. It snapshots the cart.
func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	if _, err := h.deps.StartCheckout.Execute(r.Context(), &start_checkout.Request{
		DeviceID: chi.URLParam(r, "deviceID"),
	}); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondCheckout(w, r, http.StatusCreated)
}

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	h.respondCheckout(w, r, http.StatusOK)
}

// SubmitDelivery handles PUT .../checkout/delivery. Incomplete details
// answer 422 with the blank fields.
func (h *Handler) SubmitDelivery(w http.ResponseWriter, r *http.Request) {
	var req deliveryDTO
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request"})
		return
	}

	resp, err := h.deps.SubmitDelivery.Execute(r.Context(), &submit_delivery.Request{
		DeviceID: chi.URLParam(r, "deviceID"),
		Delivery: req.toDomain(),
	})
	if errors.Is(err, checkout.ErrIncompleteDelivery) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:         checkout.ErrIncompleteDelivery.Error(),
			MissingFields: resp.MissingFields,
		})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondCheckout(w, r, http.StatusOK)
}

type paymentRequest struct {
	Type       string `json:"type"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"expiryDate"`
	CardCVV    string `json:"cvv"`
	CardHolder string `json:"cardholderName"`
	UPIID      string `json:"upiId"`
	Wallet     string `json:"wallet"`
}

// SelectPayment handles PUT .../checkout/payment.
func (h *Handler) SelectPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request"})
		return
	}

	if _, err := h.deps.SelectPayment.Execute(r.Context(), &select_payment.Request{
		DeviceID:   chi.URLParam(r, "deviceID"),
		Type:       checkout.PaymentType(req.Type),
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		CardCVV:    req.CardCVV,
		CardHolder: req.CardHolder,
		UPIID:      req.UPIID,
		Wallet:     req.Wallet,
	}); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondCheckout(w, r, http.StatusOK)
}

func (h *Handler) GoBack(w http.ResponseWriter, r *http.Request) {
	if _, err := h.deps.GoBack.Execute(r.Context(), &go_back.Request{
		DeviceID: chi.URLParam(r, "deviceID"),
	}); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondCheckout(w, r, http.StatusOK)
}

type couponRequest struct {
	Code string `json:"code"`
}

// ApplyCoupon handles POST .../checkout/coupon.
func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request"})
		return
	}

	if _, err := h.deps.ApplyCoupon.Execute(r.Context(), &apply_coupon.Request{
		DeviceID: chi.URLParam(r, "deviceID"),
		Code:     req.Code,
	}); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondCheckout(w, r, http.StatusOK)
}

// PlaceOrder handles POST .../checkout/order. It blocks for the processing
// delay and answers with the confirmation.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := h.deps.PlaceOrder.Execute(r.Context(), &place_order.Request{
		DeviceID: chi.URLParam(r, "deviceID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toConfirmationDTO(resp.Confirmation))
}
