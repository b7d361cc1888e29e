package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.deps.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", h.ListProducts)
			r.Get("/products/{productID}", h.GetProduct)
			r.Get("/filters", h.ListFilters)
		})

		r.Route("/devices/{deviceID}", func(r chi.Router) {
			r.Get("/selection", h.GetSelection)

			r.Post("/wishlist/{productID}/toggle", h.ToggleWishlist)

			r.Post("/cart/{productID}", h.AddToCart)
			r.Put("/cart/{productID}", h.UpdateCartQuantity)
			r.Delete("/cart/{productID}", h.RemoveFromCart)
			r.Delete("/cart", h.ClearCart)

			r.Get("/compare", h.CompareProducts)
			r.Post("/compare/{productID}", h.AddToCompare)
			r.Delete("/compare/{productID}", h.RemoveFromCompare)
			r.Delete("/compare", h.ClearCompare)

			r.Get("/toasts", h.ListToasts)
			r.Delete("/toasts/{toastID}", h.DismissToast)

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", h.StartCheckout)
				r.Get("/", h.GetCheckout)
				r.Put("/delivery", h.SubmitDelivery)
				r.Put("/payment", h.SelectPayment)
				r.Post("/back", h.GoBack)
				r.Post("/coupon", h.ApplyCoupon)
				r.Post("/order", h.PlaceOrder)
			})
		})

		r.Get("/orders/{orderNumber}/tracking", h.TrackOrder)
		r.Get("/events", h.ListEvents)
	})

	return r
}
