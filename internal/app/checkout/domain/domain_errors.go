package domain

import "errors"

var (
	// Workflow errors
	ErrIncompleteDelivery = errors.New("delivery details are incomplete")
	ErrInvalidTransition  = errors.New("invalid checkout step transition")
	ErrWrongStep          = errors.New("operation not allowed at the current checkout step")
	ErrWorkflowComplete   = errors.New("checkout is already complete")
	ErrOrderInProgress    = errors.New("order is already being placed")
	ErrEmptyCart          = errors.New("cannot check out an empty cart")
	ErrCheckoutNotFound   = errors.New("checkout not found")

	// Payment errors
	ErrUnknownPaymentType = errors.New("unknown payment type")
	ErrUnknownWallet      = errors.New("unknown wallet")

	// Coupon errors
	ErrUnknownCoupon = errors.New("invalid coupon code")

	// Order errors
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order already exists")
)
