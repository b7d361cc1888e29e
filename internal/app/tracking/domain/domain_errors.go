package domain

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrderNumber  = errors.New("order number cannot be empty")
	ErrDuplicateOrder    = errors.New("order is already tracked")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrTimelineNotPrefix = errors.New("completed tracking events must precede pending ones")
	ErrTimelineOrder     = errors.New("completed tracking events must be in chronological order")
	ErrMissingTimestamp  = errors.New("completed tracking event needs a timestamp")
)
