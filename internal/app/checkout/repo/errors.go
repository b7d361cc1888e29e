package repo

import "errors"

// ErrEventNotFound is returned when an outbox event id is unknown.
var ErrEventNotFound = errors.New("outbox event not found")
