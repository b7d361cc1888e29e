package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/notification"
	selection "github.com/light-bringer/storefront-service/internal/app/selection/domain"
)

// Session is the part of a device's selection store checkout touches.
type Session interface {
	CartLines() []selection.CartLine
	RemoveOrdered(ctx context.Context, lines []selection.CartLine)
	Toasts() *notification.Queue
}

// SessionProvider resolves a device id to its session.
type SessionProvider interface {
	Session(ctx context.Context, deviceID string) Session
}
