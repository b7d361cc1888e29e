package storefront

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	tracking "github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/app/tracking/queries/track_order"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")

	case errors.Is(err, tracking.ErrOrderNotFound):
		return status.Error(codes.NotFound, track_order.MessageNotFound)

	case errors.Is(err, tracking.ErrEmptyOrderNumber):
		return status.Error(codes.InvalidArgument, track_order.MessageEmptyQuery)

	case errors.Is(err, catalog.ErrInvalidPriceRange):
		return status.Error(codes.InvalidArgument, "invalid price range")

	case errors.Is(err, catalog.ErrInvalidSortKey):
		return status.Error(codes.InvalidArgument, "invalid sort key")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
