package storefront

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/tracking/queries/track_order"
)

// Handler implements StorefrontServer.
// It's a thin coordinator that delegates to queries.
type Handler struct {
	trackOrder   *track_order.Query
	listProducts *list_products.Query
	getProduct   *get_product.Query
}

var _ StorefrontServer = (*Handler)(nil)

// NewHandler creates a new gRPC storefront handler.
func NewHandler(
	trackOrder *track_order.Query,
	listProducts *list_products.Query,
	getProduct *get_product.Query,
) *Handler {
	return &Handler{
		trackOrder:   trackOrder,
		listProducts: listProducts,
		getProduct:   getProduct,
	}
}

// TrackOrder looks up an order. A miss is NotFound with the lookup message.
func (h *Handler) TrackOrder(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	res, err := h.trackOrder.Execute(ctx, req.GetValue())
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	if !res.Found {
		return nil, status.Error(codes.NotFound, res.Message)
	}

	out, err := trackedOrderToStruct(res.Order)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode order")
	}
	return out, nil
}

// ListProducts returns the filtered listing and its display groups.
func (h *Handler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	appReq, err := listProductsRequest(req)
	if err != nil {
		return nil, err
	}

	res, err := h.listProducts.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	out, err := structpb.NewStruct(map[string]any{
		"products":  productsToList(res.Products),
		"sponsored": productsToList(res.Sponsored),
		"trending":  productsToList(res.Trending),
		"regular":   productsToList(res.Regular),
		"total":     len(res.Products),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode products")
	}
	return out, nil
}

// GetProduct returns one product with its brand name.
func (h *Handler) GetProduct(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if err := validateProductID(req); err != nil {
		return nil, err
	}

	res, err := h.getProduct.Execute(ctx, req.GetValue())
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	m := productToMap(res.Product)
	m["brandName"] = res.Brand.Name
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode product")
	}
	return out, nil
}
