package storefront

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
)

var listProductsFields = []string{"search", "category", "brand", "priceRange", "sort"}

func validateProductID(req *wrapperspb.StringValue) error {
	if req.GetValue() == "" {
		return status.Error(codes.InvalidArgument, "product id is required")
	}
	return nil
}

// listProductsRequest reads the filter fields. Every field is optional but
// must be a string when present.
func listProductsRequest(req *structpb.Struct) (*list_products.Request, error) {
	fields := req.GetFields()
	values := make(map[string]string, len(listProductsFields))
	for _, name := range listProductsFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be a string", name)
		}
		values[name] = s.StringValue
	}

	return &list_products.Request{
		Search:     values["search"],
		Category:   values["category"],
		Brand:      values["brand"],
		PriceRange: values["priceRange"],
		Sort:       values["sort"],
	}, nil
}
