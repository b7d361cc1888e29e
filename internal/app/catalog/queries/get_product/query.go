package get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Result is a product with its brand resolved for the quick view.
type Result struct {
	Product *domain.Product
	Brand   domain.Brand
}

// Query handles the get product query use case.
type Query struct {
	catalog contracts.CatalogReader
}

// NewQuery creates a new get product query.
func NewQuery(catalog contracts.CatalogReader) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute retrieves a product by ID.
func (q *Query) Execute(ctx context.Context, productID string) (*Result, error) {
	p, ok := q.catalog.Product(productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	brand, ok := q.catalog.Brand(p.Brand())
	if !ok {
		brand = domain.Brand{ID: p.Brand(), Name: p.Brand()}
	}

	return &Result{Product: p, Brand: brand}, nil
}
