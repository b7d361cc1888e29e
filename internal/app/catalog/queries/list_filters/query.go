package list_filters

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Result holds every facet a listing can be filtered or sorted by.
type Result struct {
	Categories  []domain.Option
	Brands      []domain.Brand
	PriceRanges []domain.Option
	SortOptions []domain.Option
}

// Query returns the catalog facets.
type Query struct {
	catalog contracts.CatalogReader
}

// NewQuery creates a new list filters query.
func NewQuery(catalog contracts.CatalogReader) *Query {
	return &Query{catalog: catalog}
}

// Execute returns the facets.
func (q *Query) Execute(ctx context.Context) (*Result, error) {
	return &Result{
		Categories:  domain.Categories(),
		Brands:      q.catalog.Brands(),
		PriceRanges: domain.PriceRanges(),
		SortOptions: domain.SortOptions(),
	}, nil
}
