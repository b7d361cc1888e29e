package list_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Request contains the listing filter configuration.
type Request struct {
	Search     string
	Category   string
	Brand      string
	PriceRange string
	Sort       string
}

// Result is the sorted visible list and its three display groups.
// Every visible product appears in exactly one group.
type Result struct {
	Products  []*domain.Product
	Sponsored []*domain.Product
	Trending  []*domain.Product
	Regular   []*domain.Product
}

// Query handles the list products query use case.
type Query struct {
	catalog contracts.CatalogReader
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.CatalogReader) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute filters, sorts and partitions the catalog.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	priceRange, err := domain.ParsePriceRange(req.PriceRange)
	if err != nil {
		return nil, err
	}
	sortKey, err := domain.ParseSortKey(req.Sort)
	if err != nil {
		return nil, err
	}

	filter := domain.Filter{
		Search:     req.Search,
		Category:   req.Category,
		Brand:      req.Brand,
		PriceRange: priceRange,
	}

	visible := make([]*domain.Product, 0)
	for _, p := range q.catalog.Products() {
		if filter.Matches(p) {
			visible = append(visible, p)
		}
	}
	sortKey.Sort(visible)

	result := &Result{Products: visible}
	for _, p := range visible {
		switch p.Section() {
		case domain.SectionSponsored:
			result.Sponsored = append(result.Sponsored, p)
		case domain.SectionTrending:
			result.Trending = append(result.Trending, p)
		default:
			result.Regular = append(result.Regular, p)
		}
	}

	return result, nil
}
