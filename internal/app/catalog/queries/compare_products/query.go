package compare_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Missing is shown for a specification a product does not declare.
const Missing = "—"

// Request is the comparison panel state: the compared products plus the
// panel's own filters. An empty Brands selection matches every brand.
type Request struct {
	Products   []*domain.Product
	Brands     []string
	Category   string
	PriceRange string
}

// Row is one specification across the shown products, in product order.
type Row struct {
	Key    string
	Values []string
}

// Result is the side-by-side comparison matrix.
type Result struct {
	Products []*domain.Product
	SpecKeys []string
	Rows     []Row
}

// Query builds the comparison matrix.
type Query struct{}

// NewQuery creates a new compare products query.
func NewQuery() *Query {
	return &Query{}
}

// Execute filters the compared products and unions their specification keys
// in first-seen order.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	priceRange, err := domain.ParsePriceRange(req.PriceRange)
	if err != nil {
		return nil, err
	}

	brands := make(map[string]bool, len(req.Brands))
	for _, b := range req.Brands {
		brands[b] = true
	}
	filter := domain.Filter{Category: req.Category, PriceRange: priceRange}

	result := &Result{Products: make([]*domain.Product, 0, len(req.Products))}
	for _, p := range req.Products {
		if len(brands) > 0 && !brands[p.Brand()] {
			continue
		}
		if !filter.Matches(p) {
			continue
		}
		result.Products = append(result.Products, p)
	}

	seen := make(map[string]bool)
	for _, p := range result.Products {
		for _, key := range p.Specifications().Keys() {
			if !seen[key] {
				seen[key] = true
				result.SpecKeys = append(result.SpecKeys, key)
			}
		}
	}

	for _, key := range result.SpecKeys {
		row := Row{Key: key, Values: make([]string, len(result.Products))}
		for i, p := range result.Products {
			v, ok := p.Specifications().Get(key)
			if !ok || v == "" {
				v = Missing
			}
			row.Values[i] = v
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}
