package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// All is the sentinel that matches every category, brand or price range.
const All = "all"

// PriceRange is an inclusive price band parsed from labels like "25-50" or "250+".
// The zero value matches every price.
type PriceRange struct {
	label  string
	min    money.Money
	max    money.Money
	hasMin bool
	hasMax bool
}

// ParsePriceRange reads "all", "min-max" or "min+". Bounds are whole currency units.
func ParsePriceRange(label string) (PriceRange, error) {
	label = strings.TrimSpace(label)
	if label == "" || label == All {
		return PriceRange{label: All}, nil
	}

	if lo, ok := strings.CutSuffix(label, "+"); ok {
		minVal, err := strconv.Atoi(lo)
		if err != nil || minVal < 0 {
			return PriceRange{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, label)
		}
		return PriceRange{label: label, min: money.FromCents(int64(minVal) * 100), hasMin: true}, nil
	}

	lo, hi, ok := strings.Cut(label, "-")
	if !ok {
		return PriceRange{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, label)
	}
	minVal, err1 := strconv.Atoi(lo)
	maxVal, err2 := strconv.Atoi(hi)
	if err1 != nil || err2 != nil || minVal < 0 || maxVal < minVal {
		return PriceRange{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, label)
	}

	return PriceRange{
		label:  label,
		min:    money.FromCents(int64(minVal) * 100),
		max:    money.FromCents(int64(maxVal) * 100),
		hasMin: true,
		hasMax: true,
	}, nil
}

// Label returns the label the range was parsed from.
func (r PriceRange) Label() string {
	if r.label == "" {
		return All
	}
	return r.label
}

// Contains reports whether price >= min and, when bounded, price <= max.
func (r PriceRange) Contains(price money.Money) bool {
	if r.hasMin && price.LessThan(r.min) {
		return false
	}
	if r.hasMax && price.GreaterThan(r.max) {
		return false
	}
	return true
}

// SortKey selects the listing order.
type SortKey string

const (
	SortFeatured   SortKey = "featured"
	SortNewest     SortKey = "newest"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortPopularity SortKey = "popularity"
)

// ParseSortKey maps a sort value to a SortKey. Empty means featured.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortNewest, SortPriceLow, SortPriceHigh, SortRating, SortPopularity:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

// less reports whether a sorts before b under key.
func (k SortKey) less(a, b *Product) bool {
	switch k {
	case SortNewest:
		return a.isNew && !b.isNew
	case SortPriceLow:
		return a.price.LessThan(b.price)
	case SortPriceHigh:
		return a.price.GreaterThan(b.price)
	case SortRating:
		return a.rating > b.rating
	case SortPopularity:
		return a.reviews > b.reviews
	default:
		return a.isFeatured && !b.isFeatured
	}
}

// Sort orders products in place. Equal elements keep their catalog order.
func (k SortKey) Sort(products []*Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return k.less(products[i], products[j])
	})
}

// Filter is the AND-combination of the listing predicates.
type Filter struct {
	Search     string
	Category   string
	Brand      string
	PriceRange PriceRange
}

// Matches reports whether p satisfies every active predicate.
func (f Filter) Matches(p *Product) bool {
	return f.matchesSearch(p) &&
		matchesExact(f.Category, p.category) &&
		matchesExact(f.Brand, p.brand) &&
		f.PriceRange.Contains(p.price)
}

func (f Filter) matchesSearch(p *Product) bool {
	q := strings.ToLower(f.Search)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.name), q) || strings.Contains(strings.ToLower(p.description), q) {
		return true
	}
	for _, tag := range p.tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesExact(selected, value string) bool {
	return selected == "" || selected == All || selected == value
}
