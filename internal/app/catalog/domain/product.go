package domain

import (
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Spec is one named specification line of a product.
type Spec struct {
	Name  string
	Value string
}

// Specifications is an ordered spec-name to value mapping.
type Specifications []Spec

// Get returns the value for name.
func (s Specifications) Get(name string) (string, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec.Value, true
		}
	}
	return "", false
}

// Keys returns the spec names in declaration order.
func (s Specifications) Keys() []string {
	keys := make([]string, len(s))
	for i, spec := range s {
		keys[i] = spec.Name
	}
	return keys
}

// ProductParams carries the fields needed to build a Product.
type ProductParams struct {
	ID           string
	Name         string
	Description  string
	Image        string
	Category     string
	CategoryName string
	Brand        string
	Tags         []string
	QuickActions []string

	Price money.Money
	// OriginalPrice is optional; nil means the product has no list price.
	OriginalPrice *money.Money

	Rating  float64
	Reviews int

	IsNew       bool
	IsFeatured  bool
	IsSponsored bool
	IsTrending  bool

	Specifications Specifications
}

// Product is an immutable catalog entry. It is created once at catalog load
// and only read afterwards.
type Product struct {
	id           string
	name         string
	description  string
	image        string
	category     string
	categoryName string
	brand        string
	tags         []string
	quickActions []string

	price         money.Money
	originalPrice *money.Money

	rating  float64
	reviews int

	isNew       bool
	isFeatured  bool
	isSponsored bool
	isTrending  bool

	specs Specifications
}

// NewProduct validates params and builds a Product.
func NewProduct(p ProductParams) (*Product, error) {
	if p.ID == "" {
		return nil, ErrEmptyProductID
	}
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	if p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
		return nil, ErrOriginalBelowPrice
	}
	if p.Rating < 0 || p.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if p.Reviews < 0 {
		return nil, ErrInvalidReviews
	}

	product := &Product{
		id:           p.ID,
		name:         p.Name,
		description:  p.Description,
		image:        p.Image,
		category:     p.Category,
		categoryName: p.CategoryName,
		brand:        p.Brand,
		tags:         append([]string(nil), p.Tags...),
		quickActions: append([]string(nil), p.QuickActions...),
		price:        p.Price,
		rating:       p.Rating,
		reviews:      p.Reviews,
		isNew:        p.IsNew,
		isFeatured:   p.IsFeatured,
		isSponsored:  p.IsSponsored,
		isTrending:   p.IsTrending,
		specs:        append(Specifications(nil), p.Specifications...),
	}
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		product.originalPrice = &op
	}

	return product, nil
}

// Getters

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Image() string        { return p.image }
func (p *Product) Category() string     { return p.category }
func (p *Product) CategoryName() string { return p.categoryName }
func (p *Product) Brand() string        { return p.brand }
func (p *Product) Price() money.Money   { return p.price }
func (p *Product) Rating() float64      { return p.rating }
func (p *Product) Reviews() int         { return p.reviews }
func (p *Product) IsNew() bool          { return p.isNew }
func (p *Product) IsFeatured() bool     { return p.isFeatured }
func (p *Product) IsSponsored() bool    { return p.isSponsored }
func (p *Product) IsTrending() bool     { return p.isTrending }

// Tags returns a copy of the product's tags.
func (p *Product) Tags() []string {
	return append([]string(nil), p.tags...)
}

// QuickActions returns a copy of the quick actions offered on the product card.
func (p *Product) QuickActions() []string {
	return append([]string(nil), p.quickActions...)
}

// OriginalPrice returns the list price and whether the product has one.
func (p *Product) OriginalPrice() (money.Money, bool) {
	if p.originalPrice == nil {
		return money.Money{}, false
	}
	return *p.originalPrice, true
}

// Specifications returns a copy of the ordered specifications.
func (p *Product) Specifications() Specifications {
	return append(Specifications(nil), p.specs...)
}

// Section is the display group a product belongs to in a listing.
type Section string

const (
	SectionSponsored Section = "sponsored"
	SectionTrending  Section = "trending"
	SectionRegular   Section = "regular"
)

// Section places the product in exactly one display group.
// Sponsored wins over trending.
func (p *Product) Section() Section {
	switch {
	case p.isSponsored:
		return SectionSponsored
	case p.isTrending:
		return SectionTrending
	default:
		return SectionRegular
	}
}
