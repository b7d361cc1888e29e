package domain

import "fmt"

// Brand is a manufacturer shown in brand filters.
type Brand struct {
	ID   string
	Name string
	Logo string
}

// Catalog is the immutable set of purchasable products and their brands.
// It is safe for concurrent reads.
type Catalog struct {
	products []*Product
	byID     map[string]*Product
	brands   []Brand
	brandsBy map[string]Brand
}

// NewCatalog indexes products and brands. Ids must be unique.
func NewCatalog(products []*Product, brands []Brand) (*Catalog, error) {
	c := &Catalog{
		products: make([]*Product, 0, len(products)),
		byID:     make(map[string]*Product, len(products)),
		brands:   make([]Brand, 0, len(brands)),
		brandsBy: make(map[string]Brand, len(brands)),
	}

	for _, b := range brands {
		if _, dup := c.brandsBy[b.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBrand, b.ID)
		}
		c.brandsBy[b.ID] = b
		c.brands = append(c.brands, b)
	}

	for _, p := range products {
		if _, dup := c.byID[p.ID()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID())
		}
		c.byID[p.ID()] = p
		c.products = append(c.products, p)
	}

	return c, nil
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []*Product {
	return append([]*Product(nil), c.products...)
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Brands returns every brand in catalog order.
func (c *Catalog) Brands() []Brand {
	return append([]Brand(nil), c.brands...)
}

// Brand looks up a brand by id.
func (c *Catalog) Brand(id string) (Brand, bool) {
	b, ok := c.brandsBy[id]
	return b, ok
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
