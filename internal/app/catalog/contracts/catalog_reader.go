package contracts

import "github.com/light-bringer/storefront-service/internal/app/catalog/domain"

// CatalogReader is the read-only view of the catalog that queries and the
// selection store depend on. *domain.Catalog implements it.
type CatalogReader interface {
	Products() []*domain.Product
	Product(id string) (*domain.Product, bool)
	Brands() []domain.Brand
	Brand(id string) (domain.Brand, bool)
}
