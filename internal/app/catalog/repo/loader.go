package repo

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// catalogFile is the YAML layout of a catalog source.
type catalogFile struct {
	Brands   []brandEntry   `yaml:"brands"`
	Products []productEntry `yaml:"products"`
}

type brandEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

type productEntry struct {
	ID             string    `yaml:"id"`
	Name           string    `yaml:"name"`
	Description    string    `yaml:"description"`
	Image          string    `yaml:"image"`
	Price          string    `yaml:"price"`
	OriginalPrice  string    `yaml:"original_price"`
	Category       string    `yaml:"category"`
	CategoryName   string    `yaml:"category_name"`
	Brand          string    `yaml:"brand"`
	Rating         float64   `yaml:"rating"`
	Reviews        int       `yaml:"reviews"`
	Flags          []string  `yaml:"flags"`
	Tags           []string  `yaml:"tags"`
	QuickActions   []string  `yaml:"quick_actions"`
	Specifications specBlock `yaml:"specifications"`
}

// specBlock keeps the key order of a YAML mapping.
type specBlock domain.Specifications

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *specBlock) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: specifications must be a mapping", node.Line)
	}

	specs := make(specBlock, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: specification %q must be a scalar", val.Line, key.Value)
		}
		specs = append(specs, domain.Spec{Name: key.Value, Value: val.Value})
	}
	*s = specs
	return nil
}

// LoadDefault parses the catalog embedded in the binary.
func LoadDefault() (*domain.Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile loads and parses a YAML catalog from the given path.
func LoadFile(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Load waits out the simulated loading delay, then loads the catalog from
// path, or the embedded catalog when path is empty.
func Load(ctx context.Context, clk clock.Clock, delay time.Duration, path string) (*domain.Catalog, error) {
	if err := clock.Sleep(ctx, clk, delay); err != nil {
		return nil, fmt.Errorf("catalog load interrupted: %w", err)
	}
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// Parse parses YAML data into a Catalog.
func Parse(data []byte) (*domain.Catalog, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	brands := make([]domain.Brand, 0, len(cf.Brands))
	for _, b := range cf.Brands {
		brands = append(brands, domain.Brand{ID: b.ID, Name: b.Name, Logo: b.Logo})
	}

	products := make([]*domain.Product, 0, len(cf.Products))
	for _, entry := range cf.Products {
		p, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", entry.ID, err)
		}
		products = append(products, p)
	}

	return domain.NewCatalog(products, brands)
}

func (e productEntry) toDomain() (*domain.Product, error) {
	price, err := money.Parse(e.Price)
	if err != nil {
		return nil, err
	}

	params := domain.ProductParams{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Image:          e.Image,
		Category:       e.Category,
		CategoryName:   e.CategoryName,
		Brand:          e.Brand,
		Tags:           e.Tags,
		QuickActions:   e.QuickActions,
		Price:          price,
		Rating:         e.Rating,
		Reviews:        e.Reviews,
		Specifications: domain.Specifications(e.Specifications),
	}

	if e.OriginalPrice != "" {
		op, err := money.Parse(e.OriginalPrice)
		if err != nil {
			return nil, err
		}
		params.OriginalPrice = &op
	}

	for _, flag := range e.Flags {
		switch flag {
		case "new":
			params.IsNew = true
		case "featured":
			params.IsFeatured = true
		case "sponsored":
			params.IsSponsored = true
		case "trending":
			params.IsTrending = true
		default:
			return nil, fmt.Errorf("unknown flag %q", flag)
		}
	}

	return domain.NewProduct(params)
}
