package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 11, c.Len())
	assert.Len(t, c.Brands(), 5)

	t.Run("optional original price", func(t *testing.T) {
		cards, ok := c.Product("business-cards")
		require.True(t, ok)
		_, has := cards.OriginalPrice()
		assert.False(t, has)

		notebook, ok := c.Product("notebook-premium")
		require.True(t, ok)
		op, has := notebook.OriginalPrice()
		require.True(t, has)
		assert.Equal(t, "15.99", op.String())
	})

	t.Run("flags and specifications", func(t *testing.T) {
		p, ok := c.Product("laser-color")
		require.True(t, ok)
		assert.True(t, p.IsNew())
		assert.True(t, p.IsFeatured())
		assert.True(t, p.IsSponsored())
		assert.True(t, p.IsTrending())
		assert.Equal(t, "499.99", p.Price().String())

		keys := p.Specifications().Keys()
		require.NotEmpty(t, keys)
		assert.Equal(t, "Print Speed", keys[0])
		assert.Equal(t, "Warranty", keys[len(keys)-1])
	})

	t.Run("every product references a known brand", func(t *testing.T) {
		for _, p := range c.Products() {
			_, ok := c.Brand(p.Brand())
			assert.True(t, ok, p.ID())
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("rejects malformed price", func(t *testing.T) {
		_, err := Parse([]byte(`
products:
  - id: x
    name: X
    price: "ten"
`))
		assert.Error(t, err)
	})

	t.Run("rejects unknown flag", func(t *testing.T) {
		_, err := Parse([]byte(`
products:
  - id: x
    name: X
    price: "1"
    flags: [clearance]
`))
		assert.ErrorContains(t, err, "unknown flag")
	})

	t.Run("rejects original price below price", func(t *testing.T) {
		_, err := Parse([]byte(`
products:
  - id: x
    name: X
    price: "10"
    original_price: "9"
`))
		assert.ErrorIs(t, err, domain.ErrOriginalBelowPrice)
	})

	t.Run("rejects non-mapping specifications", func(t *testing.T) {
		_, err := Parse([]byte(`
products:
  - id: x
    name: X
    price: "1"
    specifications: [a, b]
`))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
brands:
  - id: acme
    name: Acme
products:
  - id: widget
    name: Widget
    price: "2.50"
    brand: acme
`), 0o600))

		c, err := Load(context.Background(), clock.NewRealClock(), 0, path)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), clock.NewRealClock(), 0, filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("cancelled during delay", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Load(ctx, clock.NewMockClock(time.Now()), time.Second, "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
