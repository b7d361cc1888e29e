package compare_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
)

func TestQuery_Execute(t *testing.T) {
	catalog, err := repo.LoadDefault()
	require.NoError(t, err)

	pick := func(ids ...string) []*domain.Product {
		out := make([]*domain.Product, 0, len(ids))
		for _, id := range ids {
			p, ok := catalog.Product(id)
			require.True(t, ok, id)
			out = append(out, p)
		}
		return out
	}

	q := NewQuery()
	ctx := context.Background()
	compared := pick("laser-mono", "notebook-premium", "laser-color")

	t.Run("union of spec keys in first-seen order", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{Products: compared})
		require.NoError(t, err)
		require.Len(t, res.Products, 3)

		assert.Equal(t, "Print Speed", res.SpecKeys[0])
		assert.Contains(t, res.SpecKeys, "Binding")
		assert.Len(t, res.Rows, len(res.SpecKeys))

		counts := map[string]int{}
		for _, k := range res.SpecKeys {
			counts[k]++
		}
		for k, n := range counts {
			assert.Equal(t, 1, n, k)
		}
	})

	t.Run("missing values are marked", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{Products: compared})
		require.NoError(t, err)

		for _, row := range res.Rows {
			if row.Key == "Binding" {
				assert.Equal(t, []string{Missing, "Hardcover", Missing}, row.Values)
				return
			}
		}
		t.Fatal("Binding row not found")
	})

	t.Run("brand multi-select", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{Products: compared, Brands: []string{"papercraft"}})
		require.NoError(t, err)
		require.Len(t, res.Products, 1)
		assert.Equal(t, "notebook-premium", res.Products[0].ID())
		assert.NotContains(t, res.SpecKeys, "Print Speed")
	})

	t.Run("category and price range", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{Products: compared, Category: "printers", PriceRange: "250+"})
		require.NoError(t, err)
		require.Len(t, res.Products, 1)
		assert.Equal(t, "laser-color", res.Products[0].ID())
	})

	t.Run("empty comparison", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{})
		require.NoError(t, err)
		assert.Empty(t, res.Products)
		assert.Empty(t, res.Rows)
	})

	t.Run("invalid price range", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{Products: compared, PriceRange: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
	})
}
