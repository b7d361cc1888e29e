package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

func product(t *testing.T, id, price string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(catalog.ProductParams{
		ID:    id,
		Name:  "Product " + id,
		Image: "/img/" + id + ".jpg",
		Price: money.MustParse(price),
	})
	require.NoError(t, err)
	return p
}

func eventTypes(s *Selection) []string {
	out := make([]string, 0, len(s.DomainEvents()))
	for _, e := range s.DomainEvents() {
		out = append(out, e.EventType())
	}
	return out
}

func TestSelection_ToggleWishlist(t *testing.T) {
	s := NewSelection()
	p := product(t, "a", "10")

	assert.True(t, s.ToggleWishlist(p))
	assert.True(t, s.InWishlist("a"))
	assert.True(t, s.Changes().Dirty(FieldFavorites))

	assert.False(t, s.ToggleWishlist(p))
	assert.False(t, s.InWishlist("a"))
	assert.Empty(t, s.Wishlist())

	assert.Equal(t, []string{"wishlist.item_added", "wishlist.item_removed"}, eventTypes(s))
	assert.False(t, s.Changes().Dirty(FieldCartItems))
}

func TestSelection_AddToCart(t *testing.T) {
	t.Run("same product twice gives quantity two", func(t *testing.T) {
		s := NewSelection()
		p := product(t, "a", "12.99")

		s.AddToCart(p, "PaperCraft")
		line := s.AddToCart(p, "PaperCraft")

		assert.Equal(t, 2, line.Quantity)
		require.Len(t, s.Cart(), 1)
		assert.Equal(t, "PaperCraft", s.Cart()[0].Brand)
		assert.Equal(t, "25.98", Subtotal(s.Cart()).String())
		assert.Equal(t, []string{"cart.item_added", "cart.quantity_increased"}, eventTypes(s))
	})

	t.Run("one line per product", func(t *testing.T) {
		s := NewSelection()
		s.AddToCart(product(t, "a", "1"), "")
		s.AddToCart(product(t, "b", "2"), "")
		s.AddToCart(product(t, "a", "1"), "")

		assert.Len(t, s.Cart(), 2)
		assert.Equal(t, 3, ItemCount(s.Cart()))
	})
}

func TestSelection_UpdateCartQuantity(t *testing.T) {
	t.Run("zero is the same as remove", func(t *testing.T) {
		viaUpdate := NewSelection()
		viaRemove := NewSelection()
		for _, s := range []*Selection{viaUpdate, viaRemove} {
			s.AddToCart(product(t, "a", "1"), "")
			s.AddToCart(product(t, "b", "2"), "")
			s.ClearEvents()
		}

		require.NoError(t, viaUpdate.UpdateCartQuantity("a", 0))
		viaRemove.RemoveFromCart("a")

		assert.Equal(t, viaRemove.Cart(), viaUpdate.Cart())
		assert.Equal(t, eventTypes(viaRemove), eventTypes(viaUpdate))
	})

	t.Run("sets quantity without an upper bound", func(t *testing.T) {
		s := NewSelection()
		s.AddToCart(product(t, "a", "1"), "")
		require.NoError(t, s.UpdateCartQuantity("a", 500))

		line, ok := s.CartLine("a")
		require.True(t, ok)
		assert.Equal(t, 500, line.Quantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		s := NewSelection()
		s.AddToCart(product(t, "a", "1"), "")
		assert.ErrorIs(t, s.UpdateCartQuantity("a", -1), ErrInvalidQuantity)

		line, _ := s.CartLine("a")
		assert.Equal(t, 1, line.Quantity)
	})

	t.Run("missing line is ignored", func(t *testing.T) {
		s := NewSelection()
		require.NoError(t, s.UpdateCartQuantity("missing", 3))
		assert.Empty(t, s.Cart())
		assert.False(t, s.Changes().HasChanges())
	})
}

func TestSelection_RemoveFromCart(t *testing.T) {
	s := NewSelection()
	s.AddToCart(product(t, "a", "1"), "")
	s.ClearEvents()
	s.Changes().Clear()

	assert.False(t, s.RemoveFromCart("missing"))
	assert.Empty(t, s.DomainEvents())
	assert.False(t, s.Changes().HasChanges())

	assert.True(t, s.RemoveFromCart("a"))
	assert.Empty(t, s.Cart())

	require.Len(t, s.DomainEvents(), 1)
	removed := s.DomainEvents()[0].(*CartItemRemovedEvent)
	assert.Equal(t, "Product a", removed.Product.Name)
}

func TestSelection_RemoveOrdered(t *testing.T) {
	a, b := product(t, "a", "10"), product(t, "b", "20")

	t.Run("unchanged cart empties", func(t *testing.T) {
		s := NewSelection()
		s.AddToCart(a, "")
		s.AddToCart(b, "")
		ordered := s.Cart()
		s.ClearEvents()
		s.Changes().Clear()

		s.RemoveOrdered(ordered)
		assert.Empty(t, s.Cart())
		assert.True(t, s.Changes().Dirty(FieldCartItems))
		assert.Equal(t, []string{"cart.lines_ordered"}, eventTypes(s))
	})

	t.Run("later additions stay", func(t *testing.T) {
		s := NewSelection()
		s.AddToCart(a, "")
		ordered := s.Cart()
		s.AddToCart(a, "")
		s.AddToCart(b, "")

		s.RemoveOrdered(ordered)
		cart := s.Cart()
		require.Len(t, cart, 2)
		assert.Equal(t, "a", cart[0].ProductID)
		assert.Equal(t, 1, cart[0].Quantity)
		assert.Equal(t, "b", cart[1].ProductID)
	})

	t.Run("lines already gone are skipped", func(t *testing.T) {
		s := NewSelection()
		s.AddToCart(b, "")
		s.ClearEvents()
		s.Changes().Clear()

		s.RemoveOrdered([]CartLine{{ProductID: "a", Quantity: 1}})
		assert.Len(t, s.Cart(), 1)
		assert.False(t, s.Changes().Dirty(FieldCartItems))
		assert.Empty(t, s.DomainEvents())
	})
}

func TestSelection_Compare(t *testing.T) {
	ids := func(s *Selection) []string {
		out := []string{}
		for _, p := range s.Compare() {
			out = append(out, p.ID())
		}
		return out
	}

	t.Run("fifo eviction at capacity", func(t *testing.T) {
		s := NewSelection()
		for _, id := range []string{"a", "b", "c", "d"} {
			s.AddToCompare(product(t, id, "1"))
		}
		s.ClearEvents()

		s.AddToCompare(product(t, "e", "1"))

		assert.Equal(t, []string{"b", "c", "d", "e"}, ids(s))
		require.Len(t, s.DomainEvents(), 1)
		added := s.DomainEvents()[0].(*CompareItemAddedEvent)
		require.NotNil(t, added.Evicted)
		assert.Equal(t, "a", added.Evicted.ID)
	})

	t.Run("never exceeds capacity", func(t *testing.T) {
		s := NewSelection()
		for i := 0; i < 10; i++ {
			s.AddToCompare(product(t, string(rune('a'+i)), "1"))
			assert.LessOrEqual(t, len(s.Compare()), CompareCapacity)
		}
		assert.Equal(t, []string{"g", "h", "i", "j"}, ids(s))
	})

	t.Run("duplicate leaves list unchanged", func(t *testing.T) {
		s := NewSelection()
		s.AddToCompare(product(t, "a", "1"))
		s.AddToCompare(product(t, "b", "1"))
		s.ClearEvents()

		s.AddToCompare(product(t, "a", "1"))

		assert.Equal(t, []string{"a", "b"}, ids(s))
		assert.Equal(t, []string{"compare.item_duplicate"}, eventTypes(s))
	})

	t.Run("remove and clear", func(t *testing.T) {
		s := NewSelection()
		s.AddToCompare(product(t, "a", "1"))
		s.AddToCompare(product(t, "b", "1"))

		s.RemoveFromCompare("a")
		s.RemoveFromCompare("missing")
		assert.Equal(t, []string{"b"}, ids(s))

		s.ClearCompare()
		assert.Empty(t, s.Compare())
		assert.False(t, s.Changes().HasChanges(), "compare list is not persisted")
	})
}

func TestReconstructSelection(t *testing.T) {
	s := ReconstructSelection(
		[]string{"a", "", "b", "a"},
		[]CartLine{
			{ProductID: "x", Name: "X", Price: money.MustParse("5"), Quantity: 2},
			{ProductID: "x", Name: "dup", Quantity: 1},
			{ProductID: "", Quantity: 1},
			{ProductID: "y", Quantity: 0},
		},
	)

	assert.Equal(t, []string{"a", "b"}, s.Wishlist())
	require.Len(t, s.Cart(), 1)
	assert.Equal(t, "X", s.Cart()[0].Name)
	assert.False(t, s.Changes().HasChanges())
	assert.Empty(t, s.DomainEvents())
}
