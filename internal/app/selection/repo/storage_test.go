package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/selection/contracts"
	"github.com/light-bringer/storefront-service/internal/app/selection/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

// exerciseStorage runs the behaviour every backend must share.
func exerciseStorage(t *testing.T, s contracts.Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Load(ctx, "device-1:favorites")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("last write wins", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "device-1:cartItems", []byte(`[1]`)))
		require.NoError(t, s.Save(ctx, "device-1:cartItems", []byte(`[2]`)))

		got, err := s.Load(ctx, "device-1:cartItems")
		require.NoError(t, err)
		assert.Equal(t, `[2]`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "device-2:favorites", []byte(`["a"]`)))
		require.NoError(t, s.Save(ctx, "device-2:cartItems", []byte(`[]`)))

		got, err := s.Load(ctx, "device-2:favorites")
		require.NoError(t, err)
		assert.Equal(t, `["a"]`, string(got))
	})
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())

	t.Run("values are copied", func(t *testing.T) {
		s := NewMemoryStorage()
		buf := []byte(`["a"]`)
		require.NoError(t, s.Save(context.Background(), "k", buf))
		buf[2] = 'z'

		got, err := s.Load(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, `["a"]`, string(got))
	})
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStorage(filepath.Join(dir, "nested"))
	require.NoError(t, err)

	exerciseStorage(t, s)

	t.Run("no temp files left behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Join(dir, "nested"))
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp-")
		}
	})
}

func TestScopedStorage(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStorage()

	a := NewScopedStorage(inner, "device-a")
	b := NewScopedStorage(inner, "device-b")

	require.NoError(t, a.Save(ctx, domain.FieldFavorites, []byte(`["x"]`)))

	_, err := b.Load(ctx, domain.FieldFavorites)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	raw, err := inner.Load(ctx, "device-a:favorites")
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(raw))

	unscoped := NewScopedStorage(inner, "")
	got, err := unscoped.Load(ctx, "device-a:favorites")
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(got))
}

func TestRedisStorage(t *testing.T) {
	testutil.SkipUnlessIntegration(t)

	client := redis.NewClient(&redis.Options{Addr: testutil.StartRedis(t)})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	exerciseStorage(t, NewRedisStorage(client, "storefront:"))

	exists, err := client.Exists(context.Background(), "storefront:device-1:cartItems").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestSpannerStorage(t *testing.T) {
	client := testutil.SetupSpannerTest(t)
	exerciseStorage(t, NewSpannerStorage(client, committer.NewCommitter(client)))
}
