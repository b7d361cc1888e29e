package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/selection/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_device_storage"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// SpannerStorage keeps values in the device_storage table.
type SpannerStorage struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_device_storage.Model
}

func NewSpannerStorage(client *spanner.Client, c *committer.Committer) *SpannerStorage {
	return &SpannerStorage{
		client:    client,
		committer: c,
		model:     m_device_storage.NewModel(),
	}
}

func (s *SpannerStorage) Load(ctx context.Context, key string) ([]byte, error) {
	row, err := s.client.Single().ReadRow(ctx, m_device_storage.TableName, spanner.Key{key}, []string{m_device_storage.Value})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}

	var value string
	if err := row.Column(0, &value); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", key, err)
	}
	return []byte(value), nil
}

// SaveMut returns the mutation that Save applies.
func (s *SpannerStorage) SaveMut(key string, value []byte) *spanner.Mutation {
	return s.model.UpsertMut(&m_device_storage.Data{StorageKey: key, Value: string(value)})
}

func (s *SpannerStorage) Save(ctx context.Context, key string, value []byte) error {
	plan := committer.NewPlan()
	plan.Add(s.SaveMut(key, value))
	return s.committer.Apply(ctx, plan)
}
