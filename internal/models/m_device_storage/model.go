package m_device_storage

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the device_storage table.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// UpsertMut rewrites the whole value for a key.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{StorageKey, Value, UpdatedAt},
		[]interface{}{data.StorageKey, data.Value, spanner.CommitTimestamp},
	)
}

func (m *Model) DeleteMut(key string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{key})
}
