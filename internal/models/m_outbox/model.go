package m_outbox

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// InsertMut stamps created_at with the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns(), []interface{}{
		data.EventID,
		data.EventType,
		data.AggregateID,
		data.Payload,
		data.Status,
		spanner.CommitTimestamp,
		data.ProcessedAt,
		data.RetryCount,
		data.ErrorMessage,
	})
}

// CompleteMut marks an event delivered at commit time.
func (m *Model) CompleteMut(eventID string) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{EventID, Status, ProcessedAt, ErrorMessage},
		[]interface{}{eventID, StatusCompleted, spanner.CommitTimestamp, spanner.NullString{}},
	)
}

// RetryMut records a failed delivery. Once the event is given up on, status
// is StatusFailed and processed_at is set.
func (m *Model) RetryMut(eventID, status string, retryCount int64, reason string) *spanner.Mutation {
	var processedAt interface{} = spanner.NullTime{}
	if status == StatusFailed {
		processedAt = spanner.CommitTimestamp
	}
	return spanner.Update(TableName,
		[]string{EventID, Status, RetryCount, ErrorMessage, ProcessedAt},
		[]interface{}{eventID, status, retryCount, spanner.NullString{StringVal: reason, Valid: reason != ""}, processedAt},
	)
}

func (m *Model) DeleteMut(eventID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{eventID})
}
