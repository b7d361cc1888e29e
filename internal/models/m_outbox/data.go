package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the outbox_events table.
type Data struct {
	EventID      string
	EventType    string
	AggregateID  string
	Payload      spanner.NullJSON
	Status       string
	CreatedAt    time.Time
	ProcessedAt  spanner.NullTime
	RetryCount   int64
	ErrorMessage spanner.NullString
}

// Pointers returns scan destinations in Columns order.
func (d *Data) Pointers() []interface{} {
	return []interface{}{
		&d.EventID, &d.EventType, &d.AggregateID, &d.Payload, &d.Status,
		&d.CreatedAt, &d.ProcessedAt, &d.RetryCount, &d.ErrorMessage,
	}
}
