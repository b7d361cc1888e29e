package m_outbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnsMatchPointers(t *testing.T) {
	var d Data
	assert.Len(t, d.Pointers(), len(Columns()))
}

func TestModel_Mutations(t *testing.T) {
	m := NewModel()

	assert.NotNil(t, m.InsertMut(&Data{EventID: "e1", EventType: "order.placed", Status: StatusPending}))
	assert.NotNil(t, m.CompleteMut("e1"))
	assert.NotNil(t, m.RetryMut("e1", StatusPending, 1, "broker down"))
	assert.NotNil(t, m.RetryMut("e1", StatusFailed, 5, "broker down"))
	assert.NotNil(t, m.DeleteMut("e1"))
}
