package m_device_storage

// Field name constants for the device_storage table.
const (
	TableName = "device_storage"

	StorageKey = "storage_key"
	Value      = "value"
	UpdatedAt  = "updated_at"
)
