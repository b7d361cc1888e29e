package m_device_storage

import "time"

// Data represents one row of the device_storage table.
type Data struct {
	StorageKey string
	Value      string
	UpdatedAt  time.Time
}
