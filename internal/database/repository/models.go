package repository

import "time"

// Slot represents a row in the key/value slot table.
type Slot struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}
