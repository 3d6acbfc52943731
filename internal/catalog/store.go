package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// SlotKey is the key-value slot holding the whole collection.
const SlotKey = "__skyObjects"

// Slots is a durable key-value store. Get returns nil, nil for a missing key.
type Slots interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store persists the collection as a single JSON array in one slot.
type Store struct {
	slots  Slots
	key    string
	logger *slog.Logger
}

func NewStore(slots Slots, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{slots: slots, key: SlotKey, logger: logger}
}

// Load returns the persisted entries. Corrupt data never fails the load: an
// unreadable slot yields an empty collection and bad records are skipped.
// Only storage errors are returned.
func (s *Store) Load(ctx context.Context) ([]Entry, error) {
	data, err := s.slots.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	if len(data) == 0 {
		return []Entry{}, nil
	}
	entries, err := decodeJSONRecords(data, s.logger)
	if err != nil {
		s.logger.Warn("stored catalog was corrupt, starting empty", "slot", s.key, "error", err)
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *Store) Save(ctx context.Context, entries []Entry) error {
	data, err := json.Marshal(toRecords(entries))
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := s.slots.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}
