package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jask/skydial/internal/astro"
)

// record is the persisted and exported shape of an Entry.
type record struct {
	ID          string            `json:"id" yaml:"id" toml:"id"`
	Name        string            `json:"name" yaml:"name" toml:"name"`
	Declination astro.Declination `json:"declination" yaml:"declination" toml:"declination"`
	HourAngle   astro.HourAngle   `json:"hourAngle" yaml:"hourAngle" toml:"hourAngle"`
	Timestamp   string            `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
}

func toRecord(e Entry) record {
	return record{
		ID:          e.ID,
		Name:        e.Name,
		Declination: e.Declination,
		HourAngle:   e.HourAngle,
		Timestamp:   e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func toRecords(entries []Entry) []record {
	out := make([]record, len(entries))
	for i, e := range entries {
		out[i] = toRecord(e)
	}
	return out
}

func (r record) entry() (Entry, error) {
	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: parse timestamp: %w", r.ID, err)
	}
	e := Entry{
		ID:          r.ID,
		Name:        r.Name,
		Declination: r.Declination,
		HourAngle:   r.HourAngle,
		Timestamp:   ts,
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// collector keeps the first valid record for each id and reports the rest.
type collector struct {
	logger  *slog.Logger
	seen    map[string]bool
	entries []Entry
}

func newCollector(logger *slog.Logger) *collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &collector{logger: logger, seen: map[string]bool{}}
}

func (c *collector) add(index int, r record, decodeErr error) {
	if decodeErr != nil {
		c.logger.Warn("discarding unreadable record", "index", index, "error", decodeErr)
		return
	}
	e, err := r.entry()
	if err != nil {
		c.logger.Warn("discarding invalid record", "index", index, "error", err)
		return
	}
	if c.seen[e.ID] {
		c.logger.Warn("discarding duplicate record", "index", index, "id", e.ID)
		return
	}
	c.seen[e.ID] = true
	c.entries = append(c.entries, e)
}

// decodeJSONRecords reads a JSON array of records. A payload that is not an
// array at all is an error; individual bad elements are dropped.
func decodeJSONRecords(data []byte, logger *slog.Logger) ([]Entry, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	c := newCollector(logger)
	for i, raw := range raws {
		var r record
		err := json.Unmarshal(raw, &r)
		c.add(i, r, err)
	}
	return c.entries, nil
}
