package catalog

import (
	"context"
	"log/slog"
	"sync"
)

// Saver persists a committed collection.
type Saver interface {
	Save(ctx context.Context, entries []Entry) error
}

// Controller owns the live State. Views read snapshots; changes go through
// the named commands below, each of which is followed by a save when the
// entries changed. A failed save is returned but the transition stands.
type Controller struct {
	mu     sync.Mutex
	state  State
	saver  Saver
	logger *slog.Logger
}

func NewController(initial State, saver Saver, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{state: initial, saver: saver, logger: logger}
}

// Snapshot returns the current state. It is safe to hold on to.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Entries implements tracker.Source.
func (c *Controller) Entries() []Entry {
	return c.Snapshot().Entries()
}

// Add stores a new entry and returns its id ("" when e already had one).
func (c *Controller) Add(ctx context.Context, e Entry) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, id := c.state.Add(e)
	if id == "" {
		return "", nil
	}
	return id, c.commit(ctx, next, true)
}

func (c *Controller) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.Lookup(id); !ok {
		return nil
	}
	return c.commit(ctx, c.state.Remove(id), true)
}

func (c *Controller) Update(ctx context.Context, p Patch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit(ctx, c.state.Update(p), p.ID != "")
}

// Replace swaps the whole collection, e.g. after an import.
func (c *Controller) Replace(ctx context.Context, entries []Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := NewState(entries)
	if _, ok := next.Lookup(c.state.selected); ok {
		next.selected = c.state.selected
	}
	return c.commit(ctx, next, true)
}

// Select and Deselect only move the cursor; selection is not persisted.
func (c *Controller) Select(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Select(id)
	return c.state
}

func (c *Controller) Deselect() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Deselect()
	return c.state
}

func (c *Controller) commit(ctx context.Context, next State, persist bool) error {
	c.state = next
	if !persist || c.saver == nil {
		return nil
	}
	if err := c.saver.Save(ctx, next.entries); err != nil {
		c.logger.Error("save catalog failed", "error", err, "entries", len(next.entries))
		return err
	}
	c.logger.Debug("catalog saved", "entries", len(next.entries))
	return nil
}
