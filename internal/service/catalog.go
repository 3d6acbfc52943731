package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jask/skydial/internal/catalog"
	"github.com/jask/skydial/internal/database/repository"
)

// OpenCatalog loads the persisted catalog and returns a controller that
// saves back to the same slot after every change.
func OpenCatalog(ctx context.Context, db *sql.DB, logger *slog.Logger) (*catalog.Controller, error) {
	store := catalog.NewStore(repository.NewSlotRepo(db), logger)
	entries, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "entries", len(entries))
	return catalog.NewController(catalog.NewState(entries), store, logger), nil
}
