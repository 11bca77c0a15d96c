package storage

import (
	"context"
	"fmt"

	"github.com/sam-roberts/oura-data-visualiser/internal"
	"github.com/sam-roberts/oura-data-visualiser/internal/config"
)

// NewStore opens the backend named in the config. Failing here is a
// connection error and aborts the run before any rows are processed.
func NewStore(ctx context.Context, cfg *config.Config, logger internal.Logger) (Store, error) {
	switch cfg.DBBackend {
	case "postgres":
		return NewPostgresStore(ctx, cfg.DBDSN, cfg.DBTable, logger)
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.DBPath, cfg.DBTable, logger)
	case "file":
		return NewFileStore(cfg.DBPath, logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.DBBackend)
	}
}
