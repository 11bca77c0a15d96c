package storage

import (
	"context"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

// Store is the persistence seam for canonical day rows. All backends
// share the same contract: one row per date, and InsertDay is
// insert-or-skip — a row whose date already exists is left untouched,
// which is what makes re-running a range idempotent.
type Store interface {
	// TableExists reports whether the configured table is present.
	TableExists(ctx context.Context) (bool, error)
	// CreateTable creates the fixed 13-column schema.
	CreateTable(ctx context.Context) error
	// DropTable removes the table and its data. Destructive; only the
	// explicit reset_table setting ever triggers it.
	DropTable(ctx context.Context) error
	// InsertDay writes one row, skipping silently when the date is
	// already present. Returns whether a row was actually inserted.
	InsertDay(ctx context.Context, row *internal.SleepRow) (bool, error)
	// ListRange returns the rows with start <= date <= end, ascending.
	ListRange(ctx context.Context, start, end string) ([]internal.SleepRow, error)
	Close() error
}
