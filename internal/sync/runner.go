package sync

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sam-roberts/oura-data-visualiser/internal"
	"github.com/sam-roberts/oura-data-visualiser/internal/config"
	"github.com/sam-roberts/oura-data-visualiser/internal/oura"
	"github.com/sam-roberts/oura-data-visualiser/internal/storage"
)

// Report is the outcome of one sync run. MissingDays and WriteErrors are
// normal bookkeeping, not failures: a run that completes its day loop
// succeeds no matter how many rows were defaulted or skipped.
type Report struct {
	RunID       string
	Days        int
	Inserted    int
	Skipped     int
	MissingDays int
	WriteErrors int
}

// Runner executes one synchronization pass: fetch both feeds once, then
// walk every day in the configured range, reconcile, and upsert.
// Processing is deliberately sequential; the batch is small and the
// insert-or-skip key makes overlapping or repeated runs safe.
type Runner struct {
	cfg    *config.Config
	client *oura.Client
	store  storage.Store
	logger internal.Logger
}

func NewRunner(cfg *config.Config, client *oura.Client, store storage.Store, logger internal.Logger) *Runner {
	return &Runner{cfg: cfg, client: client, store: store, logger: logger}
}

// Run fetches, reconciles, and writes. It returns an error only for
// whole-run failures (fetch, table setup); per-day conditions end up in
// the Report instead.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}

	rng, err := ParseRange(r.cfg.StartDate, r.cfg.EndDate)
	if err != nil {
		return nil, err
	}
	days := rng.Days()
	report.Days = len(days)
	r.logger.Infof("[run=%s] syncing %d day(s) from %s to %s", report.RunID, len(days), r.cfg.StartDate, r.cfg.EndDate)

	summaries, err := r.client.FetchDailySleep(ctx, r.cfg.SleepURL, r.cfg.StartDate, r.cfg.EndDate)
	if err != nil {
		return nil, err
	}
	sessions, err := r.client.FetchSessions(ctx, r.cfg.SessionsURL, r.cfg.StartDate, r.cfg.EndDate)
	if err != nil {
		return nil, err
	}
	r.logger.Debugf("[run=%s] fetched %d summaries, %d sessions", report.RunID, len(summaries), len(sessions))

	if err := r.setupTable(ctx); err != nil {
		return nil, err
	}

	rec := &Reconciler{IncludeNaps: r.cfg.IncludeNaps, Logger: r.logger}
	for _, day := range days {
		row, class := rec.RowFor(day, summaries, sessions)
		if class == internal.RowDefaulted {
			r.logger.Infof("no data for %s, filling with zeroes", row.Date)
			report.MissingDays++
		}

		inserted, err := r.store.InsertDay(ctx, &row)
		switch {
		case err != nil:
			// A bad row must not sink the rest of the range.
			r.logger.Errorf("failed to write row for %s: %v", row.Date, err)
			report.WriteErrors++
		case inserted:
			report.Inserted++
		default:
			report.Skipped++
		}
	}

	r.logger.Infof("[run=%s] done: %d inserted, %d already present, %d day(s) missing data, %d write error(s)",
		report.RunID, report.Inserted, report.Skipped, report.MissingDays, report.WriteErrors)
	return report, nil
}

func (r *Runner) setupTable(ctx context.Context) error {
	if r.cfg.ResetTable {
		r.logger.Warnf("reset_table is set, dropping table %s", r.cfg.DBTable)
		if err := r.store.DropTable(ctx); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	exists, err := r.store.TableExists(ctx)
	if err != nil {
		return fmt.Errorf("check table: %w", err)
	}
	if !exists {
		r.logger.Infof("table %s does not exist, creating", r.cfg.DBTable)
		if err := r.store.CreateTable(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
