package storage

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

// SQLiteStore keeps the sleep table in a local file. Useful for running
// the sync without a Postgres server, and it backs most of the tests.
type SQLiteStore struct {
	db     *sql.DB
	table  string
	logger internal.Logger
}

func NewSQLiteStore(ctx context.Context, path, table string, logger internal.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Errorf("failed to open sqlite database %s: %v", path, err)
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		logger.Errorf("failed to connect to sqlite database %s: %v", path, err)
		return nil, err
	}
	return &SQLiteStore{db: db, table: table, logger: logger}, nil
}

func (s *SQLiteStore) ident() string {
	return `"` + strings.ReplaceAll(s.table, `"`, `""`) + `"`
}

func (s *SQLiteStore) TableExists(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, s.table).Scan(&n)
	if err != nil {
		s.logger.Errorf("failed to check table %s: %v", s.table, err)
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) CreateTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+s.ident()+` (
		date TEXT PRIMARY KEY,
		score INTEGER,
		deep_sleep INTEGER,
		efficiency INTEGER,
		latency INTEGER,
		rem_sleep INTEGER,
		restfulness INTEGER,
		timing INTEGER,
		total_sleep INTEGER,
		total_sleep_duration INTEGER,
		rem_sleep_duration INTEGER,
		time_in_bed INTEGER,
		deep_sleep_duration INTEGER
	)`)
	if err != nil {
		s.logger.Errorf("failed to create table %s: %v", s.table, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) DropTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS `+s.ident())
	if err != nil {
		s.logger.Errorf("failed to drop table %s: %v", s.table, err)
		return err
	}
	return nil
}

func (s *SQLiteStore) InsertDay(ctx context.Context, row *internal.SleepRow) (bool, error) {
	res, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO `+s.ident()+` VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Date, row.Score, row.DeepSleep, row.Efficiency, row.Latency,
		row.RemSleep, row.Restfulness, row.Timing, row.TotalSleep,
		row.TotalSleepDuration, row.RemSleepDuration, row.TimeInBed, row.DeepSleepDuration)
	if err != nil {
		s.logger.Errorf("failed to insert row for %s: %v", row.Date, err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) ListRange(ctx context.Context, start, end string) ([]internal.SleepRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date, score, deep_sleep, efficiency, latency,
		rem_sleep, restfulness, timing, total_sleep,
		total_sleep_duration, rem_sleep_duration, time_in_bed, deep_sleep_duration
		FROM `+s.ident()+` WHERE date >= ? AND date <= ? ORDER BY date`, start, end)
	if err != nil {
		s.logger.Errorf("failed to query rows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []internal.SleepRow
	for rows.Next() {
		var r internal.SleepRow
		err := rows.Scan(&r.Date, &r.Score, &r.DeepSleep, &r.Efficiency, &r.Latency,
			&r.RemSleep, &r.Restfulness, &r.Timing, &r.TotalSleep,
			&r.TotalSleepDuration, &r.RemSleepDuration, &r.TimeInBed, &r.DeepSleepDuration)
		if err != nil {
			s.logger.Errorf("failed to scan row: %v", err)
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
