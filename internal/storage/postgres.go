package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sam-roberts/oura-data-visualiser/internal"
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	table  string
	logger internal.Logger
}

func NewPostgresStore(ctx context.Context, dsn, table string, logger internal.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to configure postgres pool: %v", err)
		return nil, err
	}
	// pgxpool connects lazily; ping now so a bad DSN fails before the
	// feeds are fetched.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStore{pool: pool, table: table, logger: logger}, nil
}

// ident returns the table name quoted as a SQL identifier. The table name
// comes from config, so it cannot be a bind parameter.
func (p *PostgresStore) ident() string {
	return pgx.Identifier{p.table}.Sanitize()
}

func (p *PostgresStore) TableExists(ctx context.Context) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_tables WHERE tablename = $1)`, p.table).Scan(&exists)
	if err != nil {
		p.logger.Errorf("failed to check table %s: %v", p.table, err)
		return false, err
	}
	return exists, nil
}

func (p *PostgresStore) CreateTable(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+p.ident()+` (
		date DATE PRIMARY KEY,
		score INT,
		deep_sleep INT,
		efficiency INT,
		latency INT,
		rem_sleep INT,
		restfulness INT,
		timing INT,
		total_sleep INT,
		total_sleep_duration INT,
		rem_sleep_duration INT,
		time_in_bed INT,
		deep_sleep_duration INT
	)`)
	if err != nil {
		p.logger.Errorf("failed to create table %s: %v", p.table, err)
		return err
	}
	return nil
}

func (p *PostgresStore) DropTable(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `DROP TABLE IF EXISTS `+p.ident())
	if err != nil {
		p.logger.Errorf("failed to drop table %s: %v", p.table, err)
		return err
	}
	return nil
}

func (p *PostgresStore) InsertDay(ctx context.Context, row *internal.SleepRow) (bool, error) {
	tag, err := p.pool.Exec(ctx, `INSERT INTO `+p.ident()+` VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (date) DO NOTHING`,
		row.Date, row.Score, row.DeepSleep, row.Efficiency, row.Latency,
		row.RemSleep, row.Restfulness, row.Timing, row.TotalSleep,
		row.TotalSleepDuration, row.RemSleepDuration, row.TimeInBed, row.DeepSleepDuration)
	if err != nil {
		p.logger.Errorf("failed to insert row for %s: %v", row.Date, err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (p *PostgresStore) ListRange(ctx context.Context, start, end string) ([]internal.SleepRow, error) {
	rows, err := p.pool.Query(ctx, `SELECT date, score, deep_sleep, efficiency, latency,
		rem_sleep, restfulness, timing, total_sleep,
		total_sleep_duration, rem_sleep_duration, time_in_bed, deep_sleep_duration
		FROM `+p.ident()+` WHERE date >= $1 AND date <= $2 ORDER BY date`, start, end)
	if err != nil {
		p.logger.Errorf("failed to query rows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []internal.SleepRow
	for rows.Next() {
		var r internal.SleepRow
		var date time.Time
		err := rows.Scan(&date, &r.Score, &r.DeepSleep, &r.Efficiency, &r.Latency,
			&r.RemSleep, &r.Restfulness, &r.Timing, &r.TotalSleep,
			&r.TotalSleepDuration, &r.RemSleepDuration, &r.TimeInBed, &r.DeepSleepDuration)
		if err != nil {
			p.logger.Errorf("failed to scan row: %v", err)
			return nil, err
		}
		r.Date = date.Format("2006-01-02")
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}

var _ Store = (*PostgresStore)(nil)
