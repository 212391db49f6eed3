package writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/treasury-testdata/internal/model"
)

var errNoDatabase = errors.New("postgres sink has no database pool")

// PostgresSink writes each table into a same-named Postgres table. Every row
// carries the run ID and its position in the table, which together form the
// primary key, so re-sending a batch is harmless.
type PostgresSink struct {
	cfg    WriterConfig
	db     *pgxpool.Pool
	runID  model.RunID
	logger *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewPostgresSink creates a new PostgresSink.
func NewPostgresSink(
	cfg WriterConfig,
	db *pgxpool.Pool,
	runID model.RunID,
	logger *slog.Logger,
) *PostgresSink {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultWriterConfig().BatchSize
	}
	return &PostgresSink{
		cfg:    cfg,
		db:     db,
		runID:  runID,
		logger: logger,
	}
}

// Write creates the dataset table if needed and inserts every row.
func (s *PostgresSink) Write(ctx context.Context, table *model.Table) error {
	if s.db == nil {
		return errNoDatabase
	}

	if _, err := s.db.Exec(ctx, createTableSQL(table)); err != nil {
		s.recordError()
		return fmt.Errorf("create table %s: %w", table.Dataset, err)
	}

	insert := insertSQL(table)
	for lo := 0; lo < len(table.Rows); lo += s.cfg.BatchSize {
		hi := min(lo+s.cfg.BatchSize, len(table.Rows))

		start := time.Now()
		conflicts, err := s.batchInsert(ctx, insert, lo, table.Rows[lo:hi])
		if err != nil {
			s.recordError()
			s.logger.Error("batch insert failed", "error", err, "dataset", table.Dataset, "count", hi-lo)
			return fmt.Errorf("insert %s rows %d-%d: %w", table.Dataset, lo, hi, err)
		}

		s.mu.Lock()
		s.metrics.Inserts += int64(hi - lo - conflicts)
		s.metrics.Conflicts += int64(conflicts)
		s.metrics.Flushes++
		s.mu.Unlock()

		s.logger.Debug("flushed rows",
			"dataset", table.Dataset,
			"count", hi-lo,
			"conflicts", conflicts,
			"duration", time.Since(start),
		)
	}

	s.mu.Lock()
	s.metrics.Tables++
	s.mu.Unlock()
	return nil
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
// offset is the table position of rows[0].
func (s *PostgresSink) batchInsert(ctx context.Context, insert string, offset int, rows [][]string) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for i, row := range rows {
		batch.Queue(insert, rowArgs(s.runID, offset+i, row)...)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}

func (s *PostgresSink) recordError() {
	s.mu.Lock()
	s.metrics.Errors++
	s.mu.Unlock()
}

// Stats returns current metrics.
func (s *PostgresSink) Stats() WriterMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// Close is a no-op; the pool belongs to the caller.
func (s *PostgresSink) Close() error {
	return nil
}

func createTableSQL(table *model.Table) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(pgx.Identifier{table.Dataset}.Sanitize())
	b.WriteString(" (run_id UUID NOT NULL, seq INTEGER NOT NULL")
	for _, col := range table.Columns {
		b.WriteString(", ")
		b.WriteString(pgx.Identifier{col}.Sanitize())
		b.WriteString(" TEXT NOT NULL")
	}
	b.WriteString(", PRIMARY KEY (run_id, seq))")
	return b.String()
}

func insertSQL(table *model.Table) string {
	cols := make([]string, 0, len(table.Columns)+2)
	params := make([]string, 0, len(table.Columns)+2)
	cols = append(cols, "run_id", "seq")
	for _, col := range table.Columns {
		cols = append(cols, pgx.Identifier{col}.Sanitize())
	}
	for i := range cols {
		params = append(params, "$"+strconv.Itoa(i+1))
	}

	return "INSERT INTO " + pgx.Identifier{table.Dataset}.Sanitize() +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(params, ", ") + ")" +
		" ON CONFLICT (run_id, seq) DO NOTHING"
}

func rowArgs(runID model.RunID, seq int, row []string) []any {
	args := make([]any, 0, len(row)+2)
	args = append(args, runID, seq)
	for _, f := range row {
		args = append(args, f)
	}
	return args
}
