package writer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rickgao/treasury-testdata/internal/model"
)

func TestCreateTableSQL(t *testing.T) {
	table := &model.Table{Dataset: model.DatasetMarketData, Columns: model.MarketDataColumns}

	want := `CREATE TABLE IF NOT EXISTS "marketdata" (run_id UUID NOT NULL, seq INTEGER NOT NULL, ` +
		`"cusip" TEXT NOT NULL, "price" TEXT NOT NULL, "size" TEXT NOT NULL, "side" TEXT NOT NULL, ` +
		`PRIMARY KEY (run_id, seq))`
	if got := createTableSQL(table); got != want {
		t.Errorf("createTableSQL() =\n%s\nwant\n%s", got, want)
	}
}

func TestInsertSQL(t *testing.T) {
	table := &model.Table{Dataset: model.DatasetPrices, Columns: model.PriceColumns}

	want := `INSERT INTO "prices" (run_id, seq, "cusip", "p1", "p2") VALUES ($1, $2, $3, $4, $5)` +
		` ON CONFLICT (run_id, seq) DO NOTHING`
	if got := insertSQL(table); got != want {
		t.Errorf("insertSQL() =\n%s\nwant\n%s", got, want)
	}
}

func TestInsertSQL_QuotesIdentifiers(t *testing.T) {
	table := &model.Table{Dataset: `bad"name`, Columns: []string{"traderID"}}

	want := `INSERT INTO "bad""name" (run_id, seq, "traderID") VALUES ($1, $2, $3)` +
		` ON CONFLICT (run_id, seq) DO NOTHING`
	if got := insertSQL(table); got != want {
		t.Errorf("insertSQL() = %s, want %s", got, want)
	}
}

func TestRowArgs(t *testing.T) {
	runID := uuid.MustParse("6f1c2a36-5b7e-4c55-9a0e-1f2d3c4b5a69")

	args := rowArgs(runID, 12, []string{"A", "99-000", "99-002"})

	if len(args) != 5 {
		t.Fatalf("len(args) = %d, want 5", len(args))
	}
	if args[0] != runID {
		t.Errorf("args[0] = %v, want %v", args[0], runID)
	}
	if args[1] != 12 {
		t.Errorf("args[1] = %v, want 12", args[1])
	}
	if args[4] != "99-002" {
		t.Errorf("args[4] = %v, want 99-002", args[4])
	}
}

func TestPostgresSink_NoDatabase(t *testing.T) {
	// Note: We can't test actual DB writes without a database
	s := NewPostgresSink(DefaultWriterConfig(), nil, model.NewRunID(), nil)

	err := s.Write(context.Background(), &model.Table{Dataset: model.DatasetPrices})
	if !errors.Is(err, errNoDatabase) {
		t.Errorf("Write() error = %v, want errNoDatabase", err)
	}
}

func TestNewPostgresSink_DefaultBatchSize(t *testing.T) {
	s := NewPostgresSink(WriterConfig{}, nil, model.NewRunID(), nil)

	if s.cfg.BatchSize != DefaultWriterConfig().BatchSize {
		t.Errorf("BatchSize = %d, want %d", s.cfg.BatchSize, DefaultWriterConfig().BatchSize)
	}
	if stats := s.Stats(); stats.Inserts != 0 || stats.Errors != 0 {
		t.Errorf("initial Stats() = %+v, want zero", stats)
	}
}
