package writer

import (
	"context"

	"github.com/rickgao/treasury-testdata/internal/model"
)

// Sink persists generated tables.
type Sink interface {
	Write(ctx context.Context, table *model.Table) error
	Close() error
}

// WriterConfig contains configuration for batch writers.
type WriterConfig struct {
	// BatchSize is the number of rows sent per database round trip.
	BatchSize int
}

// DefaultWriterConfig returns sensible defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize: 1000,
	}
}

// WriterMetrics holds metrics for a sink.
type WriterMetrics struct {
	Tables    int64
	Inserts   int64
	Conflicts int64
	Errors    int64
	Flushes   int64
}

// Default output file names per dataset.
const (
	FilePrices     = "prices.txt"
	FileTrades     = "trades.txt"
	FileMarketData = "marketdata.txt"
	FileInquiries  = "inquires.txt"
)

// DefaultFileNames maps each dataset to its default file name.
func DefaultFileNames() map[string]string {
	return map[string]string{
		model.DatasetPrices:     FilePrices,
		model.DatasetTrades:     FileTrades,
		model.DatasetMarketData: FileMarketData,
		model.DatasetInquiries:  FileInquiries,
	}
}
