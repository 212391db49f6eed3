package writer

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rickgao/treasury-testdata/internal/model"
)

// ctxCheckRows is how often a long write checks for cancellation.
const ctxCheckRows = 4096

// FileSink writes each table to <dir>/<file name> as comma-separated text
// with no header row. Generated fields never contain commas, quotes or line
// breaks, so csv.Writer emits them verbatim.
type FileSink struct {
	dir    string
	names  map[string]string
	logger *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewFileSink creates a FileSink rooted at dir. names maps dataset to file
// name; datasets missing from names fall back to DefaultFileNames, then to
// "<dataset>.txt".
func NewFileSink(dir string, names map[string]string, logger *slog.Logger) *FileSink {
	if logger == nil {
		logger = slog.Default()
	}
	merged := DefaultFileNames()
	for dataset, name := range names {
		if name != "" {
			merged[dataset] = name
		}
	}
	return &FileSink{
		dir:    dir,
		names:  merged,
		logger: logger,
	}
}

// Path returns the file path a dataset is written to.
func (s *FileSink) Path(dataset string) string {
	name, ok := s.names[dataset]
	if !ok {
		name = dataset + ".txt"
	}
	return filepath.Join(s.dir, name)
}

// Write replaces the dataset's file with the table's rows.
func (s *FileSink) Write(ctx context.Context, table *model.Table) error {
	start := time.Now()
	path := s.Path(table.Dataset)

	n, err := s.writeFile(ctx, path, table)

	s.mu.Lock()
	if err != nil {
		s.metrics.Errors++
	} else {
		s.metrics.Tables++
		s.metrics.Inserts += int64(n)
		s.metrics.Flushes++
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.logger.Debug("wrote file",
		"path", path,
		"rows", n,
		"duration", time.Since(start),
	)
	return nil
}

func (s *FileSink) writeFile(ctx context.Context, path string, table *model.Table) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("create directory %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create file %s: %w", path, err)
	}
	defer file.Close()

	buffer := bufio.NewWriter(file)
	w := csv.NewWriter(buffer)

	for i, row := range table.Rows {
		if i%ctxCheckRows == 0 {
			if err := ctx.Err(); err != nil {
				return i, err
			}
		}
		if err := w.Write(row); err != nil {
			return i, fmt.Errorf("write row %d to %s: %w", i, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush writer for %s: %w", path, err)
	}
	if err := buffer.Flush(); err != nil {
		return 0, fmt.Errorf("flush buffer for %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("close file %s: %w", path, err)
	}

	return len(table.Rows), nil
}

// Stats returns current metrics.
func (s *FileSink) Stats() WriterMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// Close is a no-op; every Write closes its own file.
func (s *FileSink) Close() error {
	return nil
}
