package writer

import (
	"context"
	"errors"

	"github.com/rickgao/treasury-testdata/internal/model"
)

// MultiSink writes each table to every sink in order, stopping at the first
// failure.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a MultiSink over sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Write forwards table to each sink.
func (m *MultiSink) Write(ctx context.Context, table *model.Table) error {
	for _, s := range m.sinks {
		if err := s.Write(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
