package config

import (
	"errors"
	"fmt"

	"github.com/rickgao/treasury-testdata/internal/refdata"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if len(c.Output.Sinks) == 0 {
		return errors.New("output.sinks must name at least one sink")
	}
	for _, s := range c.Output.Sinks {
		if s != SinkFile && s != SinkPostgres {
			return fmt.Errorf("output.sinks: unknown sink %q", s)
		}
	}

	if err := c.Generator.validate("generator"); err != nil {
		return err
	}

	if c.HasSink(SinkPostgres) {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}

	return nil
}

func (g *GeneratorConfig) validate(prefix string) error {
	if len(g.CUSIPs) == 0 {
		return fmt.Errorf("%s.cusips is required", prefix)
	}
	seen := make(map[string]bool, len(g.CUSIPs))
	for _, c := range g.CUSIPs {
		if !refdata.ValidCUSIP(c) {
			return fmt.Errorf("%s.cusips: %q is not a 9-character CUSIP", prefix, c)
		}
		if seen[c] {
			return fmt.Errorf("%s.cusips: duplicate %q", prefix, c)
		}
		seen[c] = true
	}

	if g.PriceMin < 1 || g.PriceMax > 999 {
		return fmt.Errorf("%s.price_min and price_max must lie within [1, 999]", prefix)
	}
	if g.PriceMin >= g.PriceMax {
		return fmt.Errorf("%s.price_min (%v) must be below price_max (%v)", prefix, g.PriceMin, g.PriceMax)
	}

	counts := []struct {
		name string
		n    int
	}{
		{"prices", g.Counts.Prices},
		{"trades", g.Counts.Trades},
		{"market_data", g.Counts.MarketData},
		{"inquiries", g.Counts.Inquiries},
	}
	for _, c := range counts {
		if c.n < 2 {
			return fmt.Errorf("%s.counts.%s must be >= 2", prefix, c.name)
		}
		if c.n%2 != 0 {
			return fmt.Errorf("%s.counts.%s must be even, got %d", prefix, c.name, c.n)
		}
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	if db.BatchSize < 1 {
		return fmt.Errorf("%s.batch_size must be >= 1", prefix)
	}
	return nil
}
