package config

import "github.com/rickgao/treasury-testdata/internal/refdata"

// Default values for optional configuration fields.
const (
	DefaultSink           = SinkFile
	DefaultPriceMin       = 99.0
	DefaultPriceMax       = 101.0
	DefaultPriceRows      = 1000
	DefaultTradeRows      = 10
	DefaultMarketDataRows = 1000
	DefaultInquiryRows    = 10
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 4
	DefaultMinConns       = 1
	DefaultBatchSize      = 1000
)

func (c *Config) applyDefaults() {
	// Output defaults
	if len(c.Output.Sinks) == 0 {
		c.Output.Sinks = []string{DefaultSink}
	}

	// Generator defaults
	if len(c.Generator.CUSIPs) == 0 {
		c.Generator.CUSIPs = refdata.CUSIPs()
	}
	if c.Generator.PriceMin == 0 {
		c.Generator.PriceMin = DefaultPriceMin
	}
	if c.Generator.PriceMax == 0 {
		c.Generator.PriceMax = DefaultPriceMax
	}
	if c.Generator.Counts.Prices == 0 {
		c.Generator.Counts.Prices = DefaultPriceRows
	}
	if c.Generator.Counts.Trades == 0 {
		c.Generator.Counts.Trades = DefaultTradeRows
	}
	if c.Generator.Counts.MarketData == 0 {
		c.Generator.Counts.MarketData = DefaultMarketDataRows
	}
	if c.Generator.Counts.Inquiries == 0 {
		c.Generator.Counts.Inquiries = DefaultInquiryRows
	}

	// Database defaults
	applyDBDefaults(&c.Database)
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
	if db.BatchSize == 0 {
		db.BatchSize = DefaultBatchSize
	}
}
