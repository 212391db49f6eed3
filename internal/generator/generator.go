package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rickgao/treasury-testdata/internal/model"
)

// Default row counts per instrument.
const (
	DefaultPriceRows      = 1000
	DefaultTradeRows      = 10
	DefaultMarketDataRows = 1000
	DefaultInquiryRows    = 10
	DefaultPriceMin       = 99.0
	DefaultPriceMax       = 101.0
)

// Unit face value for quantities and sizes (10mm).
const lot = 10_000_000

// idSpace bounds trader and inquiry identifiers: [0, 1e10).
const idSpace = 10_000_000_000

// Fixed patterns tiled across each table.
var (
	priceOffsets = []float64{1.0 / 128, 1.0 / 64}
	tradeBooks   = []string{"TRSY1", "TRSY2", "TRSY3"}
	tradeLots    = []int64{1, 2, 3, 4, 5}
	buySell      = []model.Side{model.SideBuy, model.SideSell}
	bidOffer     = []model.Side{model.SideBid, model.SideOffer}
	spreadTicks  = []float64{1, 2, 3, 4, 3, 2} // in 1/128
	quoteLots    = []int64{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}
	inquiryLots  = []int64{1, 2, 3, 4, 5}
)

// Counts holds the number of rows generated per instrument for each dataset.
// Every count must be even.
type Counts struct {
	Prices     int
	Trades     int
	MarketData int
	Inquiries  int
}

// Config holds generator settings.
type Config struct {
	CUSIPs   []string
	Counts   Counts
	PriceMin float64
	PriceMax float64
	Seed     uint64 // 0 picks a time-based seed
}

// DefaultConfig returns a Config with the given instruments and default
// counts and price range.
func DefaultConfig(cusips []string) Config {
	return Config{
		CUSIPs: cusips,
		Counts: Counts{
			Prices:     DefaultPriceRows,
			Trades:     DefaultTradeRows,
			MarketData: DefaultMarketDataRows,
			Inquiries:  DefaultInquiryRows,
		},
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// Sink receives each generated table.
type Sink interface {
	Write(ctx context.Context, table *model.Table) error
}

// Generator synthesizes price, trade, market-data and inquiry tables.
// It is not safe for concurrent use.
type Generator struct {
	cusips   []string
	counts   Counts
	priceMin float64
	priceMax float64
	seed     uint64
	rng      *rand.Rand
	logger   *slog.Logger
}

// New validates cfg and creates a Generator.
func New(cfg Config, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.CUSIPs) == 0 {
		return nil, errors.New("at least one cusip is required")
	}
	for _, c := range []struct {
		name string
		n    int
	}{
		{model.DatasetPrices, cfg.Counts.Prices},
		{model.DatasetTrades, cfg.Counts.Trades},
		{model.DatasetMarketData, cfg.Counts.MarketData},
		{model.DatasetInquiries, cfg.Counts.Inquiries},
	} {
		if c.n < 2 || c.n%2 != 0 {
			return nil, fmt.Errorf("%s row count must be a positive even number, got %d", c.name, c.n)
		}
	}
	// Quotes straddle the mid by up to 1/64, so keep a point of headroom on
	// both sides of the codec's [0, 1000) domain.
	if cfg.PriceMin < 1 || cfg.PriceMax > 999 || cfg.PriceMin >= cfg.PriceMax {
		return nil, fmt.Errorf("price range [%v, %v) must satisfy 1 <= min < max <= 999", cfg.PriceMin, cfg.PriceMax)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cusips := make([]string, len(cfg.CUSIPs))
	copy(cusips, cfg.CUSIPs)

	return &Generator{
		cusips:   cusips,
		counts:   cfg.Counts,
		priceMin: cfg.PriceMin,
		priceMax: cfg.PriceMax,
		seed:     seed,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger:   logger,
	}, nil
}

// Seed returns the seed in use. Passing it back in Config reproduces the run.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Run generates every dataset in order (prices, trades, market data,
// inquiries) and hands each table to sink.
func (g *Generator) Run(ctx context.Context, sink Sink) error {
	steps := []struct {
		name  string
		build func() *model.Table
	}{
		{model.DatasetPrices, g.PriceTable},
		{model.DatasetTrades, g.TradeTable},
		{model.DatasetMarketData, g.MarketDataTable},
		{model.DatasetInquiries, g.InquiryTable},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		table := step.build()
		g.logger.Debug("generated table",
			"dataset", step.name,
			"rows", table.Len(),
			"duration", time.Since(start),
		)

		if err := sink.Write(ctx, table); err != nil {
			return fmt.Errorf("write %s: %w", step.name, err)
		}
		g.logger.Info("dataset written", "dataset", step.name, "rows", table.Len())
	}
	return nil
}

// PriceTable renders Prices as a table.
func (g *Generator) PriceTable() *model.Table {
	return model.NewTable(model.DatasetPrices, model.PriceColumns, g.Prices())
}

// TradeTable renders Trades as a table.
func (g *Generator) TradeTable() *model.Table {
	return model.NewTable(model.DatasetTrades, model.TradeColumns, g.Trades())
}

// MarketDataTable renders MarketData as a table.
func (g *Generator) MarketDataTable() *model.Table {
	return model.NewTable(model.DatasetMarketData, model.MarketDataColumns, g.MarketData())
}

// InquiryTable renders Inquiries as a table.
func (g *Generator) InquiryTable() *model.Table {
	return model.NewTable(model.DatasetInquiries, model.InquiryColumns, g.Inquiries())
}

// cusipAt returns the instrument for row i when each instrument owns perCUSIP
// consecutive rows.
func (g *Generator) cusipAt(i, perCUSIP int) string {
	return g.cusips[i/perCUSIP]
}

// rawPrice draws a uniform, unquantized price in [priceMin, priceMax).
func (g *Generator) rawPrice() float64 {
	return g.priceMin + (g.priceMax-g.priceMin)*g.rng.Float64()
}

// id draws a decimal identifier in [0, 1e10).
func (g *Generator) id() string {
	return strconv.FormatInt(g.rng.Int64N(idSpace), 10)
}
