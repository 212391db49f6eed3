package generator

import (
	"github.com/rickgao/treasury-testdata/internal/model"
	"github.com/rickgao/treasury-testdata/internal/pricing"
)

// Prices generates Counts.Prices rows per instrument. P2 is P1 plus an
// offset that alternates 1/128, 1/64 across the whole table.
func (g *Generator) Prices() []model.PriceRecord {
	num := g.counts.Prices
	total := num * len(g.cusips)
	offsets := NewCycle(total, priceOffsets...)

	out := make([]model.PriceRecord, 0, total)
	for i, offset := range offsets.All() {
		p1 := pricing.Quantize(g.rawPrice())
		out = append(out, model.PriceRecord{
			CUSIP: g.cusipAt(i, num),
			P1:    pricing.Encode(p1),
			P2:    pricing.Encode(p1 + offset),
		})
	}
	return out
}
