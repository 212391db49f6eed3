package generator

import (
	"github.com/rickgao/treasury-testdata/internal/model"
	"github.com/rickgao/treasury-testdata/internal/pricing"
)

// MarketData generates Counts.MarketData rows per instrument as bid/offer
// pairs around a quantized mid. Each pair straddles the mid by half the
// spread, so offer - bid equals the spread exactly.
func (g *Generator) MarketData() []model.MarketDataRecord {
	num := g.counts.MarketData
	total := num * len(g.cusips)
	spreads := NewCycle(total/2, spreadTicks...)
	lots := NewCycle(total, quoteLots...)
	sides := NewCycle(total, bidOffer...)

	out := make([]model.MarketDataRecord, 0, total)
	for _, ticks := range spreads.All() {
		mid := pricing.Quantize(g.rawPrice())
		half := ticks / 128 / 2

		for _, px := range [2]float64{mid - half, mid + half} {
			i := len(out)
			out = append(out, model.MarketDataRecord{
				CUSIP: g.cusipAt(i, num),
				Price: pricing.Encode(px),
				Size:  lots.At(i) * lot,
				Side:  sides.At(i),
			})
		}
	}
	return out
}
