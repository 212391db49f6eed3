package generator

import (
	"github.com/rickgao/treasury-testdata/internal/model"
	"github.com/rickgao/treasury-testdata/internal/pricing"
)

// Trades generates Counts.Trades rows per instrument with cycling books,
// quantities and BUY/SELL sides.
func (g *Generator) Trades() []model.TradeRecord {
	num := g.counts.Trades
	total := num * len(g.cusips)
	books := NewCycle(total, tradeBooks...)
	lots := NewCycle(total, tradeLots...)
	sides := NewCycle(total, buySell...)

	out := make([]model.TradeRecord, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, model.TradeRecord{
			CUSIP:    g.cusipAt(i, num),
			TraderID: g.id(),
			Price:    pricing.EncodeQuantized(g.rawPrice()),
			Book:     books.At(i),
			Quantity: lots.At(i) * lot,
			Side:     sides.At(i),
		})
	}
	return out
}
