package generator

import (
	"github.com/rickgao/treasury-testdata/internal/model"
	"github.com/rickgao/treasury-testdata/internal/pricing"
)

// Inquiries generates Counts.Inquiries rows per instrument, all in the
// RECEIVED state.
func (g *Generator) Inquiries() []model.InquiryRecord {
	num := g.counts.Inquiries
	total := num * len(g.cusips)
	sides := NewCycle(total, buySell...)
	lots := NewCycle(total, inquiryLots...)

	out := make([]model.InquiryRecord, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, model.InquiryRecord{
			InquiryID: g.id(),
			CUSIP:     g.cusipAt(i, num),
			Side:      sides.At(i),
			Size:      lots.At(i) * lot,
			Price:     pricing.EncodeQuantized(g.rawPrice()),
			State:     model.InquiryReceived,
		})
	}
	return out
}
