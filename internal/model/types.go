package model

import (
	"strconv"

	"github.com/google/uuid"
)

// RunID identifies one invocation of the generator. Sinks that keep data
// across runs (Postgres) tag every row with it.
type RunID = uuid.UUID

// NewRunID returns a fresh random run identifier.
func NewRunID() RunID {
	return uuid.New()
}

// -----------------------------------------------------------------------------
// Enumerations
// -----------------------------------------------------------------------------

// Side is the direction of a trade, inquiry, or quote.
type Side string

const (
	SideBuy   Side = "BUY"
	SideSell  Side = "SELL"
	SideBid   Side = "BID"
	SideOffer Side = "OFFER"
)

// InquiryState is the lifecycle state of a customer inquiry.
// Generated inquiries always start RECEIVED; later transitions belong to
// downstream consumers.
type InquiryState string

const InquiryReceived InquiryState = "RECEIVED"

// -----------------------------------------------------------------------------
// Records
// -----------------------------------------------------------------------------

// PriceRecord is an internal price tick: two quotes for the same instrument.
type PriceRecord struct {
	CUSIP string
	P1    string // Handle-fraction price
	P2    string // P1 plus 1/128 or 1/64
}

// TradeRecord is a booked trade.
type TradeRecord struct {
	CUSIP    string
	TraderID string // Decimal integer in [0, 1e10)
	Price    string // Handle-fraction price
	Book     string // Trading book (TRSY1..TRSY3)
	Quantity int64  // Face value
	Side     Side   // BUY or SELL
}

// MarketDataRecord is one side of a two-sided quote.
type MarketDataRecord struct {
	CUSIP string
	Price string // Handle-fraction price
	Size  int64  // Face value
	Side  Side   // BID or OFFER
}

// InquiryRecord is a customer price inquiry.
type InquiryRecord struct {
	InquiryID string // Decimal integer in [0, 1e10)
	CUSIP     string
	Side      Side // BUY or SELL
	Size      int64
	Price     string // Handle-fraction price
	State     InquiryState
}

// -----------------------------------------------------------------------------
// Tables
// -----------------------------------------------------------------------------

// Dataset names, also used as default Postgres table names.
const (
	DatasetPrices     = "prices"
	DatasetTrades     = "trades"
	DatasetMarketData = "marketdata"
	DatasetInquiries  = "inquiries"
)

// Record is implemented by every generated record type.
type Record interface {
	Fields() []string
}

// Table is an ordered set of rendered rows with fixed column order.
type Table struct {
	Dataset string
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// NewTable renders records into a Table.
func NewTable[R Record](dataset string, columns []string, records []R) *Table {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Fields()
	}
	return &Table{Dataset: dataset, Columns: columns, Rows: rows}
}

// Column orders, one per dataset.
var (
	PriceColumns      = []string{"cusip", "p1", "p2"}
	TradeColumns      = []string{"cusip", "traderID", "price", "books", "quantity", "side"}
	MarketDataColumns = []string{"cusip", "price", "size", "side"}
	InquiryColumns    = []string{"inquiryID", "cusip", "side", "size", "price", "state"}
)

func (r PriceRecord) Fields() []string {
	return []string{r.CUSIP, r.P1, r.P2}
}

func (r TradeRecord) Fields() []string {
	return []string{
		r.CUSIP,
		r.TraderID,
		r.Price,
		r.Book,
		strconv.FormatInt(r.Quantity, 10),
		string(r.Side),
	}
}

func (r MarketDataRecord) Fields() []string {
	return []string{r.CUSIP, r.Price, strconv.FormatInt(r.Size, 10), string(r.Side)}
}

func (r InquiryRecord) Fields() []string {
	return []string{
		r.InquiryID,
		r.CUSIP,
		string(r.Side),
		strconv.FormatInt(r.Size, 10),
		r.Price,
		string(r.State),
	}
}
