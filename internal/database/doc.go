// Package database provides the PostgreSQL connection pool used by the
// postgres sink.
//
// Each dataset lands in its own table (prices, trades, marketdata,
// inquiries), keyed by (run_id, seq) so several runs can share a database.
package database
