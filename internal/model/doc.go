// Package model defines the synthetic fixed-income records produced by the
// generators and the Table form that sinks consume.
//
// Conventions:
//   - Prices: handle-fraction strings (see package pricing), e.g. "100-16+"
//   - Quantities and sizes: face value in dollars (10_000_000 = 10mm)
//   - IDs: decimal strings for trader and inquiry IDs, uuid.UUID for runs
package model
