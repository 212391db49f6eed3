// Package writer implements the sinks that persist generated tables.
//
// Sinks:
//   - File sink: one comma-separated text file per dataset, no header
//   - Postgres sink: one table per dataset, rows tagged with the run ID
//   - Multi sink: fans each table out to several sinks in order
//
// All sinks use append-only semantics within a run. The file sink truncates
// existing files at the start of each dataset.
package writer
