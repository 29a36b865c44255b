// Package sqlite provides the SQLite-backed evaluation ledger.
//
// Every reconciliation decision - acquire, unchanged, removed - is
// appended to a local audit table so operators can answer "why was this
// document re-fetched" after the fact. Uses modernc.org/sqlite (pure Go,
// no CGO) with embedded schema migrations.
package sqlite
