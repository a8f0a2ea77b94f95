// Package utils provides small conversion helpers for values scanned from
// the database.
//
// The schedule rows are read through an operator-configured query rather
// than a fixed model, so column values arrive as driver-dependent types
// ([]byte, int64, time.Time). These helpers normalize them.
package utils
