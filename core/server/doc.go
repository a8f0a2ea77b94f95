// Package server holds configuration for the operational HTTP server.
//
// The status server is not part of the sync pipeline; it only exposes a
// health endpoint and the summary of the most recent sync run so operators
// can observe the daemon without reading logs.
package server
