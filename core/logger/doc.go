// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with both the sync pipeline and
// the Fiber status server.
//
// # Correlation
//
// Two helpers attach correlation fields to a logger:
//
//   - WithRunID attaches the run_id of a sync run, so every row and event
//     processed in one pass can be traced back to the run that touched it.
//   - WithRayID extracts the RayID (request ID) from a Fiber context for the
//     status endpoints.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync run started")
//
//	l := logger.WithRunID(log, runID)
//	l.Error("Event creation failed", zap.Error(err))
package logger
