// Package scheduler drives the periodic sync runs.
//
// The sync entry point is stateless and idempotent, so the scheduling shell
// is deliberately trivial: one immediate run at process start, then two
// fixed cron schedules (by default daily at 00:05 and Sunday at 09:30,
// matching the moment the weekly liturgy is expected to be published). A
// failed run is not retried; the next scheduled run is the retry mechanism.
package scheduler
