// Package rooster implements the service schedule synchronization feature.
//
// It keeps the external calendar in step with the schedule database: every
// upcoming service row must correspond to exactly one calendar event with
// the correct subject, time window and description.
//
// # Pipeline
//
// One sync run flows strictly upward through small pieces:
//
//  1. RowSource (models): reads the upcoming rows through the configured
//     query.
//  2. Mapper: pure row -> Draft transformation (time parsing, trimming,
//     fixed 90 minute duration).
//  3. Match: counts how many existing events occupy a draft's window,
//     tolerant of provider serialization noise.
//  4. Reconciler: create on no match, update on a single match, report a
//     conflict and touch nothing on multiple matches. For the service in
//     the current ISO week it consults the liturgy probe and appends a
//     link or a "not yet available" notice to the body.
//  5. Service.Run: drives one full pass and aggregates the Summary.
//
// Failures are contained at the smallest meaningful unit: a malformed row
// or a provider error on one draft marks that row failed and the run
// continues. Re-running against unchanged inputs performs no-op updates,
// never duplicate creates.
//
// # Components
//
//   - Service: orchestrates runs, retains the last Summary, and implements
//     the administrative calendar clearing.
//   - Handler: exposes GET /rooster/status and POST /rooster/run.
//   - Feature: registers the handler with the application loader.
package rooster
