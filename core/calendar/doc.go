// Package calendar abstracts the external calendar holding the events of
// record.
//
// The sync engine only depends on the Provider interface; the two adapters
// translate it onto concrete backends:
//
//   - GoogleProvider: Google Calendar API v3 with service account
//     credentials.
//   - OutlookProvider: Microsoft Graph REST API with the OAuth
//     client-credentials flow.
//
// # Time handling
//
// Providers serialize identical instants differently (fractional second
// precision, offset vs named timezone). Adapters normalize every event
// start/end into time.Time in the configured timezone; matching tolerance
// for serialization noise lives with the caller, not here.
//
// # Mutation contract
//
// UpdateEvent only ever rewrites subject, description and location. The
// start and end of an existing event are never altered by an update.
// DeleteEvent exists for the administrative clear operation and is not part
// of the sync path.
package calendar
