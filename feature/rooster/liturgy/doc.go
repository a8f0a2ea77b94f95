// Package liturgy infers whether the weekly liturgy document has been
// published, using an HTTP conditional GET keyed to the Monday 00:00 of the
// target ISO week.
//
// The document lives at a fixed URL and is overwritten each week. A 200
// against If-Modified-Since: <target week's Monday> means it was refreshed
// for that week; a 304 means the published file still belongs to an earlier
// week. Probe failures degrade to "not available" so an outage can never
// advertise a liturgy that is not there.
package liturgy
