package rooster

import (
	"time"

	"preekrooster/core/calendar"
)

// MatchKind classifies how many existing events occupy a draft's window.
type MatchKind int

const (
	// NoMatch: no event starts at the draft's start time.
	NoMatch MatchKind = iota
	// SingleMatch: exactly one event occupies the window.
	SingleMatch
	// MultipleMatches: two or more events occupy the window. Always an
	// anomaly, never auto-resolved.
	MultipleMatches
)

// MatchOutcome carries the classification and the matching events (one for
// SingleMatch, all of them for MultipleMatches).
type MatchOutcome struct {
	Kind   MatchKind
	Events []calendar.Event
}

// Match determines which of the candidate events occupy the draft's time
// window. An event matches when its start equals the draft's start with
// both truncated to second precision; providers serialize identical
// instants with differing fractional precision and offset notation, so
// full-precision equality would spuriously miss.
func Match(draft Draft, candidates []calendar.Event) MatchOutcome {
	want := draft.Start.Truncate(time.Second)

	var matched []calendar.Event
	for _, ev := range candidates {
		if ev.Start.Truncate(time.Second).Equal(want) {
			matched = append(matched, ev)
		}
	}

	switch len(matched) {
	case 0:
		return MatchOutcome{Kind: NoMatch}
	case 1:
		return MatchOutcome{Kind: SingleMatch, Events: matched}
	default:
		return MatchOutcome{Kind: MultipleMatches, Events: matched}
	}
}
