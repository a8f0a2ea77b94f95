package rooster

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"preekrooster/feature/rooster/models"
)

// ServiceLocation is where every service takes place.
const ServiceLocation = "De Wijnstok"

// serviceDuration is fixed; no per-row override exists.
const serviceDuration = 90 * time.Minute

// MalformedTimeError reports a service time-of-day that could not be
// parsed. It aborts that row's reconciliation only.
type MalformedTimeError struct {
	RowID int
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("row %d: malformed service time %q", e.RowID, e.Value)
}

// Draft is the normalized in-memory form of one scheduled service, fully
// determined by its ServiceRow: re-deriving from the same row always yields
// the same draft, which is what makes re-runs idempotent.
type Draft struct {
	RowID      int
	Subject    string
	Start      time.Time
	End        time.Time
	Location   string
	Voorganger string
	Collecten  [3]string
}

// Mapper turns service rows into drafts, pinned to a single timezone.
type Mapper struct {
	loc *time.Location
}

// NewMapper creates a mapper producing draft times in the given location.
func NewMapper(loc *time.Location) *Mapper {
	return &Mapper{loc: loc}
}

// MapRow derives the draft for one row. The only way it can fail is a
// malformed time-of-day.
func (m *Mapper) MapRow(row models.ServiceRow) (Draft, error) {
	// The schedule data writes times as "09.30" as often as "09:30".
	timeStr := strings.ReplaceAll(strings.TrimSpace(row.Time), ".", ":")
	tod, err := time.Parse("15:04", timeStr)
	if err != nil {
		return Draft{}, &MalformedTimeError{RowID: row.ID, Value: row.Time}
	}

	start := time.Date(
		row.Date.Year(), row.Date.Month(), row.Date.Day(),
		tod.Hour(), tod.Minute(), 0, 0,
		m.loc,
	)

	draft := Draft{
		RowID:      row.ID,
		Subject:    capitalize(strings.TrimSpace(row.Title)),
		Start:      start,
		End:        start.Add(serviceDuration),
		Location:   ServiceLocation,
		Voorganger: strings.TrimSpace(row.Voorganger),
	}
	for i, c := range row.Collecten {
		draft.Collecten[i] = strings.TrimSpace(c)
	}

	return draft, nil
}

// capitalize upper-cases the first rune only; the rest of the casing is
// left untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
