package rooster

import (
	"errors"
	"testing"
	"time"

	"preekrooster/feature/rooster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amsterdam(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	return loc
}

func testRow() models.ServiceRow {
	return models.ServiceRow{
		ID:         1,
		Date:       time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		Time:       "09.30",
		Title:      " morgendienst met Avondmaal ",
		Voorganger: " Ds. Jansen ",
		Collecten:  [3]string{" Kerk ", "Diaconie", " Onderhoud"},
	}
}

func TestMapRow(t *testing.T) {
	loc := amsterdam(t)
	mapper := NewMapper(loc)

	draft, err := mapper.MapRow(testRow())
	require.NoError(t, err)

	assert.Equal(t, 1, draft.RowID)
	assert.Equal(t, time.Date(2024, 6, 9, 9, 30, 0, 0, loc), draft.Start)
	assert.Equal(t, "Morgendienst met Avondmaal", draft.Subject)
	assert.Equal(t, ServiceLocation, draft.Location)
	assert.Equal(t, "Ds. Jansen", draft.Voorganger)
	assert.Equal(t, [3]string{"Kerk", "Diaconie", "Onderhoud"}, draft.Collecten)
}

func TestMapRow_DurationInvariant(t *testing.T) {
	mapper := NewMapper(amsterdam(t))

	for _, tod := range []string{"09.30", "10:00", "19.00", "00:05"} {
		row := testRow()
		row.Time = tod

		draft, err := mapper.MapRow(row)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, draft.End.Sub(draft.Start), "time %q", tod)
	}
}

func TestMapRow_TimeSeparators(t *testing.T) {
	mapper := NewMapper(amsterdam(t))

	rowDot := testRow()
	rowDot.Time = "14.30"
	rowColon := testRow()
	rowColon.Time = "14:30"

	draftDot, err := mapper.MapRow(rowDot)
	require.NoError(t, err)
	draftColon, err := mapper.MapRow(rowColon)
	require.NoError(t, err)

	assert.Equal(t, draftColon.Start, draftDot.Start)
	assert.Equal(t, 14, draftDot.Start.Hour())
	assert.Equal(t, 30, draftDot.Start.Minute())
}

func TestMapRow_MalformedTime(t *testing.T) {
	mapper := NewMapper(amsterdam(t))

	for _, tod := range []string{"25.61", "zondag", "", "9u30"} {
		row := testRow()
		row.Time = tod

		_, err := mapper.MapRow(row)
		require.Error(t, err, "time %q", tod)

		var malformed *MalformedTimeError
		require.True(t, errors.As(err, &malformed), "time %q", tod)
		assert.Equal(t, 1, malformed.RowID)
		assert.Equal(t, tod, malformed.Value)
	}
}

func TestMapRow_Deterministic(t *testing.T) {
	mapper := NewMapper(amsterdam(t))
	row := testRow()

	first, err := mapper.MapRow(row)
	require.NoError(t, err)
	second, err := mapper.MapRow(row)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"morgendienst", "Morgendienst"},
		{"Morgendienst", "Morgendienst"},
		{"dienst met HA", "Dienst met HA"},
		{"", ""},
		{"éénzame dienst", "Éénzame dienst"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalize(tt.in), "input %q", tt.in)
	}
}
