package rooster

import (
	"context"
	"fmt"
	"testing"
	"time"

	"preekrooster/feature/rooster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRowSource struct {
	rows []models.ServiceRow
	err  error
}

func (f *fakeRowSource) FetchRows(ctx context.Context) ([]models.ServiceRow, error) {
	return f.rows, f.err
}

func serviceRow(id int, day int, tod string) models.ServiceRow {
	return models.ServiceRow{
		ID:         id,
		Date:       time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
		Time:       tod,
		Title:      "morgendienst",
		Voorganger: "Ds. Jansen",
		Collecten:  [3]string{"Kerk", "Diaconie", "Onderhoud"},
	}
}

func newTestService(t *testing.T, rows RowSource, provider *fakeProvider) *Service {
	svc := NewService(rows, provider, &fakeProbe{}, amsterdam(t), zap.NewNop())
	// Pin the clock far from the test dates so no draft is "this week".
	svc.reconciler.now = func() time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestRun_PartialFailureIsolation(t *testing.T) {
	rows := &fakeRowSource{rows: []models.ServiceRow{
		serviceRow(1, 2, "09.30"),
		serviceRow(2, 9, "25.61"), // malformed time
		serviceRow(3, 16, "10:00"),
		serviceRow(4, 23, "09.30"),
	}}
	provider := &fakeProvider{}
	svc := newTestService(t, rows, provider)

	summary := svc.Run(context.Background())

	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Updated)
	assert.Len(t, provider.events, 3)
}

func TestRun_SecondPassUpdatesInsteadOfCreating(t *testing.T) {
	rows := &fakeRowSource{rows: []models.ServiceRow{
		serviceRow(1, 9, "09.30"),
		serviceRow(2, 16, "10:00"),
	}}
	provider := &fakeProvider{}
	svc := newTestService(t, rows, provider)
	ctx := context.Background()

	first := svc.Run(ctx)
	assert.Equal(t, 2, first.Created)

	second := svc.Run(ctx)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Updated)
	assert.Len(t, provider.events, 2)
}

func TestRun_RowFetchFailure(t *testing.T) {
	rows := &fakeRowSource{err: fmt.Errorf("connection lost")}
	provider := &fakeProvider{}
	svc := newTestService(t, rows, provider)

	summary := svc.Run(context.Background())

	assert.Contains(t, summary.LastError, "connection lost")
	assert.Zero(t, summary.Created+summary.Updated+summary.Failed)
}

func TestRun_ListFailure(t *testing.T) {
	rows := &fakeRowSource{rows: []models.ServiceRow{serviceRow(1, 9, "09.30")}}
	provider := &fakeProvider{listErr: fmt.Errorf("provider down")}
	svc := newTestService(t, rows, provider)

	summary := svc.Run(context.Background())

	assert.Contains(t, summary.LastError, "provider down")
	assert.Equal(t, 0, provider.creates)
}

func TestLastSummary(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, &fakeRowSource{}, provider)

	assert.Nil(t, svc.LastSummary())

	ran := svc.Run(context.Background())
	last := svc.LastSummary()
	require.NotNil(t, last)
	assert.Equal(t, ran.RunID, last.RunID)
	assert.NotEmpty(t, last.RunID)
}

func TestClearCalendar(t *testing.T) {
	p := &fakeProvider{}
	svc := newTestService(t, &fakeRowSource{rows: []models.ServiceRow{
		serviceRow(1, 9, "09.30"),
		serviceRow(2, 16, "10:00"),
	}}, p)

	svc.Run(context.Background())
	require.Len(t, p.events, 2)

	deleted, err := svc.ClearCalendar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Empty(t, p.events)
}
