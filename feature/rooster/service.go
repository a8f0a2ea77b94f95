package rooster

import (
	"context"
	"sync"
	"time"

	"preekrooster/core/calendar"
	"preekrooster/core/logger"
	"preekrooster/feature/rooster/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RowSource yields the upcoming service rows, in the database's natural
// order.
type RowSource interface {
	FetchRows(ctx context.Context) ([]models.ServiceRow, error)
}

// Summary aggregates the outcomes of one sync run.
type Summary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	// LastError is set when the run could not process rows at all (row
	// fetch or event listing failed). Per-row failures only count in
	// Failed.
	LastError string `json:"last_error,omitempty"`
}

// Service drives full sync passes. It is stateless between runs; the only
// thing retained is the last summary, for the status endpoint.
type Service struct {
	rows       RowSource
	provider   calendar.Provider
	mapper     *Mapper
	reconciler *Reconciler
	logger     *zap.Logger

	mu   sync.Mutex
	last *Summary
}

// NewService creates a sync service.
func NewService(rows RowSource, provider calendar.Provider, probe LiturgyChecker, loc *time.Location, log *zap.Logger) *Service {
	return &Service{
		rows:       rows,
		provider:   provider,
		mapper:     NewMapper(loc),
		reconciler: NewReconciler(provider, probe, log),
		logger:     log,
	}
}

// Run performs one full sync pass: fetch all rows, fetch the provider's
// event surface once, reconcile every row in order. Safe to invoke
// repeatedly; a failed row or draft never aborts the rest of the run.
func (s *Service) Run(ctx context.Context) Summary {
	runID := uuid.NewString()
	l := logger.WithRunID(s.logger, runID)

	summary := Summary{RunID: runID, StartedAt: time.Now()}
	l.Debug("Sync run started")

	rows, err := s.rows.FetchRows(ctx)
	if err != nil {
		l.Error("Fetching service rows failed", zap.Error(err))
		return s.finish(l, summary, err)
	}

	// One listing per run; nothing is cached across runs. The provider is
	// the sole authority over its event set.
	candidates, err := s.provider.ListEvents(ctx, time.Time{}, time.Time{})
	if err != nil {
		l.Error("Listing calendar events failed", zap.Error(err))
		return s.finish(l, summary, err)
	}

	for _, row := range rows {
		draft, err := s.mapper.MapRow(row)
		if err != nil {
			l.Error("Mapping service row failed", zap.Int("row", row.ID), zap.Error(err))
			summary.Failed++
			continue
		}

		action, err := s.reconciler.Reconcile(ctx, draft, candidates)
		if err != nil {
			l.Error("Reconciling service failed",
				zap.Int("row", draft.RowID),
				zap.Time("start", draft.Start),
				zap.Error(err),
			)
			summary.Failed++
			continue
		}

		switch action {
		case ActionCreated:
			summary.Created++
		case ActionUpdated:
			summary.Updated++
		case ActionConflict:
			summary.Skipped++
		}
	}

	return s.finish(l, summary, nil)
}

func (s *Service) finish(l *zap.Logger, summary Summary, runErr error) Summary {
	summary.FinishedAt = time.Now()
	if runErr != nil {
		summary.LastError = runErr.Error()
	}

	l.Info("Sync run completed",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)

	s.mu.Lock()
	s.last = &summary
	s.mu.Unlock()

	return summary
}

// LastSummary returns the most recent run summary, or nil when no run has
// completed yet.
func (s *Service) LastSummary() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	copied := *s.last
	return &copied
}

// ClearCalendar deletes every event from the provider. Administrative
// operation, not part of the sync path.
func (s *Service) ClearCalendar(ctx context.Context) (int, error) {
	events, err := s.provider.ListEvents(ctx, time.Time{}, time.Time{})
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, ev := range events {
		if err := s.provider.DeleteEvent(ctx, ev.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
