package rooster

import (
	"context"
	"fmt"
	"time"

	"preekrooster/core/calendar"
	"preekrooster/feature/rooster/liturgy"

	"go.uber.org/zap"
)

// Action is the outcome of reconciling one draft.
type Action string

const (
	// ActionCreated: no event occupied the window, one was created.
	ActionCreated Action = "created"
	// ActionUpdated: exactly one event occupied the window and its
	// subject/body/location were rewritten.
	ActionUpdated Action = "updated"
	// ActionConflict: multiple events occupy the window; nothing was
	// mutated, operator attention is required.
	ActionConflict Action = "conflict"
)

// LiturgyChecker is the slice of the probe the reconciler needs.
type LiturgyChecker interface {
	Check(ctx context.Context, weekOf time.Time) liturgy.Availability
	URL() string
}

// Reconciler decides create-vs-update-vs-conflict for a single draft
// against the provider's current event set.
type Reconciler struct {
	provider calendar.Provider
	probe    LiturgyChecker
	logger   *zap.Logger

	// now is the wall clock used for the "is this the service coming up
	// very soon" check. Overridable in tests.
	now func() time.Time
}

// NewReconciler creates a reconciler.
func NewReconciler(provider calendar.Provider, probe LiturgyChecker, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		provider: provider,
		probe:    probe,
		logger:   logger,
		now:      time.Now,
	}
}

// Reconcile ensures exactly one event exists for the draft. Candidates are
// the provider's current events, fetched once per run by the caller.
//
// Re-running against an unchanged draft and unchanged provider state
// reaches SingleMatch and performs a no-op update, never a duplicate
// create.
func (r *Reconciler) Reconcile(ctx context.Context, draft Draft, candidates []calendar.Event) (Action, error) {
	outcome := Match(draft, candidates)

	body := BuildBody(draft)
	if r.inCurrentWeek(draft.Start) {
		// Only the service coming up this week gets a liturgy line; the
		// probe is keyed to the draft's week, not to "now".
		avail := r.probe.Check(ctx, draft.Start)
		body = AppendLiturgyLine(body, avail, r.probe.URL())
		r.logger.Debug("Liturgy probe result",
			zap.Int("row", draft.RowID),
			zap.String("availability", avail.String()),
		)
	}

	switch outcome.Kind {
	case NoMatch:
		created, err := r.provider.CreateEvent(ctx, calendar.Event{
			Summary:     draft.Subject,
			Description: body,
			Location:    draft.Location,
			Start:       draft.Start,
			End:         draft.End,
		})
		if err != nil {
			return "", fmt.Errorf("creating event for row %d: %w", draft.RowID, err)
		}
		r.logger.Debug("New event created",
			zap.Int("row", draft.RowID),
			zap.Time("start", draft.Start),
			zap.String("link", created.Link),
		)
		return ActionCreated, nil

	case SingleMatch:
		existing := outcome.Events[0]
		updated, err := r.provider.UpdateEvent(ctx, existing.ID, calendar.Event{
			Summary:     draft.Subject,
			Description: body,
			Location:    draft.Location,
		})
		if err != nil {
			return "", fmt.Errorf("updating event %s for row %d: %w", existing.ID, draft.RowID, err)
		}
		r.logger.Debug("Event updated",
			zap.Int("row", draft.RowID),
			zap.Time("start", draft.Start),
			zap.String("link", updated.Link),
		)
		return ActionUpdated, nil

	default:
		ids := make([]string, len(outcome.Events))
		for i, ev := range outcome.Events {
			ids[i] = ev.ID
		}
		r.logger.Warn("Multiple events found for the same time, skipping",
			zap.Int("row", draft.RowID),
			zap.Time("start", draft.Start),
			zap.Strings("event_ids", ids),
		)
		return ActionConflict, nil
	}
}

// inCurrentWeek reports whether t falls in the current ISO week. This one
// comparison is wall-clock-relative on purpose: it answers "is this the
// service coming up very soon".
func (r *Reconciler) inCurrentWeek(t time.Time) bool {
	nowYear, nowWeek := r.now().ISOWeek()
	year, week := t.ISOWeek()
	return nowYear == year && nowWeek == week
}
