package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleProvider implements Provider against the Google Calendar API using
// a service account.
type GoogleProvider struct {
	srv        *gcal.Service
	calendarID string
	timezone   string
	loc        *time.Location
}

// NewGoogleProvider creates a Google Calendar adapter from a service
// account credentials file.
func NewGoogleProvider(ctx context.Context, cfg Config) (*GoogleProvider, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	srv, err := gcal.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	return &GoogleProvider{
		srv:        srv,
		calendarID: cfg.CalendarID,
		timezone:   cfg.Timezone,
		loc:        loc,
	}, nil
}

// Name returns the provider identifier.
func (p *GoogleProvider) Name() string {
	return ProviderGoogle
}

// ListEvents lists events, optionally bounded to [from, to). SingleEvents
// expands recurring series so every candidate carries a concrete start.
func (p *GoogleProvider) ListEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	var events []Event
	pageToken := ""

	for {
		call := p.srv.Events.List(p.calendarID).
			Context(ctx).
			SingleEvents(true).
			ShowDeleted(false)

		if !from.IsZero() {
			call = call.TimeMin(from.Format(time.RFC3339)).OrderBy("startTime")
		}
		if !to.IsZero() {
			call = call.TimeMax(to.Format(time.RFC3339))
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		result, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing events: %w", err)
		}

		for _, item := range result.Items {
			events = append(events, p.fromGoogle(item))
		}

		if result.NextPageToken == "" {
			return events, nil
		}
		pageToken = result.NextPageToken
	}
}

// CreateEvent inserts a new event.
func (p *GoogleProvider) CreateEvent(ctx context.Context, ev Event) (Event, error) {
	created, err := p.srv.Events.Insert(p.calendarID, &gcal.Event{
		Summary:     ev.Summary,
		Location:    ev.Location,
		Description: ev.Description,
		Start:       p.toEventDateTime(ev.Start),
		End:         p.toEventDateTime(ev.End),
	}).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("inserting event: %w", err)
	}
	return p.fromGoogle(created), nil
}

// UpdateEvent replaces subject, description and location of an existing
// event. The stored start/end are re-sent unchanged because the Events
// update call replaces the full resource.
func (p *GoogleProvider) UpdateEvent(ctx context.Context, id string, ev Event) (Event, error) {
	existing, err := p.srv.Events.Get(p.calendarID, id).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("fetching event %s: %w", id, err)
	}

	existing.Summary = ev.Summary
	existing.Description = ev.Description
	existing.Location = ev.Location

	updated, err := p.srv.Events.Update(p.calendarID, id, existing).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("updating event %s: %w", id, err)
	}
	return p.fromGoogle(updated), nil
}

// DeleteEvent removes an event from the calendar.
func (p *GoogleProvider) DeleteEvent(ctx context.Context, id string) error {
	if err := p.srv.Events.Delete(p.calendarID, id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("deleting event %s: %w", id, err)
	}
	return nil
}

func (p *GoogleProvider) toEventDateTime(t time.Time) *gcal.EventDateTime {
	return &gcal.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: p.timezone,
	}
}

func (p *GoogleProvider) fromGoogle(item *gcal.Event) Event {
	return Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Start:       p.parseEventTime(item.Start),
		End:         p.parseEventTime(item.End),
		Link:        item.HtmlLink,
	}
}

// parseEventTime handles both timed events (RFC 3339 DateTime, possibly
// with fractional seconds and an offset) and all-day events (bare Date).
func (p *GoogleProvider) parseEventTime(edt *gcal.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t.In(p.loc)
		}
		return time.Time{}
	}
	if edt.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", edt.Date, p.loc); err == nil {
			return t
		}
	}
	return time.Time{}
}
