package calendar

import (
	"context"
	"fmt"
	"time"
)

// Event is the provider-neutral view of a calendar event. Only the fields
// the sync engine reads or mutates are exposed; everything else stays with
// the provider.
type Event struct {
	// ID is the provider-assigned event identity. Empty on events that have
	// not been created yet.
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	// Link is a human-viewable URL for the event, when the provider has one.
	Link string
}

// Provider is the abstract calendar capability the sync engine works
// against. Both the Google Calendar and the Outlook/Graph adapters
// implement it; authentication and session lifecycle are entirely owned by
// the adapter.
type Provider interface {
	// Name returns the provider's identifier (e.g. "google").
	Name() string

	// ListEvents returns events in the given window. A zero from/to lists
	// all events; callers perform their own window filtering in that case.
	ListEvents(ctx context.Context, from, to time.Time) ([]Event, error)

	// CreateEvent creates a new event and returns it with its assigned ID.
	CreateEvent(ctx context.Context, ev Event) (Event, error)

	// UpdateEvent mutates subject, description and location of an existing
	// event. Start and end of an existing event are never altered.
	UpdateEvent(ctx context.Context, id string, ev Event) (Event, error)

	// DeleteEvent removes an event. Used only by the administrative clear
	// operation, never by the sync path.
	DeleteEvent(ctx context.Context, id string) error
}

// NewProvider builds the configured provider adapter.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case ProviderGoogle:
		return NewGoogleProvider(ctx, cfg)
	case ProviderOutlook:
		return NewOutlookProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown calendar provider %q", cfg.Provider)
	}
}
