package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2/clientcredentials"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// OutlookProvider implements Provider against the Microsoft Graph API.
// Authentication uses the OAuth client-credentials flow; token acquisition
// and refresh are handled by the underlying oauth2 transport.
type OutlookProvider struct {
	client     *resty.Client
	userID     string
	calendarID string
	timezone   string
	loc        *time.Location
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphLocation struct {
	DisplayName string `json:"displayName"`
}

type graphEvent struct {
	ID       string        `json:"id,omitempty"`
	Subject  string        `json:"subject"`
	Body     graphBody     `json:"body"`
	Location graphLocation `json:"location"`
	Start    graphDateTime `json:"start,omitempty"`
	End      graphDateTime `json:"end,omitempty"`
	WebLink  string        `json:"webLink,omitempty"`
}

type graphEventPage struct {
	Value    []graphEvent `json:"value"`
	NextLink string       `json:"@odata.nextLink"`
}

type graphEventPatch struct {
	Subject  string        `json:"subject"`
	Body     graphBody     `json:"body"`
	Location graphLocation `json:"location"`
}

// NewOutlookProvider creates a Microsoft Graph adapter.
func NewOutlookProvider(ctx context.Context, cfg Config) (*OutlookProvider, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.UserID == "" {
		return nil, fmt.Errorf("outlook provider requires tenant_id, client_id, client_secret and user_id")
	}

	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}

	client := resty.NewWithClient(creds.Client(ctx)).
		SetBaseURL(graphBaseURL).
		SetTimeout(30 * time.Second)

	calendarID := cfg.CalendarID
	if calendarID == "primary" {
		// "primary" is a Google notion; Graph uses the default calendar
		// when no calendar is named.
		calendarID = ""
	}

	return &OutlookProvider{
		client:     client,
		userID:     cfg.UserID,
		calendarID: calendarID,
		timezone:   cfg.Timezone,
		loc:        loc,
	}, nil
}

// Name returns the provider identifier.
func (p *OutlookProvider) Name() string {
	return ProviderOutlook
}

func (p *OutlookProvider) eventsPath() string {
	if p.calendarID != "" {
		return fmt.Sprintf("/users/%s/calendars/%s/events", p.userID, p.calendarID)
	}
	return fmt.Sprintf("/users/%s/events", p.userID)
}

func (p *OutlookProvider) calendarViewPath() string {
	if p.calendarID != "" {
		return fmt.Sprintf("/users/%s/calendars/%s/calendarView", p.userID, p.calendarID)
	}
	return fmt.Sprintf("/users/%s/calendarView", p.userID)
}

// ListEvents lists events, using the server-side calendarView range query
// when a window is given and a plain listing otherwise.
func (p *OutlookProvider) ListEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	req := p.client.R().SetContext(ctx).SetResult(&graphEventPage{})

	var resp *resty.Response
	var err error
	if !from.IsZero() && !to.IsZero() {
		resp, err = req.
			SetQueryParam("startDateTime", from.UTC().Format(time.RFC3339)).
			SetQueryParam("endDateTime", to.UTC().Format(time.RFC3339)).
			Get(p.calendarViewPath())
	} else {
		resp, err = req.Get(p.eventsPath())
	}
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing events: graph returned %s", resp.Status())
	}

	page := resp.Result().(*graphEventPage)
	events := p.fromGraphPage(page)

	// Follow @odata.nextLink pagination.
	for page.NextLink != "" {
		resp, err := p.client.R().SetContext(ctx).SetResult(&graphEventPage{}).Get(page.NextLink)
		if err != nil {
			return nil, fmt.Errorf("listing events (next page): %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("listing events (next page): graph returned %s", resp.Status())
		}
		page = resp.Result().(*graphEventPage)
		events = append(events, p.fromGraphPage(page)...)
	}

	return events, nil
}

// CreateEvent creates a new event on the user's calendar.
func (p *OutlookProvider) CreateEvent(ctx context.Context, ev Event) (Event, error) {
	body := graphEvent{
		Subject:  ev.Summary,
		Body:     graphBody{ContentType: "HTML", Content: ev.Description},
		Location: graphLocation{DisplayName: ev.Location},
		Start:    graphDateTime{DateTime: ev.Start.Format("2006-01-02T15:04:05"), TimeZone: p.timezone},
		End:      graphDateTime{DateTime: ev.End.Format("2006-01-02T15:04:05"), TimeZone: p.timezone},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&graphEvent{}).
		Post(p.eventsPath())
	if err != nil {
		return Event{}, fmt.Errorf("creating event: %w", err)
	}
	if resp.IsError() {
		return Event{}, fmt.Errorf("creating event: graph returned %s", resp.Status())
	}

	return p.fromGraph(resp.Result().(*graphEvent)), nil
}

// UpdateEvent patches subject, body and location; Graph leaves all other
// fields (including start/end) untouched on PATCH.
func (p *OutlookProvider) UpdateEvent(ctx context.Context, id string, ev Event) (Event, error) {
	patch := graphEventPatch{
		Subject:  ev.Summary,
		Body:     graphBody{ContentType: "HTML", Content: ev.Description},
		Location: graphLocation{DisplayName: ev.Location},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&graphEvent{}).
		Patch(p.eventsPath() + "/" + id)
	if err != nil {
		return Event{}, fmt.Errorf("updating event %s: %w", id, err)
	}
	if resp.IsError() {
		return Event{}, fmt.Errorf("updating event %s: graph returned %s", id, resp.Status())
	}

	return p.fromGraph(resp.Result().(*graphEvent)), nil
}

// DeleteEvent removes an event.
func (p *OutlookProvider) DeleteEvent(ctx context.Context, id string) error {
	resp, err := p.client.R().SetContext(ctx).Delete(p.eventsPath() + "/" + id)
	if err != nil {
		return fmt.Errorf("deleting event %s: %w", id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("deleting event %s: graph returned %s", id, resp.Status())
	}
	return nil
}

func (p *OutlookProvider) fromGraphPage(page *graphEventPage) []Event {
	events := make([]Event, 0, len(page.Value))
	for i := range page.Value {
		events = append(events, p.fromGraph(&page.Value[i]))
	}
	return events
}

func (p *OutlookProvider) fromGraph(ev *graphEvent) Event {
	return Event{
		ID:          ev.ID,
		Summary:     ev.Subject,
		Description: ev.Body.Content,
		Location:    ev.Location.DisplayName,
		Start:       p.parseGraphTime(ev.Start),
		End:         p.parseGraphTime(ev.End),
		Link:        ev.WebLink,
	}
}

// parseGraphTime parses Graph's dateTime payloads, which carry up to seven
// fractional digits and a separate IANA/Windows timeZone field.
func (p *OutlookProvider) parseGraphTime(dt graphDateTime) time.Time {
	if dt.DateTime == "" {
		return time.Time{}
	}

	loc := p.loc
	if dt.TimeZone == "UTC" || dt.TimeZone == "" {
		loc = time.UTC
	} else if l, err := time.LoadLocation(dt.TimeZone); err == nil {
		loc = l
	}

	for _, layout := range []string{"2006-01-02T15:04:05.9999999", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, dt.DateTime, loc); err == nil {
			return t.In(p.loc)
		}
	}
	return time.Time{}
}
