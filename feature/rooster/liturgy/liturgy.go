package liturgy

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config holds configuration for the liturgy availability probe.
type Config struct {
	// URL is the liturgy document endpoint, e.g. the published PDF.
	URL string `mapstructure:"url" default:""`
	// TimeoutSeconds is the probe's HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// Availability answers whether this week's liturgy document has been
// published.
type Availability int

const (
	// ProbeFailed means the probe could not determine availability. It is
	// the zero value so uncertainty never claims availability.
	ProbeFailed Availability = iota
	// NotYetAvailable means the document has not changed since the start
	// of the target week; whatever is published is last week's.
	NotYetAvailable
	// Available means the document was refreshed during the target week.
	Available
)

// String returns a readable name for logging.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case NotYetAvailable:
		return "not_yet_available"
	default:
		return "probe_failed"
	}
}

// Probe performs conditional freshness checks against the liturgy document.
type Probe struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// New creates a probe for the configured document URL.
func New(cfg Config, logger *zap.Logger) *Probe {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &Probe{
		url: cfg.URL,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		logger: logger,
	}
}

// URL returns the document URL the probe checks, for use in event bodies.
func (p *Probe) URL() string {
	return p.url
}

// WeekStart returns Monday 00:00 of the ISO week containing t, in t's
// location.
func WeekStart(t time.Time) time.Time {
	// time.Weekday counts Sunday=0; ISO weeks start on Monday.
	days := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// Check issues a conditional GET keyed to the Monday 00:00 of the ISO week
// containing weekOf. The key is strictly the target week's Monday, never
// "now": a catch-up run against a past week gets the historically correct
// answer.
//
// A 200 response means the document changed since that Monday, i.e. it was
// freshly published for the target week. A 304 means it is still last
// week's artifact. Everything else folds into ProbeFailed.
func (p *Probe) Check(ctx context.Context, weekOf time.Time) Availability {
	monday := WeekStart(weekOf)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Error("Building liturgy request failed", zap.Error(err))
		return ProbeFailed
	}

	// http.TimeFormat renders the RFC 1123 GMT form the header requires,
	// e.g. "Mon, 03 Jun 2024 00:00:00 GMT".
	stamp := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
	req.Header.Set("If-Modified-Since", stamp.Format(http.TimeFormat))

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("Liturgy probe failed", zap.Error(err))
		return ProbeFailed
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		p.logger.Info("Liturgy available", zap.Time("week_start", monday))
		return Available
	case http.StatusNotModified:
		p.logger.Info("Liturgy not available this week", zap.Time("week_start", monday))
		return NotYetAvailable
	default:
		p.logger.Error("Unexpected status fetching liturgy", zap.Int("status", resp.StatusCode))
		return ProbeFailed
	}
}
