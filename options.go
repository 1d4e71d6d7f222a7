package efa

import (
	"net/http"
	"time"
)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLocation sets the timezone departure times are reported in
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// DepartureOption narrows a departure monitor query
type DepartureOption func(*departureQuery)

type departureQuery struct {
	limit    int
	dateTime string
	at       *time.Time
}

// DefaultDepartureLimit is the number of departures requested when WithLimit is not given
const DefaultDepartureLimit = 40

// WithLimit caps the number of returned departures
func WithLimit(n int) DepartureOption {
	return func(q *departureQuery) { q.limit = n }
}

// WithDateTime sets the reference time as "YYYYMMDD HH:MM", "YYYYMMDD" or "HH:MM"
func WithDateTime(text string) DepartureOption {
	return func(q *departureQuery) { q.dateTime = text }
}

// WithTime sets the reference time. It is rendered in the client's timezone.
func WithTime(t time.Time) DepartureOption {
	return func(q *departureQuery) { q.at = &t }
}
