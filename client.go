package efa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/efa-client/internal"
	"github.com/theoremus-urban-solutions/efa-client/model"
	"github.com/theoremus-urban-solutions/efa-client/request"
	"github.com/theoremus-urban-solutions/efa-client/utils"
)

// Client talks to one EFA server. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	userAgent  string

	closeOnce sync.Once
}

// NewClient creates a client for the server at baseURL. A trailing "/" is added when missing.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, &request.ValueError{Msg: "base url is empty"}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		loc:        utils.DefaultLocation(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized server URL
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections. It may be called more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
	return nil
}

// SystemInfo returns server version and timetable validity
func (c *Client) SystemInfo(ctx context.Context) (model.SystemInfo, error) {
	internal.Logger.Printf("request system info")
	return run[model.SystemInfo](ctx, c, request.NewSystemInfoRequest())
}

// FindStop searches stops by name. An empty searchType means request.StopFinderAny.
func (c *Client) FindStop(ctx context.Context, name, searchType string) ([]model.Stop, error) {
	if searchType == "" {
		searchType = request.StopFinderAny
	}
	internal.Logger.Printf("request stop finder for %q", name)
	return run[[]model.Stop](ctx, c, request.NewStopFinderRequest(searchType, name))
}

// Departures returns the next departures at stopID
func (c *Client) Departures(ctx context.Context, stopID string, opts ...DepartureOption) ([]model.Departure, error) {
	q := departureQuery{limit: DefaultDepartureLimit}
	for _, opt := range opts {
		opt(&q)
	}
	if q.at != nil {
		q.dateTime = utils.FormatDateTime(q.at.In(c.loc))
	}

	req := request.NewDeparturesRequest(stopID)
	req.SetLocation(c.loc)
	if err := req.AddParam("limit", q.limit); err != nil {
		return nil, err
	}
	if err := req.AddParamDateTime(q.dateTime); err != nil {
		return nil, err
	}

	internal.Logger.Printf("request departures for stop %q", stopID)
	return run[[]model.Departure](ctx, c, req)
}

// DeparturesForStop is Departures for a stop returned by FindStop
func (c *Client) DeparturesForStop(ctx context.Context, stop model.Stop, opts ...DepartureOption) ([]model.Departure, error) {
	return c.Departures(ctx, stop.ID, opts...)
}

// Trip is not implemented yet and always returns request.ErrNotImplemented
func (c *Client) Trip(ctx context.Context) (any, error) {
	return nil, request.ErrNotImplemented
}

// run renders req, fetches it and hands the decoded body to req.Parse
func run[T any](ctx context.Context, c *Client, req request.Request[T]) (T, error) {
	var zero T

	query, err := req.QueryString()
	if err != nil {
		return zero, err
	}

	data, err := c.get(ctx, c.baseURL+query)
	if err != nil {
		return zero, err
	}
	return req.Parse(data)
}

// get performs the GET and decodes the JSON body into a generic document
func (c *Client) get(ctx context.Context, url string) (any, error) {
	internal.Logger.Printf("GET %s", url)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		internal.Logger.Printf("HTTP %d from %s", resp.StatusCode, url)
		return nil, &ConnectionError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response JSON: %w", err)
	}
	return data, nil
}
