package efa

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/efa-client/model"
	"github.com/theoremus-urban-solutions/efa-client/request"
)

// newTestServer answers every endpoint with the matching fixture from request/testdata
func newTestServer(t *testing.T, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	fixtures := map[string]string{
		"/XML_SYSTEMINFO_REQUEST": "system_info.json",
		"/XML_STOPFINDER_REQUEST": "stop_finder.json",
		"/XML_DM_REQUEST":         "departures.json",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		name, ok := fixtures[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, err := os.ReadFile(filepath.Join("request", "testdata", name))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "trailing slash added", url: "https://efa.example.org/efa", want: "https://efa.example.org/efa/"},
		{name: "trailing slash kept", url: "https://efa.example.org/efa/", want: "https://efa.example.org/efa/"},
		{name: "empty url", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.url)
			if tt.wantErr {
				var verr *request.ValueError
				assert.True(t, errors.As(err, &verr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.BaseURL())
		})
	}
}

func TestClient_SystemInfo(t *testing.T) {
	server := newTestServer(t, func(r *http.Request) {
		assert.Equal(t, "system", r.URL.Query().Get("commonMacro"))
		assert.Equal(t, "rapidJSON", r.URL.Query().Get("outputFormat"))
	})

	c, err := NewClient(server.URL)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	info, err := c.SystemInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "EFA10_04_00", info.DataFormat)
}

func TestClient_FindStop(t *testing.T) {
	server := newTestServer(t, func(r *http.Request) {
		assert.Equal(t, "stopfinder", r.URL.Query().Get("commonMacro"))
		assert.Equal(t, "Plärrer", r.URL.Query().Get("name_sf"))
		assert.Equal(t, "any", r.URL.Query().Get("type_sf"))
		assert.Equal(t, "efa-client-test", r.Header.Get("User-Agent"))
	})

	c, err := NewClient(server.URL, WithUserAgent("efa-client-test"))
	require.NoError(t, err)

	stops, err := c.FindStop(context.Background(), "Plärrer", "")
	require.NoError(t, err)
	require.Len(t, stops, 3)
	assert.Equal(t, "street_1", stops[0].ID)
}

func TestClient_Departures(t *testing.T) {
	server := newTestServer(t, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "dm", q.Get("commonMacro"))
		assert.Equal(t, "de:09564:704", q.Get("name_dm"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "20241127", q.Get("itdDate"))
		assert.Equal(t, "2215", q.Get("itdTime"))
	})

	c, err := NewClient(server.URL, WithLocation(time.UTC))
	require.NoError(t, err)

	deps, err := c.DeparturesForStop(context.Background(),
		model.Stop{ID: "de:09564:704"}, WithLimit(10), WithDateTime("20241127 22:15"))
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "U3", deps[0].LineName)
	assert.Equal(t, time.UTC, deps[0].PlannedTime.Location())
}

func TestClient_DeparturesDefaultLimit(t *testing.T) {
	server := newTestServer(t, func(r *http.Request) {
		assert.Equal(t, "40", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("itdDate"))
	})

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = c.Departures(context.Background(), "de:09564:704")
	require.NoError(t, err)
}

func TestClient_DeparturesWithTime(t *testing.T) {
	server := newTestServer(t, func(r *http.Request) {
		assert.Equal(t, "20241127", r.URL.Query().Get("itdDate"))
		assert.Equal(t, "2315", r.URL.Query().Get("itdTime"))
	})

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	// 22:15 UTC is 23:15 in Berlin
	at := time.Date(2024, 11, 27, 22, 15, 0, 0, time.UTC)
	_, err = c.Departures(context.Background(), "de:09564:704", WithTime(at))
	require.NoError(t, err)
}

func TestClient_DeparturesBadDateTime(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1/")
	require.NoError(t, err)

	_, err = c.Departures(context.Background(), "de:09564:704", WithDateTime("tomorrow"))
	var verr *request.ValueError
	assert.True(t, errors.As(err, &verr))
}

func TestClient_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = c.SystemInfo(context.Background())
	var cerr *ConnectionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, http.StatusServiceUnavailable, cerr.StatusCode)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_InvalidResponse(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantShape bool
	}{
		{name: "not json", body: "<html></html>"},
		{name: "wrong shape", body: `{"dummy": "value"}`, wantShape: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewClient(server.URL)
			require.NoError(t, err)

			_, err = c.SystemInfo(context.Background())
			require.Error(t, err)

			var rerr *request.ResponseInvalidError
			assert.Equal(t, tt.wantShape, errors.As(err, &rerr), "got %v", err)
			if !tt.wantShape {
				var serr *json.SyntaxError
				assert.True(t, errors.As(err, &serr))
			}
		})
	}
}

func TestClient_ParameterErrorSkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = c.FindStop(context.Background(), "Plärrer", "platform")
	var perr *request.ParameterError
	assert.True(t, errors.As(err, &perr))
	assert.False(t, called)
}

func TestClient_Trip(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1/")
	require.NoError(t, err)

	_, err = c.Trip(context.Background())
	assert.ErrorIs(t, err, request.ErrNotImplemented)
}

func TestClient_CloseTwice(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1/")
	require.NoError(t, err)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestClient_ContextCanceled(t *testing.T) {
	server := newTestServer(t, nil)
	c, err := NewClient(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.SystemInfo(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
