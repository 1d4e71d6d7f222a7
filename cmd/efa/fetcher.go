package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// fetcher reads saved EFA responses from URLs or local files.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
}

// newFetcher creates a new fetcher for saved responses
func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{},
	}
}

// fetch returns the raw bytes behind an http(s) URL or a file path
func (f *fetcher) fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "-" {
		return io.ReadAll(os.Stdin)
	}
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}
	return io.ReadAll(resp.Body)
}

// fetchDocument fetches and decodes a JSON document
func (f *fetcher) fetchDocument(ctx context.Context, urlOrPath string) (any, error) {
	b, err := f.fetch(ctx, urlOrPath)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", urlOrPath, err)
	}
	return doc, nil
}
