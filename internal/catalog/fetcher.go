// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package catalog talks to the Hugging Face model catalog over HTTPS: the
// paginated listing endpoint, the per-model detail endpoint, the raw model
// card document, and the repository file tree.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openmot/mottools/internal/buildinfo"
)

const (
	// fetchTimeout bounds listing and detail calls.
	fetchTimeout = 30 * time.Second

	// probeTimeout bounds lightweight existence probes.
	probeTimeout = 5 * time.Second
)

// Fetcher performs HTTP GET and HEAD requests against remote catalogs with
// an optional bearer token for gated models.
type Fetcher struct {
	client      *http.Client
	probeClient *http.Client
	token       string
}

// NewFetcher creates a fetcher. token may be empty for anonymous access.
func NewFetcher(token string) *Fetcher {
	return &Fetcher{
		client:      &http.Client{Timeout: fetchTimeout},
		probeClient: &http.Client{Timeout: probeTimeout},
		token:       token,
	}
}

// Fetch retrieves the content at url. Any status other than 200 OK is an
// error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", buildinfo.UserAgent())
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// Exists issues a HEAD request and reports whether url resolves with 200.
// Redirects are followed; any transport error counts as "does not exist".
func (f *Fetcher) Exists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	resp, err := f.probeClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
