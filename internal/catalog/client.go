// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production Hugging Face endpoint.
const DefaultBaseURL = "https://huggingface.co"

// pageSize is the fixed page size used for catalog listing requests.
const pageSize = 100

// ListOptions control a paginated catalog listing.
type ListOptions struct {
	// MinDownloads drops entries below this download count.
	MinDownloads int64
	// Limit caps the number of retained entries.
	Limit int
	// ModelType optionally restricts the listing to one pipeline type.
	ModelType string
}

// Client fetches model listings and per-model detail from the catalog.
type Client struct {
	fetcher *Fetcher

	// BaseURL may be overridden for tests.
	BaseURL string
}

// NewClient creates a catalog client. token may be empty.
func NewClient(token string) *Client {
	return &Client{
		fetcher: NewFetcher(token),
		BaseURL: DefaultBaseURL,
	}
}

// ListModels fetches pages sorted by descending downloads until the limit is
// reached or a page comes back empty, keeping only entries at or above the
// download threshold. A transport or status failure truncates the listing to
// what was already gathered; partial results are not an error, and an empty
// slice is a valid outcome.
func (c *Client) ListModels(ctx context.Context, opts ListOptions) []ModelSummary {
	log.Infof("Fetching models from catalog (min downloads: %d, limit: %d)", opts.MinDownloads, opts.Limit)

	var models []ModelSummary
	for page := 0; len(models) < opts.Limit; page++ {
		batch, err := c.fetchPage(ctx, page, opts.ModelType)
		if err != nil {
			log.WithError(err).Warn("Error fetching models, keeping partial results")
			break
		}
		if len(batch) == 0 {
			break
		}

		for _, m := range batch {
			if m.Downloads >= opts.MinDownloads {
				models = append(models, m)
			}
			if len(models) >= opts.Limit {
				break
			}
		}
		log.Debugf("Fetched %d models so far", len(models))
	}

	log.Infof("Fetched %d models from catalog", len(models))
	return models
}

func (c *Client) fetchPage(ctx context.Context, page int, modelType string) ([]ModelSummary, error) {
	params := url.Values{}
	params.Set("sort", "downloads")
	params.Set("direction", "-1")
	params.Set("limit", strconv.Itoa(pageSize))
	params.Set("skip", strconv.Itoa(page*pageSize))
	params.Set("full", "true")
	if modelType != "" {
		params.Set("filter", modelType)
	}

	data, err := c.fetcher.Fetch(ctx, c.BaseURL+"/api/models?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var batch []ModelSummary
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model listing: %w", err)
	}
	return batch, nil
}

// Scrape assembles the full detail for one model from three calls: the
// detail endpoint, the raw model card, and the repository file tree. The
// card and file-tree calls are each individually optional; only a failure of
// the primary detail call aborts the scrape.
func (c *Client) Scrape(ctx context.Context, modelID string) (*ScrapedModel, error) {
	log.Infof("Scraping catalog model: %s", modelID)

	raw, err := c.fetcher.Fetch(ctx, c.BaseURL+"/api/models/"+modelID)
	if err != nil {
		return nil, fmt.Errorf("error fetching model info: %w", err)
	}

	var info modelInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model info: %w", err)
	}

	scraped := &ScrapedModel{
		ID:           modelID,
		Tags:         info.Tags,
		LastModified: info.LastModified,
		Info:         raw,
	}

	if card, err := c.fetcher.Fetch(ctx, c.BaseURL+"/"+modelID+"/raw/main/README.md"); err != nil {
		log.WithError(err).Debug("Model card unavailable")
	} else {
		scraped.Card = string(card)
	}

	if tree, err := c.fetcher.Fetch(ctx, c.BaseURL+"/api/models/"+modelID+"/tree/main"); err != nil {
		log.WithError(err).Debug("File tree unavailable")
	} else {
		var entries []treeEntry
		if err := json.Unmarshal(tree, &entries); err != nil {
			log.WithError(err).Debug("File tree unparseable")
		} else {
			for _, e := range entries {
				scraped.Files = append(scraped.Files, e.Path)
			}
		}
	}

	return scraped, nil
}

// Exists reports whether url resolves, for repository existence probes.
func (c *Client) Exists(ctx context.Context, url string) bool {
	return c.fetcher.Exists(ctx, url)
}
