// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package catalog

// ModelSummary is one entry from the paginated catalog listing.
type ModelSummary struct {
	// ID is the catalog identifier, usually "organization/name".
	ID string `json:"id"`
	// Downloads is the catalog's download counter for the model.
	Downloads int64 `json:"downloads"`
	// Tags is the catalog's tag list (pipeline types, licenses, libraries).
	Tags []string `json:"tags"`
}

// treeEntry is one entry of the repository file-tree endpoint response.
type treeEntry struct {
	Path string `json:"path"`
}

// modelInfo mirrors the fields of the per-model detail payload the tools
// rely on. The raw payload is also retained on ScrapedModel for the few
// loosely-typed fields (cardData) probed with gjson.
type modelInfo struct {
	ID           string   `json:"id"`
	Tags         []string `json:"tags"`
	LastModified string   `json:"lastModified"`
}

// ScrapedModel is the full detail for one remote model, assembled from up
// to three catalog calls. Card and Files may be empty when their optional
// fetches fail; Info is always present for a successful scrape.
type ScrapedModel struct {
	// ID is the catalog identifier the scrape was requested for.
	ID string
	// Tags is the detail payload's tag list.
	Tags []string
	// LastModified is the detail payload's modification timestamp, if any.
	LastModified string
	// Info is the raw detail payload, kept for loosely-typed field probes.
	Info []byte
	// Card is the raw model card (README) text, empty when unavailable.
	Card string
	// Files is the repository file listing, empty when unavailable.
	Files []string
}
