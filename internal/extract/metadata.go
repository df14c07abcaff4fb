// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package extract infers structured registry metadata from one scraped
// model: its file listing, free-text model card, and raw detail payload.
// Every field and component rule is evaluated independently; a rule that
// finds no evidence contributes nothing, and extraction never fails.
package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/openmot/mottools/internal/catalog"
)

// Metadata holds the inferred top-level fields of a draft registry record.
type Metadata struct {
	Name         string
	Version      string
	Producer     string
	Type         string
	Architecture string
	Date         string
	Origin       string
	HuggingFace  string
	License      string

	// Repository is the inferred external repository URL, empty when none
	// was found. RepoConfidence is 0 in that case.
	Repository     string
	RepoConfidence float64
}

// typeByTag maps catalog pipeline tags to MOT model types.
var typeByTag = map[string]string{
	"text-generation":              "language",
	"text2text-generation":         "language",
	"image-to-text":                "multimodal",
	"text-to-image":                "image",
	"image-classification":         "vision",
	"object-detection":             "vision",
	"automatic-speech-recognition": "audio",
}

var versionPattern = regexp.MustCompile(`\d+\.?\d*[BMK]?`)

// ExtractMetadata derives all top-level fields for the scraped model.
// checker is used for repository existence probes and may be a stub in tests.
func ExtractMetadata(ctx context.Context, m *catalog.ScrapedModel, checker RepoChecker) Metadata {
	name := trailingSegment(m.ID)

	md := Metadata{
		Name:         name,
		Version:      detectVersion(name),
		Producer:     detectProducer(m.ID),
		Type:         detectType(m.Tags),
		Architecture: detectArchitecture(m),
		Date:         detectDate(m.LastModified),
		Origin:       strings.ToLower(name),
		HuggingFace:  "https://huggingface.co/" + m.ID,
		License:      DetectLicense(m),
	}
	md.Repository, md.RepoConfidence = DetectRepository(ctx, m, checker)
	return md
}

// detectProducer derives the producer from the identifier's organization
// segment: hyphens and underscores become spaces and the result is
// title-cased. "Unknown" when there is no organization segment.
func detectProducer(modelID string) string {
	org, _, found := strings.Cut(modelID, "/")
	if !found {
		return "Unknown"
	}
	org = strings.ReplaceAll(org, "-", " ")
	org = strings.ReplaceAll(org, "_", " ")
	return titleCase(org)
}

// detectType returns the MOT type of the first of the model's own tags that
// appears in the tag/type table, or empty when none match.
func detectType(tags []string) string {
	for _, tag := range tags {
		if t, ok := typeByTag[tag]; ok {
			return t
		}
	}
	return ""
}

// detectArchitecture scans the model card and the stringified tag list for
// architecture keywords. A transformer hit is refined to the decoder or
// encoder-decoder variant when the card mentions those.
func detectArchitecture(m *catalog.ScrapedModel) string {
	card := strings.ToLower(m.Card)
	tags := strings.ToLower(fmt.Sprint(m.Tags))

	switch {
	case strings.Contains(card, "transformer") || strings.Contains(tags, "transformer"):
		if strings.Contains(card, "decoder") {
			return "transformer decoder"
		}
		if strings.Contains(card, "encoder") {
			return "transformer encoder-decoder"
		}
		return "transformer"
	case strings.Contains(card, "diffusion") || strings.Contains(tags, "diffusion"):
		return "diffusion"
	}
	return ""
}

// detectVersion extracts a numeric token, optionally suffixed with B/M/K,
// from the model name. Defaults to "1.0".
func detectVersion(name string) string {
	if v := versionPattern.FindString(name); v != "" {
		return v
	}
	return "1.0"
}

// detectDate takes the date part of the catalog's lastModified timestamp,
// falling back to today when absent.
func detectDate(lastModified string) string {
	if lastModified != "" {
		date, _, _ := strings.Cut(lastModified, "T")
		return date
	}
	return time.Now().Format("2006-01-02")
}

// trailingSegment returns the part of the identifier after the last slash.
func trailingSegment(modelID string) string {
	if idx := strings.LastIndex(modelID, "/"); idx >= 0 {
		return modelID[idx+1:]
	}
	return modelID
}

// titleCase upper-cases the first letter of each run of letters and
// lower-cases the rest, leaving non-letters untouched.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
