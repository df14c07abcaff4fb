// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/openmot/mottools/internal/catalog"
)

// RepoChecker probes whether a guessed repository URL exists. Tests
// substitute a stub; production code uses the catalog fetcher.
type RepoChecker interface {
	Exists(ctx context.Context, url string) bool
}

// Repository inference confidence tiers.
const (
	ConfidenceCardNameMatch = 0.90
	ConfidenceCardFirstURL  = 0.70
	ConfidencePatternGuess  = 0.65
	ConfidenceOrgBaseGuess  = 0.60
)

var githubURLPattern = regexp.MustCompile(`https://github\.com/[^/\s"<>]+/[^/\s"<>]+`)

// DetectRepository infers the model's external code repository in three
// tiers: GitHub links in the model card (preferring one whose path contains
// the model's own name), a pattern guess built from the identifier itself,
// and guesses built from the organization plus derived base names. Returns
// an empty URL with confidence 0 when every tier comes up empty.
func DetectRepository(ctx context.Context, m *catalog.ScrapedModel, checker RepoChecker) (string, float64) {
	if urls := githubURLPattern.FindAllString(m.Card, -1); len(urls) > 0 {
		name := strings.ToLower(trailingSegment(m.ID))
		for _, u := range urls {
			// Trim trailing markdown punctuation.
			u = strings.TrimRight(u, ")")
			if strings.Contains(strings.ToLower(u), name) {
				return u, ConfidenceCardNameMatch
			}
		}
		return strings.TrimRight(urls[0], ")"), ConfidenceCardFirstURL
	}

	guess := "https://github.com/" + m.ID
	if checker.Exists(ctx, guess) {
		return guess, ConfidencePatternGuess
	}

	if org, name, found := strings.Cut(m.ID, "/"); found {
		baseNames := []string{
			strings.Split(name, "-")[0], // Mistral-7B-v0.1 -> Mistral
			strings.ToLower(name),
			name,
		}
		for _, base := range baseNames {
			guess := "https://github.com/" + org + "/" + base
			if checker.Exists(ctx, guess) {
				return guess, ConfidenceOrgBaseGuess
			}
		}
	}

	return "", 0
}
