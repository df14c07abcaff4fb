// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package missing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/openmot/mottools/internal/catalog"
	"github.com/openmot/mottools/internal/util"
)

const (
	reportTitle = "MODEL OPENNESS TOOL - MISSING MODELS REPORT"

	// Listing caps for the report sections.
	highPriorityListed   = 50
	mediumPriorityListed = 20
	scrapeCommandsListed = 10
)

// Report renders the missing-models report. The output is deterministic for
// a given input: sorts are stable and ties preserve listing order.
func Report(missing []catalog.ModelSummary, registryCount int) string {
	buckets := Classify(missing)

	var lines []string
	rule := strings.Repeat("=", 80)
	sep := strings.Repeat("-", 80)

	lines = append(lines, rule, reportTitle, rule, "")

	// Summary
	lines = append(lines, "SUMMARY", sep)
	lines = append(lines, fmt.Sprintf("Models in MOT database:     %s", comma(int64(registryCount))))
	lines = append(lines, fmt.Sprintf("Missing models found:       %s", comma(int64(len(missing)))))
	lines = append(lines, fmt.Sprintf("  - High priority (>100k):  %s", comma(int64(len(buckets.High)))))
	lines = append(lines, fmt.Sprintf("  - Medium priority (10k+): %s", comma(int64(len(buckets.Medium)))))
	lines = append(lines, fmt.Sprintf("  - Low priority (<10k):    %s", comma(int64(len(buckets.Low)))))
	lines = append(lines, "")

	// By type, most populated first; ties keep first-occurrence order.
	lines = append(lines, "MISSING MODELS BY TYPE", sep)
	types := make([]string, len(buckets.typeOrder))
	copy(types, buckets.typeOrder)
	sort.SliceStable(types, func(i, j int) bool {
		return len(buckets.ByType[types[i]]) > len(buckets.ByType[types[j]])
	})
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("  %-30s %5s models", t, comma(int64(len(buckets.ByType[t])))))
	}
	lines = append(lines, "")

	high := sortedByDownloads(buckets.High)
	if len(high) > 0 {
		lines = append(lines, "HIGH PRIORITY MODELS (>100,000 downloads)", sep)
		for _, m := range top(high, highPriorityListed) {
			lines = append(lines, fmt.Sprintf("  %-50s %10s downloads", m.ID, comma(m.Downloads)))
			if len(m.Tags) > 0 {
				lines = append(lines, fmt.Sprintf("    Tags: %s", strings.Join(top(m.Tags, 3), ", ")))
			}
			lines = append(lines, fmt.Sprintf("    URL: https://huggingface.co/%s", m.ID))
			lines = append(lines, "")
		}
	}

	medium := sortedByDownloads(buckets.Medium)
	if len(medium) > 0 {
		lines = append(lines, "MEDIUM PRIORITY MODELS (10,000-100,000 downloads)", sep)
		lines = append(lines, fmt.Sprintf("Total: %d models", len(medium)))
		lines = append(lines, "Top 20:")
		for _, m := range top(medium, mediumPriorityListed) {
			lines = append(lines, fmt.Sprintf("  %-50s %10s downloads", m.ID, comma(m.Downloads)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "SUGGESTED SCRAPING COMMANDS", sep)
	lines = append(lines, "High priority models (copy and run):", "")
	for _, m := range top(high, scrapeCommandsListed) {
		lines = append(lines, fmt.Sprintf("mot-scraper %s", m.ID))
	}
	lines = append(lines, "", rule)

	return strings.Join(lines, "\n")
}

// WriteReport saves the report text to path atomically.
func WriteReport(path, report string) error {
	if err := util.SecureWrite(path, []byte(report), nil); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	log.Infof("Report saved to: %s", path)
	return nil
}

// sortedByDownloads returns a copy sorted by descending downloads; ties keep
// their original order.
func sortedByDownloads(models []catalog.ModelSummary) []catalog.ModelSummary {
	sorted := make([]catalog.ModelSummary, len(models))
	copy(sorted, models)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Downloads > sorted[j].Downloads
	})
	return sorted
}

func top[T any](items []T, n int) []T {
	if len(items) < n {
		return items
	}
	return items[:n]
}

// comma renders n with thousands separators, e.g. 1234567 -> "1,234,567".
func comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
