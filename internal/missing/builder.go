// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package missing computes the set of remote models absent from the local
// registry and renders the maintainer-facing report.
package missing

import (
	log "github.com/sirupsen/logrus"

	"github.com/openmot/mottools/internal/catalog"
	"github.com/openmot/mottools/internal/matcher"
	"github.com/openmot/mottools/internal/registry"
)

// Priority bucket thresholds. Boundary values belong to the higher bucket.
const (
	HighPriorityDownloads   = 100000
	MediumPriorityDownloads = 10000
)

// typeTags is the set of pipeline tags that define type buckets. A model is
// bucketed under the first of its own tags found in this set, else "other".
var typeTags = map[string]struct{}{
	"text-generation":              {},
	"text2text-generation":         {},
	"image-to-text":                {},
	"text-to-image":                {},
	"automatic-speech-recognition": {},
	"audio-classification":         {},
	"image-classification":         {},
	"object-detection":             {},
}

// Buckets classifies missing models by popularity and type.
// Priority buckets form a total, disjoint, exhaustive partition of the
// input; type buckets record first-occurrence order for stable reporting.
type Buckets struct {
	High   []catalog.ModelSummary
	Medium []catalog.ModelSummary
	Low    []catalog.ModelSummary

	ByType    map[string][]catalog.ModelSummary
	typeOrder []string
}

// Missing returns every remote model whose identifier variant set does not
// intersect any registry record's identifier set, preserving listing order.
func Missing(remote []catalog.ModelSummary, records *registry.Set) []catalog.ModelSummary {
	var missing []catalog.ModelSummary
	for _, m := range remote {
		if file, ok := matcher.Match(m.ID, records); ok {
			log.Debugf("%s already tracked by %s", m.ID, file)
			continue
		}
		missing = append(missing, m)
	}
	return missing
}

// Classify buckets the given models by download count and type.
func Classify(models []catalog.ModelSummary) *Buckets {
	b := &Buckets{ByType: make(map[string][]catalog.ModelSummary)}

	for _, m := range models {
		switch {
		case m.Downloads >= HighPriorityDownloads:
			b.High = append(b.High, m)
		case m.Downloads >= MediumPriorityDownloads:
			b.Medium = append(b.Medium, m)
		default:
			b.Low = append(b.Low, m)
		}

		modelType := "other"
		for _, tag := range m.Tags {
			if _, ok := typeTags[tag]; ok {
				modelType = tag
				break
			}
		}
		if _, seen := b.ByType[modelType]; !seen {
			b.typeOrder = append(b.typeOrder, modelType)
		}
		b.ByType[modelType] = append(b.ByType[modelType], m)
	}

	return b
}
