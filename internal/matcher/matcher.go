// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package matcher decides whether a remote model identifier corresponds to a
// record already present in the local registry. Equivalence is defined as
// intersection of normalized variant sets rather than strict equality, so
// matching is deliberately not transitive.
package matcher

import (
	"strings"

	"github.com/openmot/mottools/internal/registry"
)

// Variants generates the normalized variant set for a remote model
// identifier such as "meta-llama/Llama-2-7B": the lower-cased full string,
// the trailing segment on its own when an organization prefix is present,
// and the hyphen/underscore swaps of each.
func Variants(modelID string) map[string]struct{} {
	variants := make(map[string]struct{})

	lower := strings.ToLower(modelID)
	variants[lower] = struct{}{}

	if strings.Contains(modelID, "/") {
		parts := strings.Split(lower, "/")
		name := parts[len(parts)-1]
		variants[name] = struct{}{}
		variants[strings.ReplaceAll(name, "-", "_")] = struct{}{}
		variants[strings.ReplaceAll(name, "_", "-")] = struct{}{}
	}

	variants[strings.ReplaceAll(lower, "-", "_")] = struct{}{}
	variants[strings.ReplaceAll(lower, "_", "-")] = struct{}{}

	return variants
}

// Match reports whether the remote identifier is already represented in the
// registry. It checks records in the set's stable order and stops at the
// first record whose identifier set intersects the variant set, returning
// that record's source file name.
func Match(modelID string, records *registry.Set) (string, bool) {
	variants := Variants(modelID)
	for _, record := range records.Records() {
		if record.Matches(variants) {
			return record.File, true
		}
	}
	return "", false
}
