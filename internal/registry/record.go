// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package registry loads the local MOT model registry: a directory of YAML
// files, one per catalogued model release. Each loaded record carries a
// derived set of identifier strings used to match it against remote models.
package registry

import "strings"

// hfURLPrefix is stripped from catalog links to recover the model id.
const hfURLPrefix = "https://huggingface.co/"

// Record is one MOT registry entry loaded from a YAML file.
type Record struct {
	// Name is the release name, e.g. "Llama-2-7B".
	Name string
	// Origin is the origin slug declared in the record.
	Origin string
	// HuggingFace is the catalog URL declared in the record, if any.
	HuggingFace string
	// File is the name of the YAML file the record was loaded from.
	File string

	// identifiers is the derived set of matchable identifier strings.
	identifiers map[string]struct{}
}

// buildIdentifiers derives the matchable identifier set for the record:
// the lower-cased name plus its hyphen/underscore swaps, the lower-cased
// origin slug, and the model id taken from the catalog URL.
func (r *Record) buildIdentifiers() {
	r.identifiers = make(map[string]struct{})
	if r.Name != "" {
		name := strings.ToLower(r.Name)
		r.identifiers[name] = struct{}{}
		r.identifiers[strings.ReplaceAll(name, "-", "_")] = struct{}{}
		r.identifiers[strings.ReplaceAll(name, "_", "-")] = struct{}{}
	}
	if r.Origin != "" {
		r.identifiers[strings.ToLower(r.Origin)] = struct{}{}
	}
	if r.HuggingFace != "" {
		hfID := strings.TrimPrefix(r.HuggingFace, hfURLPrefix)
		r.identifiers[strings.ToLower(hfID)] = struct{}{}
	}
}

// Identifiers returns the derived identifier set.
func (r *Record) Identifiers() map[string]struct{} {
	return r.identifiers
}

// Matches reports whether any of the given identifier variants is present in
// the record's identifier set.
func (r *Record) Matches(variants map[string]struct{}) bool {
	for v := range variants {
		if _, ok := r.identifiers[v]; ok {
			return true
		}
	}
	return false
}

// Set holds all loaded registry records in a deterministic order.
// Records are kept sorted by file name so that "first match" semantics are
// reproducible across runs.
type Set struct {
	byStem map[string]*Record
	order  []string
}

// Len returns the number of loaded records.
func (s *Set) Len() int {
	return len(s.order)
}

// Get returns the record loaded from the file with the given stem.
func (s *Set) Get(stem string) (*Record, bool) {
	r, ok := s.byStem[stem]
	return r, ok
}

// Records returns all records sorted by source file name.
func (s *Set) Records() []*Record {
	records := make([]*Record, 0, len(s.order))
	for _, stem := range s.order {
		records = append(records, s.byStem[stem])
	}
	return records
}
