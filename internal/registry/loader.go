// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	log "github.com/sirupsen/logrus"
)

// recordFile mirrors the top-level shape of a MOT registry YAML file.
// Only the fields needed for identifier matching are decoded; the rest of
// the record (components, contact, licenses) is left untouched on disk.
type recordFile struct {
	Release *releaseBlock `yaml:"release"`
}

type releaseBlock struct {
	Name        string `yaml:"name"`
	Origin      string `yaml:"origin"`
	HuggingFace string `yaml:"huggingface"`
}

// Load reads every *.yml file in dir and returns the resulting record set.
// Files that cannot be read, fail to parse, or lack the expected top-level
// "release" key are skipped with a warning; a missing directory yields an
// empty set. Load never fails past the file loop.
//
// File names are sorted lexicographically before parsing so that record
// iteration order, and therefore first-match reporting, is stable.
func Load(dir string) *Set {
	set := &Set{byStem: make(map[string]*Record)}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Warnf("Models directory not found: %s", dir)
		return set
	}

	pattern := filepath.Join(dir, "*.yml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		log.WithError(err).Warnf("Failed to enumerate registry files in %s", dir)
		return set
	}
	sort.Strings(files)
	log.Infof("Found %d YAML files in MOT database", len(files))

	for _, path := range files {
		name := filepath.Base(path)

		content, err := os.ReadFile(path)
		if err != nil {
			log.WithError(err).Warnf("Error reading %s", name)
			continue
		}

		var rf recordFile
		if err := yaml.Unmarshal(content, &rf); err != nil {
			log.WithError(err).Warnf("Error parsing %s", name)
			continue
		}
		if rf.Release == nil {
			log.Debugf("Skipping %s: no release key", name)
			continue
		}

		record := &Record{
			Name:        rf.Release.Name,
			Origin:      rf.Release.Origin,
			HuggingFace: rf.Release.HuggingFace,
			File:        name,
		}
		record.buildIdentifiers()

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		set.byStem[stem] = record
		set.order = append(set.order, stem)
	}

	log.Infof("Loaded %d models from MOT database", set.Len())
	return set
}
