// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package draft renders extracted metadata into the MOT registry's YAML
// record syntax and writes draft files for manual review.
package draft

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/openmot/mottools/internal/extract"
	"github.com/openmot/mottools/internal/util"
)

// Framework header constants emitted at the top of every draft.
const (
	FrameworkName    = "Model Openness Framework"
	FrameworkVersion = "1.0"
	FrameworkDate    = "2024-12-15"
)

// Render serializes the metadata and component list in MOT record style:
// fixed key order, a fixed framework header, an empty top-level license
// placeholder (always left for manual completion), optional repository and
// catalog-link lines emitted only when present, and one block per component
// in detection order. A component license of "unlicensed" (or empty) is
// rendered as the bare token; anything else is quoted verbatim.
func Render(md extract.Metadata, components []extract.Component) string {
	var lines []string

	lines = append(lines, "framework:")
	lines = append(lines, fmt.Sprintf("  name: '%s'", FrameworkName))
	lines = append(lines, fmt.Sprintf("  version: '%s'", FrameworkVersion))
	lines = append(lines, fmt.Sprintf("  date: '%s'", FrameworkDate))

	lines = append(lines, "release:")
	lines = append(lines, fmt.Sprintf("  name: %s", md.Name))
	lines = append(lines, fmt.Sprintf("  version: '%s'", md.Version))
	lines = append(lines, fmt.Sprintf("  date: '%s'", md.Date))
	lines = append(lines, "  license: {  }")
	lines = append(lines, fmt.Sprintf("  type: '%s'", md.Type))
	lines = append(lines, fmt.Sprintf("  architecture: '%s'", md.Architecture))
	lines = append(lines, fmt.Sprintf("  origin: %s", md.Origin))
	lines = append(lines, fmt.Sprintf("  producer: '%s'", md.Producer))
	lines = append(lines, "  contact: ''")

	if md.Repository != "" {
		lines = append(lines, fmt.Sprintf("  repository: '%s'", md.Repository))
	}
	if md.HuggingFace != "" {
		lines = append(lines, fmt.Sprintf("  huggingface: '%s'", md.HuggingFace))
	}

	lines = append(lines, "  components:")
	for _, comp := range components {
		lines = append(lines, "    -")
		lines = append(lines, fmt.Sprintf("      name: '%s'", comp.Name))
		lines = append(lines, fmt.Sprintf("      description: %q", comp.Description))
		if comp.License != "" && comp.License != extract.Unlicensed {
			lines = append(lines, fmt.Sprintf("      license: '%s'", comp.License))
		} else {
			lines = append(lines, "      license: unlicensed")
		}
	}

	return strings.Join(lines, "\n")
}

// Write renders the draft and saves it to <dir>/<name>.yml atomically,
// backing up any existing draft. It returns the output path.
func Write(dir string, md extract.Metadata, components []extract.Component) (string, error) {
	path := filepath.Join(dir, md.Name+".yml")

	opts := util.DefaultSecureWriteOptions()
	opts.CreateBackup = true
	if err := util.SecureWrite(path, []byte(Render(md, components)+"\n"), opts); err != nil {
		return "", fmt.Errorf("failed to write draft: %w", err)
	}

	log.Infof("Draft YAML saved to: %s", path)
	return path, nil
}
