// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecord(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_BuildsIdentifiers(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "Llama-2-7B.yml", `
release:
  name: Llama-2-7B
  origin: llama
  huggingface: 'https://huggingface.co/meta-llama/Llama-2-7b-hf'
`)

	set := Load(dir)
	require.Equal(t, 1, set.Len())

	record, ok := set.Get("Llama-2-7B")
	require.True(t, ok)
	assert.Equal(t, "Llama-2-7B.yml", record.File)

	ids := record.Identifiers()
	assert.Contains(t, ids, "llama-2-7b")
	assert.Contains(t, ids, "llama_2_7b")
	assert.Contains(t, ids, "llama")
	assert.Contains(t, ids, "meta-llama/llama-2-7b-hf")
}

func TestLoad_SkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "good.yml", "release:\n  name: Good-Model\n")
	writeRecord(t, dir, "no-release.yml", "something-else:\n  name: nope\n")
	writeRecord(t, dir, "broken.yml", "release: [unclosed\n")

	set := Load(dir)
	assert.Equal(t, 1, set.Len())

	_, ok := set.Get("good")
	assert.True(t, ok)
}

func TestLoad_MissingDirectory(t *testing.T) {
	set := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Records())
}

func TestLoad_RecordsSortedByFileName(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "zebra.yml", "release:\n  name: Zebra\n")
	writeRecord(t, dir, "alpha.yml", "release:\n  name: Alpha\n")
	writeRecord(t, dir, "mid.yml", "release:\n  name: Mid\n")

	set := Load(dir)
	records := set.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "alpha.yml", records[0].File)
	assert.Equal(t, "mid.yml", records[1].File)
	assert.Equal(t, "zebra.yml", records[2].File)
}

func TestRecord_EmptyFieldsProduceNoIdentifiers(t *testing.T) {
	record := &Record{}
	record.buildIdentifiers()
	assert.Empty(t, record.Identifiers())
}
