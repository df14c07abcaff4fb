// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"

	"github.com/openmot/mottools/internal/catalog"
)

// noRepo is a RepoChecker stub for tests that do not exercise probes.
type noRepo struct{}

func (noRepo) Exists(context.Context, string) bool { return false }

func infoWithLicense(t *testing.T, license interface{}) []byte {
	t.Helper()
	info, err := sjson.Set("{}", "cardData.license", license)
	require.NoError(t, err)
	return []byte(info)
}

func TestDetectProducer(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"meta-llama/Llama-2-7B", "Meta Llama"},
		{"stabilityai/stable-diffusion-2", "Stabilityai"},
		{"big_science/bloom", "Big Science"},
		{"gpt2", "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectProducer(tt.id), tt.id)
	}
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, "language", detectType([]string{"pytorch", "text-generation"}))
	assert.Equal(t, "multimodal", detectType([]string{"image-to-text", "text-generation"}))
	assert.Equal(t, "audio", detectType([]string{"automatic-speech-recognition"}))
	assert.Equal(t, "", detectType([]string{"pytorch", "en"}))
	assert.Equal(t, "", detectType(nil))
}

func TestDetectArchitecture(t *testing.T) {
	tests := []struct {
		name string
		m    *catalog.ScrapedModel
		want string
	}{
		{
			"transformer decoder from card",
			&catalog.ScrapedModel{Card: "A Transformer decoder-only model."},
			"transformer decoder",
		},
		{
			"encoder-decoder from card",
			&catalog.ScrapedModel{Card: "A transformer with encoder stack."},
			"transformer encoder-decoder",
		},
		{
			"plain transformer from tags",
			&catalog.ScrapedModel{Tags: []string{"transformers"}},
			"transformer",
		},
		{
			"diffusion from card",
			&catalog.ScrapedModel{Card: "Latent diffusion for images."},
			"diffusion",
		},
		{
			"no evidence",
			&catalog.ScrapedModel{Card: "A plain model."},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectArchitecture(tt.m))
		})
	}
}

func TestDetectVersion(t *testing.T) {
	assert.Equal(t, "2", detectVersion("Llama-2-7B"))
	assert.Equal(t, "7B", detectVersion("Mistral-7B-v0.1"))
	assert.Equal(t, "1.5", detectVersion("phi-1.5"))
	assert.Equal(t, "1.0", detectVersion("bloom"))
}

func TestDetectDate(t *testing.T) {
	assert.Equal(t, "2026-01-15", detectDate("2026-01-15T09:30:00.000Z"))
	// Absent timestamps fall back to today; just check the shape.
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, detectDate(""))
}

func TestDetectLicense(t *testing.T) {
	explicit := &catalog.ScrapedModel{Info: infoWithLicense(t, "apache-2.0")}
	assert.Equal(t, "apache-2.0", DetectLicense(explicit))

	// The sentinel "other" is not a usable license.
	other := &catalog.ScrapedModel{Info: infoWithLicense(t, "other")}
	assert.Equal(t, Unlicensed, DetectLicense(other))

	// A list of licenses collapses to the first entry.
	multi := &catalog.ScrapedModel{Info: infoWithLicense(t, []string{"mit", "apache-2.0"})}
	assert.Equal(t, "mit", DetectLicense(multi))

	// An empty license list means nothing was declared.
	empty := &catalog.ScrapedModel{Info: infoWithLicense(t, []string{})}
	assert.Equal(t, Unlicensed, DetectLicense(empty))

	// A LICENSE file alone does not produce a license string.
	fileOnly := &catalog.ScrapedModel{Info: []byte("{}"), Files: []string{"LICENSE"}}
	assert.Equal(t, Unlicensed, DetectLicense(fileOnly))
	assert.True(t, HasLicenseFile(fileOnly))
}

func TestIsOpenLicense(t *testing.T) {
	assert.True(t, IsOpenLicense("apache-2.0"))
	assert.True(t, IsOpenLicense("MIT"))
	assert.False(t, IsOpenLicense("llama2"))
	assert.False(t, IsOpenLicense(""))
}

func TestExtractMetadata(t *testing.T) {
	m := &catalog.ScrapedModel{
		ID:           "acme/Widget-7B",
		Tags:         []string{"text-generation"},
		LastModified: "2026-01-15T09:30:00.000Z",
		Info:         infoWithLicense(t, "apache-2.0"),
		Card:         "A transformer decoder model. See https://github.com/acme/widget-7b for code.",
		Files:        []string{"config.json", "model.safetensors"},
	}

	md := ExtractMetadata(context.Background(), m, noRepo{})

	assert.Equal(t, "Widget-7B", md.Name)
	assert.Equal(t, "7B", md.Version)
	assert.Equal(t, "Acme", md.Producer)
	assert.Equal(t, "language", md.Type)
	assert.Equal(t, "transformer decoder", md.Architecture)
	assert.Equal(t, "2026-01-15", md.Date)
	assert.Equal(t, "widget-7b", md.Origin)
	assert.Equal(t, "https://huggingface.co/acme/Widget-7B", md.HuggingFace)
	assert.Equal(t, "apache-2.0", md.License)
	assert.Equal(t, "https://github.com/acme/widget-7b", md.Repository)
	assert.Equal(t, ConfidenceCardNameMatch, md.RepoConfidence)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Meta Llama", titleCase("meta llama"))
	assert.Equal(t, "Ai21Labs", titleCase("ai21labs"))
	assert.Equal(t, "Eleutherai", titleCase("ELEUTHERAI"))
}
