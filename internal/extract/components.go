// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package extract

import (
	"strings"

	"github.com/openmot/mottools/internal/catalog"
)

// Component is one detected piece of model-openness evidence.
type Component struct {
	Name        string
	Description string
	License     string
	Confidence  float64
	Location    string
}

// Evidence locations reported with detected components.
const (
	locRepository = "HuggingFace repository"
	locCardRef    = "Referenced in model card"
	locCard       = "Model card"
)

// detectorFunc is one independent component rule: it inspects the scraped
// model and returns a candidate or nil. license is the model-level license
// passed to detectors whose artifact inherits it.
type detectorFunc func(m *catalog.ScrapedModel, license string) *Component

// detectors is the ordered rule list. Detectors never suppress each other;
// a model may accumulate any subset of the candidates.
var detectors = []detectorFunc{
	detectParameters,
	detectMetadata,
	detectArchitectureCode,
	detectInferenceCode,
	detectModelCard,
	detectTechnicalReport,
	detectResearchPaper,
	detectEvaluationResults,
	detectTrainingDataset,
}

// DetectComponents runs every component rule against the scraped model and
// returns the candidates in detection order.
func DetectComponents(m *catalog.ScrapedModel) []Component {
	license := DetectLicense(m)

	var components []Component
	for _, detect := range detectors {
		if c := detect(m, license); c != nil {
			components = append(components, *c)
		}
	}
	return components
}

var parameterExtensions = []string{".bin", ".safetensors", ".pt", ".pth", ".ckpt"}

func detectParameters(m *catalog.ScrapedModel, license string) *Component {
	for _, f := range m.Files {
		for _, ext := range parameterExtensions {
			if strings.HasSuffix(f, ext) {
				return &Component{
					Name:        "Model parameters (Final)",
					Description: "Trained model parameters, weights and biases",
					License:     license,
					Confidence:  0.95,
					Location:    locRepository,
				}
			}
		}
	}
	return nil
}

var configFileNames = []string{"config.json", "model_config.json", "configuration.json"}

func detectMetadata(m *catalog.ScrapedModel, license string) *Component {
	for _, f := range m.Files {
		for _, name := range configFileNames {
			if f == name {
				return &Component{
					Name:        "Model metadata",
					Description: "Any model metadata including training configuration and optimizer states",
					License:     license,
					Confidence:  0.90,
					Location:    locRepository,
				}
			}
		}
	}
	return nil
}

func detectArchitectureCode(m *catalog.ScrapedModel, license string) *Component {
	found := false
	for _, f := range m.Files {
		if strings.HasSuffix(f, ".py") {
			found = true
			break
		}
	}
	if !found && strings.Contains(strings.Join(m.Files, " "), "modeling") {
		found = true
	}
	if !found {
		return nil
	}
	return &Component{
		Name:        "Model architecture",
		Description: "Well commented code for the model's architecture",
		License:     license,
		Confidence:  0.85,
		Location:    locRepository,
	}
}

func detectInferenceCode(m *catalog.ScrapedModel, license string) *Component {
	for _, f := range m.Files {
		lower := strings.ToLower(f)
		if strings.Contains(lower, "inference") || strings.Contains(lower, "generate") {
			return &Component{
				Name:        "Inference code",
				Description: "Code used for running the model to make predictions",
				License:     license,
				Confidence:  0.80,
				Location:    locRepository,
			}
		}
	}
	return nil
}

func detectModelCard(m *catalog.ScrapedModel, license string) *Component {
	found := m.Card != ""
	if !found {
		for _, f := range m.Files {
			if f == "README.md" {
				found = true
				break
			}
		}
	}
	if !found {
		return nil
	}
	return &Component{
		Name:        "Model card",
		Description: "Model details including performance metrics, intended use, and limitations",
		License:     license,
		Confidence:  0.95,
		Location:    locRepository,
	}
}

func detectTechnicalReport(m *catalog.ScrapedModel, _ string) *Component {
	if !cardContainsAny(m, "technical report", "tech report", "documentation") {
		return nil
	}
	return &Component{
		Name:        "Technical report",
		Description: "Technical report detailing capabilities and usage instructions for the model",
		License:     Unlicensed,
		Confidence:  0.60,
		Location:    locCardRef,
	}
}

func detectResearchPaper(m *catalog.ScrapedModel, _ string) *Component {
	if !cardContainsAny(m, "paper", "arxiv", "publication") {
		return nil
	}
	return &Component{
		Name:        "Research paper",
		Description: "Research paper detailing the development and capabilities of the model",
		License:     Unlicensed,
		Confidence:  0.70,
		Location:    locCardRef,
	}
}

func detectEvaluationResults(m *catalog.ScrapedModel, _ string) *Component {
	if !cardContainsAny(m, "evaluation", "benchmark", "performance", "results") {
		return nil
	}
	return &Component{
		Name:        "Evaluation results",
		Description: "The results from evaluating the model",
		License:     Unlicensed,
		Confidence:  0.75,
		Location:    locCard,
	}
}

func detectTrainingDataset(m *catalog.ScrapedModel, _ string) *Component {
	if !cardContainsAny(m, "training data", "trained on", "dataset") {
		return nil
	}
	return &Component{
		Name:        "Training dataset",
		Description: "The dataset used to train the model",
		License:     Unlicensed,
		Confidence:  0.50,
		Location:    locCardRef,
	}
}

func cardContainsAny(m *catalog.ScrapedModel, keywords ...string) bool {
	card := strings.ToLower(m.Card)
	for _, kw := range keywords {
		if strings.Contains(card, kw) {
			return true
		}
	}
	return false
}
