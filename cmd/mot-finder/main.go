// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// mot-finder compares the popular models on Hugging Face against the local
// MOT registry and reports the ones not yet catalogued.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/openmot/mottools/internal/buildinfo"
	"github.com/openmot/mottools/internal/catalog"
	"github.com/openmot/mottools/internal/logging"
	"github.com/openmot/mottools/internal/missing"
	"github.com/openmot/mottools/internal/registry"
)

func main() {
	minDownloads := flag.Int64("min-downloads", 1000, "Minimum number of downloads to consider")
	limit := flag.Int("limit", 1000, "Maximum number of models to fetch from the catalog")
	modelsDir := flag.String("models-dir", "../models", "Path to MOT models directory")
	output := flag.String("output", "", "Output file for the report (default: print to console only)")
	modelType := flag.String("model-type", "", "Filter by model type (e.g. text-generation, image-to-text)")
	logFile := flag.String("log-file", "", "Write logs to a rotating file instead of stderr")
	debug := flag.Bool("debug", false, "Enable debug logging")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("mot-finder %s (commit %s, built %s)\n", buildinfo.Version, buildinfo.Commit, buildinfo.BuildDate)
		return
	}

	logging.SetupBaseLogger()
	if err := logging.ConfigureLogOutput(*logFile); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	// Pick up HF_TOKEN from a local .env when present.
	_ = godotenv.Load()

	banner("MODEL OPENNESS TOOL - MISSING MODELS FINDER")

	records := registry.Load(*modelsDir)

	client := catalog.NewClient(os.Getenv("HF_TOKEN"))
	remote := client.ListModels(context.Background(), catalog.ListOptions{
		MinDownloads: *minDownloads,
		Limit:        *limit,
		ModelType:    *modelType,
	})

	log.Info("Comparing models...")
	missingModels := missing.Missing(remote, records)
	log.Infof("Found %d missing models", len(missingModels))

	report := missing.Report(missingModels, records.Len())
	if *output != "" {
		if err := missing.WriteReport(*output, report); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	}

	fmt.Println(report)
	printNextSteps()
}

func banner(title string) {
	rule := strings.Repeat("=", 80)
	fmt.Println(rule)
	fmt.Println(title)
	fmt.Println(rule)
	fmt.Println()
}

func printNextSteps() {
	fmt.Println()
	banner("NEXT STEPS")
	fmt.Println("1. Review the high priority models above")
	fmt.Println("2. Use mot-scraper to generate draft YAML files")
	fmt.Println("3. Manually review and validate the generated files")
	fmt.Println("4. Submit PRs to add models to MOT database")
	fmt.Println()
	fmt.Println("Example workflow:")
	fmt.Println("  mot-scraper meta-llama/Llama-3-8B")
	fmt.Println("  # Review and edit ../models/Llama-3-8B.yml")
	fmt.Println("  # Submit PR")
	fmt.Println()
}
