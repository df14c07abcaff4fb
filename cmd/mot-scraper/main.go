// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// mot-scraper fetches one model's detail from Hugging Face and drafts a MOT
// registry YAML entry for manual review.
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
	"github.com/openmot/mottools/internal/draft"
	"github.com/openmot/mottools/internal/extract"
	"github.com/openmot/mottools/internal/logging"
)

func main() {
	outputDir := flag.String("output-dir", "../models", "Output directory for draft YAML files")
	hfToken := flag.String("hf-token", "", "Hugging Face API token for accessing gated models (or HF_TOKEN env)")
	logFile := flag.String("log-file", "", "Write logs to a rotating file instead of stderr")
	debug := flag.Bool("debug", false, "Enable debug logging")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Usage = usage
	modelID := parseModelID(flag.CommandLine, os.Args[1:])

	if *version {
		fmt.Printf("mot-scraper %s (commit %s, built %s)\n", buildinfo.Version, buildinfo.Commit, buildinfo.BuildDate)
		return
	}

	if modelID == "" {
		usage()
		os.Exit(2)
	}

	logging.SetupBaseLogger()
	if err := logging.ConfigureLogOutput(*logFile); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	_ = godotenv.Load()
	token := *hfToken
	if token == "" {
		token = os.Getenv("HF_TOKEN")
	}

	banner(fmt.Sprintf("Scraping model: %s", modelID))

	client := catalog.NewClient(token)
	ctx := context.Background()

	scraped, err := client.Scrape(ctx, modelID)
	if err != nil {
		log.WithError(err).Error("Failed to scrape model data")
		fmt.Println("Failed to scrape model data")
		os.Exit(1)
	}

	banner("Generating YAML...")

	metadata := extract.ExtractMetadata(ctx, scraped, client)
	components := extract.DetectComponents(scraped)

	if metadata.License != extract.Unlicensed && extract.IsOpenLicense(metadata.License) {
		log.Infof("Detected known open license: %s", metadata.License)
	} else if extract.HasLicenseFile(scraped) {
		log.Warn("LICENSE file present but license unconfirmed; manual review required")
	}
	if metadata.Repository != "" {
		log.Infof("Inferred repository %s (confidence %.2f)", metadata.Repository, metadata.RepoConfidence)
	}

	path, err := draft.Write(*outputDir, metadata, components)
	if err != nil {
		log.Fatalf("Failed to write draft: %v", err)
	}

	fmt.Println(draft.Render(metadata, components))
	printEpilogue(path)
}

// parseModelID parses fs and returns the positional model id. Flags that
// follow the id are parsed too, so "mot-scraper <model-id> -output-dir dir"
// works the same as "mot-scraper -output-dir dir <model-id>".
func parseModelID(fs *flag.FlagSet, args []string) string {
	_ = fs.Parse(args)
	id := fs.Arg(0)
	if id != "" && fs.NArg() > 1 {
		_ = fs.Parse(fs.Args()[1:])
	}
	return id
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: mot-scraper [flags] <model-id>\n")
	fmt.Fprintf(os.Stderr, "Example: mot-scraper meta-llama/Llama-3-8B --output-dir ../models\n\n")
	flag.PrintDefaults()
}

func banner(title string) {
	rule := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println(title)
	fmt.Println(rule)
	fmt.Println()
}

func printEpilogue(path string) {
	banner("DRAFT YAML GENERATED")
	fmt.Println("IMPORTANT: This is a DRAFT that requires manual review!")
	fmt.Println("    - Verify all component availability")
	fmt.Println("    - Confirm license information")
	fmt.Println("    - Add missing components")
	fmt.Println("    - Update confidence scores")
	fmt.Println()
	fmt.Printf("Output saved to: %s\n", path)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Review and edit: %s\n", path)
	fmt.Println("  2. Validate the record against the MOT schema")
	fmt.Println("  3. Submit PR to add to MOT database")
}
