package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"title-lab/dataset"
	"title-lab/internal"
	"title-lab/normalizer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run builds both datasets from the status dumps: the labeled CSV the
// trainer consumes and the unlabeled CSV the classifier scores. Returning
// the error to main keeps deferred cleanup running and the exit path in
// one place.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Shared normalization pipeline
	source := dataset.NewSource(normalizer.New(normalizer.DefaultRules()))
	builder := dataset.NewBuilder(source, config.DedupThreshold, log)

	// 3. Labeled dataset (training side)
	labeled, err := builder.BuildLabeled(config.StatusTruePath, config.StatusFalsePath)
	if err != nil {
		return fmt.Errorf("building labeled dataset: %w", err)
	}
	if err := dataset.WriteLabeledCSV(labeled, config.LabeledCSVPath); err != nil {
		return fmt.Errorf("writing labeled CSV: %w", err)
	}
	positives := lo.CountBy(labeled, func(r dataset.Row) bool { return r.Label == dataset.LabelTrue })
	log.Info("Labeled dataset written",
		"path", config.LabeledCSVPath,
		"rows", len(labeled),
		"positives", positives,
		"negatives", len(labeled)-positives)

	// 4. Unlabeled dataset (inference side)
	unlabeled, err := builder.BuildUnlabeled(config.StatusPendingPath)
	if err != nil {
		return fmt.Errorf("building unlabeled dataset: %w", err)
	}
	if err := dataset.WriteUnlabeledCSV(unlabeled, config.UnlabeledCSVPath); err != nil {
		return fmt.Errorf("writing unlabeled CSV: %w", err)
	}
	log.Info("Unlabeled dataset written",
		"path", config.UnlabeledCSVPath,
		"rows", len(unlabeled))

	// 5. Language overview, reporting only
	renderLanguageTally(dataset.LanguageTally(append(labeled, unlabeled...)))
	return nil
}

func renderLanguageTally(tally map[string]int) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Language", "Titles"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	codes := lo.Keys(tally)
	sort.Strings(codes)
	for _, code := range codes {
		display := code
		if display == "" {
			display = "??"
		}
		table.Append([]string{display, strconv.Itoa(tally[code])})
	}
	table.Render()
}
