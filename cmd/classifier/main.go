package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"title-lab/classifier"
	"title-lab/dataset"
	"title-lab/internal"
	"title-lab/keywords"
	"title-lab/model"
	"title-lab/normalizer"
	"title-lab/repositories"
	"title-lab/runtime"
	"title-lab/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the trained artifact once, scores the whole unlabeled CSV
// through the worker pool, persists every prediction and writes the
// prediction CSVs. Returning the error to main keeps all defers (database
// and index cleanup) on the exit path.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Model artifacts, loaded and validated once before any scoring
	artifact, err := model.LoadArtifact(config.ModelPath)
	if err != nil {
		return fmt.Errorf("loading model artifact: %w", err)
	}
	modelConfig, err := model.LoadConfig(config.ModelConfigPath)
	if err != nil {
		return fmt.Errorf("loading model config: %w", err)
	}
	rules, err := model.LoadKeywordRules(config.KeywordConfigPath)
	if err != nil {
		return fmt.Errorf("loading keyword config: %w", err)
	}
	adjuster, err := keywords.NewAdjuster(rules)
	if err != nil {
		return fmt.Errorf("building keyword adjuster: %w", err)
	}
	engine := classifier.NewEngine(
		artifact,
		normalizer.New(normalizer.DefaultRules()),
		adjuster,
		modelConfig.Threshold,
	)
	log.Info("Engine ready",
		"features", len(artifact.Features),
		"ngramMin", artifact.NgramMin,
		"ngramMax", artifact.NgramMax,
		"threshold", modelConfig.Threshold)

	// 3. Input batch
	titles, err := dataset.ReadUnlabeledCSV(config.UnlabeledCSVPath)
	if err != nil {
		return fmt.Errorf("reading unlabeled CSV: %w", err)
	}

	// 4. Stores (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = writer.Close()
	}()

	repo := repositories.NewPredictionRepository(db, writer, log)
	store := sink.NewStoreSink(repo)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Score the batch
	pipeline := runtime.NewPipeline(
		engine,
		config.NumberOfWorkers,
		config.BufferSize,
		time.Duration(config.TelemetrySeconds)*time.Second,
		log,
	)
	pipeline.RegisterSinks(store)

	started := time.Now()
	predictions, err := pipeline.Classify(ctx, titles)
	if err != nil {
		// a cancelled run still flushed-and-wrote whatever completed
		log.Warn("Batch interrupted", "scored", len(predictions), "of", len(titles), "error", err)
	}
	if err := store.Flush(); err != nil {
		return fmt.Errorf("flushing prediction index: %w", err)
	}
	log.Info("Batch scored",
		"titles", len(predictions),
		"elapsed", time.Since(started).Round(time.Millisecond))

	// 7. Prediction CSVs
	if err := dataset.WritePredictionCSVs(
		predictions,
		config.PredictionsPath,
		config.PredictionsPosPath,
		config.PredictionsNegPath,
	); err != nil {
		return fmt.Errorf("writing prediction CSVs: %w", err)
	}

	renderSummary(predictions, engine.Threshold())
	return nil
}

func renderSummary(predictions []classifier.Prediction, threshold float64) {
	positives := lo.CountBy(predictions, func(p classifier.Prediction) bool { return p.Label == 1 })

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"Titles scored", strconv.Itoa(len(predictions))})
	table.Append([]string{"Positive", strconv.Itoa(positives)})
	table.Append([]string{"Negative", strconv.Itoa(len(predictions) - positives)})
	table.Append([]string{"Threshold", fmt.Sprintf("%.2f", threshold)})
	table.Render()
}
