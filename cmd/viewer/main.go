package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"title-lab/internal"
)

// The viewer inspects a prediction store another process may still be
// writing: BadgerDB opens read-only behind the lock guard, and the Bluge
// index is opened through a snapshot reader.
func main() {
	query := flag.String("query", "", "Search the normalized titles instead of serving the inspect page")
	limit := flag.Int("limit", 20, "Maximum search hits")
	flag.Parse()

	if err := run(*query, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(query string, limit int) error {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if query != "" {
		return search(config, query, limit)
	}

	// 2. Open Badger in read-only mode
	// BypassLockGuard allows opening while the classifier holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// 3. Serve the inspect page until interrupted
	stats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("🌐 Viewer started at http://localhost:%d/inspect\n", config.DebugPort)
	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.DefaultMapper, stats)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

// search runs one ad-hoc query against the normalized-title index and
// prints the hits. It reads the index snapshot directly, so it never
// touches BadgerDB and needs no lock at all.
func search(config internal.Config, query string, limit int) error {
	reader, err := bluge.OpenReader(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer reader.Close()

	match := bluge.NewMatchQuery(query).SetField("normalized_title")
	iterator, err := reader.Search(context.Background(), bluge.NewTopNSearch(limit, match))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Title", "Normalized", "Label", "Key"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for {
		next, err := iterator.Next()
		if err != nil {
			return err
		}
		if next == nil {
			break
		}
		var title, normalized, label, key string
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "title":
				title = string(value)
			case "normalized_title":
				normalized = string(value)
			case "label":
				label = string(value)
			case "_id":
				key = string(value)
			}
			return true
		})
		if err != nil {
			return err
		}
		table.Append([]string{title, normalized, label, key})
	}
	table.Render()
	return nil
}
