package dataset

import (
	"log/slog"

	"github.com/abadojack/whatlanggo"

	"title-lab/dedup"
	"title-lab/errors"
)

// Builder assembles the labeled and unlabeled datasets out of the status
// dumps: load, normalize, concatenate, near-duplicate filter.
type Builder struct {
	source    Source
	threshold int
	log       *slog.Logger
}

func NewBuilder(source Source, threshold int, log *slog.Logger) Builder {
	return Builder{source: source, threshold: threshold, log: log}
}

// BuildLabeled loads the positive and negative dumps, labels them and drops
// near-duplicates across the whole set. Positive rows come first, so on a
// near-tie between classes the positive row wins, matching the original
// build order.
func (b Builder) BuildLabeled(truePath, falsePath string) ([]Row, error) {
	trueRows, err := b.source.LoadDump(truePath, LabelTrue)
	if err != nil {
		return nil, err
	}
	falseRows, err := b.source.LoadDump(falsePath, LabelFalse)
	if err != nil {
		return nil, err
	}

	rows := append(trueRows, falseRows...)
	if len(rows) == 0 {
		return nil, errors.ErrEmptyDataset
	}
	unique := dedup.Deduplicate(rows, Row.CompareKey, b.threshold)
	b.log.Info("Labeled dataset built",
		"loaded", len(rows),
		"kept", len(unique),
		"dropped", len(rows)-len(unique))
	return unique, nil
}

// BuildUnlabeled loads the pending dump, keeping raw titles for later
// prediction output, and drops near-duplicates.
func (b Builder) BuildUnlabeled(pendingPath string) ([]Row, error) {
	rows, err := b.source.LoadDump(pendingPath, "")
	if err != nil {
		return nil, err
	}
	unique := dedup.Deduplicate(rows, Row.CompareKey, b.threshold)
	b.log.Info("Unlabeled dataset built",
		"loaded", len(rows),
		"kept", len(unique),
		"dropped", len(rows)-len(unique))
	return unique, nil
}

// LanguageTally counts detected languages over the normalized titles. The
// tally is reporting only and never feeds the model.
func LanguageTally(rows []Row) map[string]int {
	tally := make(map[string]int)
	for _, row := range rows {
		info := whatlanggo.Detect(row.CompareKey())
		tally[info.Lang.Iso6391()]++
	}
	return tally
}
