// Package dataset owns the dataset-build path: extracting titles from the
// upstream status dumps, normalizing them, dropping near-duplicates and
// reading/writing the CSV files the training and inference collaborators
// exchange.
package dataset

import "fmt"

const (
	LabelTrue  = "1"
	LabelFalse = "0"

	// DefaultDedupThreshold is the edit distance at or under which two
	// titles count as the same video.
	DefaultDedupThreshold = 2
)

// Row is one dataset entry. Labeled rows are created once at build time and
// never relabeled; unlabeled rows keep the raw title next to its normalized
// form so predictions can echo the original text.
type Row struct {
	Title           string
	NormalizedTitle string
	Label           string // LabelTrue, LabelFalse or "" for unlabeled rows
}

// CompareKey is the text dedup compares on: the normalized title, falling
// back to the raw title when normalization produced nothing.
func (r Row) CompareKey() string {
	if r.NormalizedTitle != "" {
		return r.NormalizedTitle
	}
	return r.Title
}

// InputError reports a structurally unusable input source, e.g. a CSV
// missing its title column. Fatal for that source only.
type InputError struct {
	Path   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error in %s: %s", e.Path, e.Reason)
}
