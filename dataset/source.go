package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"title-lab/errors"
	"title-lab/normalizer"
)

// Source extracts titles from the D1-style status dumps: a text file whose
// payload is a JSON array (starting at the first "[", whatever precedes it)
// of result blocks, each carrying a list of rows with a "title" field.
type Source struct {
	norm normalizer.Normalizer
}

func NewSource(norm normalizer.Normalizer) Source {
	return Source{norm: norm}
}

type dumpBlock struct {
	Results []struct {
		Title string `json:"title"`
	} `json:"results"`
}

// LoadDump reads one status dump and turns it into dataset rows.
//
// When label is non-empty the rows are training rows: the stored title is
// the normalized form (that is what the trainer consumes). When label is
// empty the rows are inference candidates and keep the raw title alongside
// the normalized one. Rows with an empty title are skipped.
func (s Source) LoadDump(path, label string) ([]Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}
	rows, err := s.ParseDump(raw, label)
	if err != nil {
		return nil, &InputError{Path: path, Reason: err.Error()}
	}
	return rows, nil
}

func (s Source) ParseDump(raw []byte, label string) ([]Row, error) {
	text := string(raw)
	start := strings.Index(text, "[")
	if start == -1 {
		return nil, errors.ErrNoArrayPayload
	}

	var blocks []dumpBlock
	if err := json.Unmarshal([]byte(text[start:]), &blocks); err != nil {
		return nil, fmt.Errorf("malformed dump payload: %w", err)
	}

	var rows []Row
	for _, block := range blocks {
		for _, item := range block.Results {
			if item.Title == "" {
				continue
			}
			normalized := s.norm.Normalize(item.Title)
			row := Row{
				Title:           item.Title,
				NormalizedTitle: normalized,
				Label:           label,
			}
			if label != "" {
				// training rows carry the normalized text as the title
				row.Title = normalized
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}
