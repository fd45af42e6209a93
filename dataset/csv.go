package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/samber/lo"

	"title-lab/classifier"
)

// WriteLabeledCSV writes the training dataset: title,label. The title
// column holds the normalized text the trainer vectorizes.
func WriteLabeledCSV(rows []Row, path string) error {
	return writeCSV(path, []string{"title", "label"}, lo.Map(rows, func(r Row, _ int) []string {
		return []string{r.Title, r.Label}
	}))
}

// WriteUnlabeledCSV writes the inference candidates: title,normalized_title.
func WriteUnlabeledCSV(rows []Row, path string) error {
	return writeCSV(path, []string{"title", "normalized_title"}, lo.Map(rows, func(r Row, _ int) []string {
		return []string{r.Title, r.NormalizedTitle}
	}))
}

// ReadUnlabeledCSV loads the titles to classify. A file without a title
// column is unusable and fails with an InputError; a missing or empty cell
// is just an empty title, which the engine handles without failing.
func ReadUnlabeledCSV(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening unlabeled CSV: %w", err)
	}
	defer fh.Close()

	reader := csv.NewReader(fh)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &InputError{Path: path, Reason: err.Error()}
	}
	if len(records) == 0 {
		return nil, &InputError{Path: path, Reason: "empty file, expected a header row"}
	}

	titleCol := lo.IndexOf(records[0], "title")
	if titleCol == -1 {
		return nil, &InputError{Path: path, Reason: `missing required column "title"`}
	}

	titles := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if titleCol >= len(record) {
			titles = append(titles, "")
			continue
		}
		titles = append(titles, record[titleCol])
	}
	return titles, nil
}

// WritePredictionCSVs writes the full prediction set plus the per-label
// splits. Probabilities are fixed to six decimals.
func WritePredictionCSVs(predictions []classifier.Prediction, allPath, positivePath, negativePath string) error {
	positives := lo.Filter(predictions, func(p classifier.Prediction, _ int) bool {
		return p.Label == 1
	})
	negatives := lo.Filter(predictions, func(p classifier.Prediction, _ int) bool {
		return p.Label == 0
	})

	if err := writePredictionCSV(predictions, allPath); err != nil {
		return err
	}
	if err := writePredictionCSV(positives, positivePath); err != nil {
		return err
	}
	return writePredictionCSV(negatives, negativePath)
}

func writePredictionCSV(predictions []classifier.Prediction, path string) error {
	header := []string{"title", "normalized_title", "probability", "label"}
	return writeCSV(path, header, lo.Map(predictions, func(p classifier.Prediction, _ int) []string {
		return []string{
			p.Title,
			p.NormalizedTitle,
			fmt.Sprintf("%.6f", p.Probability),
			fmt.Sprintf("%d", p.Label),
		}
	}))
}

func writeCSV(path string, header []string, records [][]string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer fh.Close()

	writer := csv.NewWriter(fh)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
