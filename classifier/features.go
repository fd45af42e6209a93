// Package classifier reproduces the training-time TF-IDF feature extraction
// and linear scoring outside the training library. The arithmetic here must
// stay bit-for-bit equivalent to what the trainer did, or predictions drift
// silently; conformance fixtures in the tests pin it down.
package classifier

import (
	"math"

	"title-lab/model"
)

// Extract slides windows of every length in the artifact's n-gram range
// across the normalized text (runes, step 1, overlaps included) and counts
// the grams present in the trained vocabulary. Out-of-vocabulary grams are
// discarded silently: they never widen the feature space and never error.
// Counts are idf-weighted and L2-normalized; when nothing matched the map
// stays empty instead of dividing by zero.
func Extract(text string, artifact *model.Artifact) map[string]float64 {
	features := make(map[string]float64)
	if text == "" {
		return features
	}

	runes := []rune(text)
	for n := artifact.NgramMin; n <= artifact.NgramMax; n++ {
		if len(runes) < n {
			break
		}
		for i := 0; i+n <= len(runes); i++ {
			gram := string(runes[i : i+n])
			if _, ok := artifact.Features[gram]; !ok {
				continue
			}
			features[gram]++
		}
	}

	normSq := 0.0
	for gram, count := range features {
		value := count * artifact.Features[gram].Idf
		features[gram] = value
		normSq += value * value
	}
	if normSq == 0 {
		return features
	}

	l2 := math.Sqrt(normSq)
	for gram := range features {
		features[gram] /= l2
	}
	return features
}
