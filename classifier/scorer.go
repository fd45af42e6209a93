package classifier

import (
	"math"

	"title-lab/model"
)

// Score computes the raw logit: intercept plus the dot product of the sparse
// feature vector with the trained coefficients. Only grams present in the
// map contribute; everything else multiplies by an implicit zero.
func Score(features map[string]float64, artifact *model.Artifact) float64 {
	score := artifact.Intercept
	for gram, weight := range features {
		score += artifact.Features[gram].Coef * weight
	}
	return score
}

// Sigmoid maps a logit to a probability in (0, 1).
func Sigmoid(logit float64) float64 {
	return 1.0 / (1.0 + math.Exp(-logit))
}

// Decide converts an adjusted logit into the final probability and binary
// label. The threshold is assumed valid (strictly inside (0, 1)); that is
// the config loader's job, not this function's.
func Decide(logit, adjustment, threshold float64) (probability float64, label int) {
	probability = Sigmoid(logit + adjustment)
	if probability >= threshold {
		label = 1
	}
	return probability, label
}
