package classifier

import (
	"title-lab/keywords"
	"title-lab/model"
	"title-lab/normalizer"
)

// Prediction is the write-once outcome for one title.
type Prediction struct {
	Title           string
	NormalizedTitle string
	Probability     float64
	Label           int
}

// Engine bundles the immutable pieces of the inference path: the trained
// artifact, the normalization rules, the keyword adjuster and the decision
// threshold. Build it once at startup; Predict is pure and safe to call
// from any number of goroutines.
type Engine struct {
	artifact   *model.Artifact
	normalizer normalizer.Normalizer
	adjuster   keywords.Adjuster
	threshold  float64
}

func NewEngine(
	artifact *model.Artifact,
	norm normalizer.Normalizer,
	adjuster keywords.Adjuster,
	threshold float64,
) *Engine {
	return &Engine{
		artifact:   artifact,
		normalizer: norm,
		adjuster:   adjuster,
		threshold:  threshold,
	}
}

// Predict runs one title through normalize → extract → score → adjust →
// decide. It never fails: a missing or empty title normalizes to "", which
// produces an empty feature map and a probability of
// sigmoid(intercept + adjustment).
func (e *Engine) Predict(title string) Prediction {
	normalized := e.normalizer.Normalize(title)
	features := Extract(normalized, e.artifact)
	logit := Score(features, e.artifact)
	adjustment := e.adjuster.Adjust(normalized)
	probability, label := Decide(logit, adjustment, e.threshold)

	return Prediction{
		Title:           title,
		NormalizedTitle: normalized,
		Probability:     probability,
		Label:           label,
	}
}

// Threshold exposes the decision threshold for reporting.
func (e *Engine) Threshold() float64 {
	return e.threshold
}
