// Package model loads the portable artifacts of the offline training run:
// the exported vectorizer/classifier payload, the decision threshold and the
// keyword rules. Everything in here is loaded once, validated eagerly and
// shared read-only across all concurrent inference calls.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Feature carries the per-gram values the trainer exported. Idf and Coef are
// aligned by construction: index i of feature_names, idf and coef all refer
// to the same gram. That alignment is the contract the Python exporter
// upholds and the loader verifies what it can (lengths, finiteness).
type Feature struct {
	Idf  float64
	Coef float64
}

// Artifact is the immutable record of one training run. A new run produces
// a whole new Artifact; nothing is ever patched in place.
type Artifact struct {
	Features  map[string]Feature
	Intercept float64
	NgramMin  int
	NgramMax  int
}

// artifactPayload mirrors the JSON layout written by the export script.
type artifactPayload struct {
	Vectorizer struct {
		Analyzer     string    `json:"analyzer"`
		NgramRange   []int     `json:"ngram_range"`
		Lowercase    bool      `json:"lowercase"`
		FeatureNames []string  `json:"feature_names"`
		Idf          []float64 `json:"idf"`
	} `json:"vectorizer"`
	Classifier struct {
		Coef      []float64 `json:"coef"`
		Intercept float64   `json:"intercept"`
		Classes   []int     `json:"classes"`
	} `json:"classifier"`
}

// LoadArtifact reads and validates an exported model from disk.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}
	artifact, err := ParseArtifact(raw)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.Path = path
		}
		return nil, err
	}
	return artifact, nil
}

// ParseArtifact validates an exported model payload and builds the gram
// lookup. It fails with a ConfigError when feature_names, idf and coef
// differ in length, when the n-gram range is malformed, or when any idf or
// coef value is unusable.
func ParseArtifact(raw []byte) (*Artifact, error) {
	var payload artifactPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, configErr("", "payload", "malformed JSON: %v", err)
	}

	v, c := payload.Vectorizer, payload.Classifier
	if v.Analyzer != "" && v.Analyzer != "char" {
		return nil, configErr("", "vectorizer.analyzer",
			"only char analysis is supported, got %q", v.Analyzer)
	}
	if len(v.FeatureNames) != len(v.Idf) {
		return nil, configErr("", "vectorizer.feature_names",
			"length %d does not match idf length %d", len(v.FeatureNames), len(v.Idf))
	}
	if len(v.FeatureNames) != len(c.Coef) {
		return nil, configErr("", "classifier.coef",
			"length %d does not match feature_names length %d", len(c.Coef), len(v.FeatureNames))
	}
	if len(v.NgramRange) != 2 {
		return nil, configErr("", "vectorizer.ngram_range",
			"expected [min, max], got %v", v.NgramRange)
	}
	ngramMin, ngramMax := v.NgramRange[0], v.NgramRange[1]
	if ngramMin < 1 || ngramMin > ngramMax {
		return nil, configErr("", "vectorizer.ngram_range",
			"invalid range [%d, %d]", ngramMin, ngramMax)
	}
	if !isFinite(c.Intercept) {
		return nil, configErr("", "classifier.intercept", "non-finite value %v", c.Intercept)
	}

	features := make(map[string]Feature, len(v.FeatureNames))
	for i, name := range v.FeatureNames {
		idf, coef := v.Idf[i], c.Coef[i]
		if !isFinite(idf) || idf <= 0 {
			return nil, configErr("", "vectorizer.idf",
				"gram %q has invalid idf %v", name, idf)
		}
		if !isFinite(coef) {
			return nil, configErr("", "classifier.coef",
				"gram %q has non-finite coefficient %v", name, coef)
		}
		features[name] = Feature{Idf: idf, Coef: coef}
	}

	return &Artifact{
		Features:  features,
		Intercept: c.Intercept,
		NgramMin:  ngramMin,
		NgramMax:  ngramMax,
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
