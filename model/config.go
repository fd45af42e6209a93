package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Config carries the decision threshold the classifier applies to the
// sigmoid probability. The threshold must lie strictly between 0 and 1;
// that is enforced here, at load time, not at decision time.
type Config struct {
	Threshold float64 `json:"threshold" validate:"gt=0,lt=1"`
}

// LoadConfig reads the model config from disk and validates it.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading model config: %w", err)
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

func ParseConfig(raw []byte) (Config, error) {
	// threshold is required: distinguish "absent" from an explicit zero
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Config{}, configErr("", "payload", "malformed JSON: %v", err)
	}
	if _, ok := probe["threshold"]; !ok {
		return Config{}, configErr("", "threshold", "missing required field")
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, configErr("", "threshold", "not a number: %v", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, configErr("", "threshold",
			"must lie strictly between 0 and 1, got %v", cfg.Threshold)
	}
	return cfg, nil
}

// KeywordRules is the loaded, immutable form of the keyword config. All
// fields are optional; absent lists default to empty and absent amounts to
// zero, which makes the adjuster a no-op.
type KeywordRules struct {
	Positives       []string
	Negatives       []string
	PositiveBonus   float64
	NegativePenalty float64
}

type keywordPayload struct {
	PositiveKeywords       []string `json:"positiveKeywords"`
	NegativeKeywords       []string `json:"negativeKeywords"`
	PositiveKeywordBonus   float64  `json:"positiveKeywordBonus"`
	NegativeKeywordPenalty float64  `json:"negativeKeywordPenalty"`
}

// LoadKeywordRules reads the keyword config from disk. A missing file is not
// an error: the rules simply stay empty.
func LoadKeywordRules(path string) (KeywordRules, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return KeywordRules{}, nil
	}
	if err != nil {
		return KeywordRules{}, fmt.Errorf("reading keyword config: %w", err)
	}
	rules, err := ParseKeywordRules(raw)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.Path = path
		}
		return KeywordRules{}, err
	}
	return rules, nil
}

// ParseKeywordRules parses the keyword config. Keywords are lowercased once
// here so the adjuster can do case-insensitive substring checks without
// re-folding on every call; empty entries are dropped.
func ParseKeywordRules(raw []byte) (KeywordRules, error) {
	var payload keywordPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return KeywordRules{}, configErr("", "payload", "malformed JSON: %v", err)
	}
	return KeywordRules{
		Positives:       foldKeywords(payload.PositiveKeywords),
		Negatives:       foldKeywords(payload.NegativeKeywords),
		PositiveBonus:   payload.PositiveKeywordBonus,
		NegativePenalty: payload.NegativeKeywordPenalty,
	}, nil
}

func foldKeywords(words []string) []string {
	folded := lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(w)
	})
	return lo.Filter(folded, func(w string, _ int) bool {
		return w != ""
	})
}
