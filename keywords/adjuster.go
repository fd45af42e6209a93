// Package keywords applies the configured bonus/penalty adjustment to the
// classifier logit when a title contains hand-picked keywords.
package keywords

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"

	"title-lab/model"
)

// Adjuster matches configured keywords against titles. Matching is plain
// case-insensitive substring containment; the Aho-Corasick automata just
// make the any-of check a single pass regardless of how many keywords the
// config carries. Immutable once built.
type Adjuster struct {
	positive *goahocorasick.Machine
	negative *goahocorasick.Machine
	bonus    float64
	penalty  float64
}

func NewAdjuster(rules model.KeywordRules) (Adjuster, error) {
	positive, err := buildMachine(rules.Positives)
	if err != nil {
		return Adjuster{}, err
	}
	negative, err := buildMachine(rules.Negatives)
	if err != nil {
		return Adjuster{}, err
	}
	return Adjuster{
		positive: positive,
		negative: negative,
		bonus:    rules.PositiveBonus,
		penalty:  rules.NegativePenalty,
	}, nil
}

// Adjust returns the logit delta for a title. A positive keyword adds the
// bonus only when no negative keyword matched; a negative keyword always
// subtracts the penalty, even alongside a positive match. The asymmetry is
// the observed production behavior and is kept as-is.
func (a Adjuster) Adjust(text string) float64 {
	lower := []rune(strings.ToLower(text))

	hasPositive := matches(a.positive, lower)
	hasNegative := matches(a.negative, lower)

	adjustment := 0.0
	if hasPositive && !hasNegative {
		adjustment += a.bonus
	}
	if hasNegative {
		adjustment -= a.penalty
	}
	return adjustment
}

func buildMachine(words []string) (*goahocorasick.Machine, error) {
	if len(words) == 0 {
		return nil, nil
	}
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = []rune(word)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(m *goahocorasick.Machine, content []rune) bool {
	if m == nil || len(content) == 0 {
		return false
	}
	return len(m.MultiPatternSearch(content, true)) > 0
}
