// Package normalizer canonicalizes raw video titles into the exact text the
// model was trained on. Dataset construction and inference share this one
// pipeline: any divergence between the two sides is train/serve skew.
package normalizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Normalizer struct {
	rules Rules
}

func New(rules Rules) Normalizer {
	return Normalizer{rules: rules}
}

// Normalize canonicalizes a raw title. It is pure, total and idempotent:
// Normalize(Normalize(s)) == Normalize(s) for every s.
//
// The step order is significant and must match the training pipeline:
// NFKC fold, lowercase, hashtag removal, episode-marker removal, bracket-tag
// removal, bracket-character trim, emoji collapse, repeated-emphasis
// collapse, whitespace collapse.
func (n Normalizer) Normalize(raw string) string {
	text := norm.NFKC.String(raw)
	text = strings.ToLower(text)
	text = n.rules.hashtag.ReplaceAllString(text, " ")
	text = n.rules.episode.ReplaceAllString(text, " ")
	text = n.rules.bracketTag.ReplaceAllString(text, " ")
	text = n.trim(text)
	text = n.rules.emoji.ReplaceAllString(text, " ")
	text = n.collapseRepeats(text)
	text = n.rules.whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// trim deletes the enumerated bracket characters one by one, with no
// pairing or balance check.
func (n Normalizer) trim(text string) string {
	return strings.Map(func(r rune) rune {
		if _, ok := n.rules.trimChars[r]; ok {
			return -1
		}
		return r
	}, text)
}

// collapseRepeats shrinks runs of two or more identical emphasis characters
// ("!!!!", "ww", "〜〜〜") down to a single occurrence. RE2 has no
// backreferences, so the run scan is done by hand over runes.
func (n Normalizer) collapseRepeats(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var prev rune = -1
	for _, r := range text {
		if r == prev {
			if _, ok := n.rules.repeatable[r]; ok {
				continue
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
