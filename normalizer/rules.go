package normalizer

import "regexp"

// Rules holds every pattern and character set used by the normalization
// pipeline. It is built once at process start and injected where needed, so
// there is no hidden package-level state and a Rules value can be shared by
// any number of goroutines.
//
// The patterns mirror the ones the training pipeline uses; changing any of
// them without retraining silently corrupts predictions.
type Rules struct {
	hashtag    *regexp.Regexp
	episode    *regexp.Regexp
	bracketTag *regexp.Regexp
	emoji      *regexp.Regexp
	whitespace *regexp.Regexp
	trimChars  map[rune]struct{}
	repeatable map[rune]struct{}
}

// DefaultRules builds the rule set shared by dataset construction and
// inference.
func DefaultRules() Rules {
	return Rules{
		// "#" immediately followed by non-whitespace, the whole token goes
		hashtag: regexp.MustCompile(`#\S+`),
		// vol.3 / vol3 / no.5 / # 12 and spacing variants
		episode: regexp.MustCompile(`(?:vol\.?\s*[0-9]+|no\.?\s*[0-9]+|#\s*[0-9]+)`),
		// [公式], [MV], any maximal [...] annotation
		bracketTag: regexp.MustCompile(`\[[^\]]+\]`),
		// regional indicators, symbols-and-pictographs, misc symbols/dingbats
		emoji:      regexp.MustCompile(`[\x{1F1E0}-\x{1F1FF}\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}]+`),
		whitespace: regexp.MustCompile(`[\s\p{Z}]+`),
		trimChars:  runeSet("【】<>"),
		// emphasis characters whose runs collapse to a single occurrence;
		// anything outside this set keeps its repetitions
		repeatable: runeSet("!?！？w〜～・…、。-―_+=♡♥★☆♪"),
	}
}

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}
