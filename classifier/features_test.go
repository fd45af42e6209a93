package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"title-lab/model"
)

func fixtureArtifact() *model.Artifact {
	return &model.Artifact{
		Features: map[string]model.Feature{
			"ab": {Idf: 1.0, Coef: 2.0},
			"ba": {Idf: 2.0, Coef: -1.0},
		},
		Intercept: -0.5,
		NgramMin:  2,
		NgramMax:  2,
	}
}

func TestExtract_OverlappingWindows(t *testing.T) {
	req := require.New(t)

	artifact := &model.Artifact{
		Features:  map[string]model.Feature{"ab": {Idf: 1.0, Coef: 0.0}},
		Intercept: 0,
		NgramMin:  2,
		NgramMax:  2,
	}

	// "ababab" holds "ab" at offsets 0, 2 and 4; the single matched gram
	// L2-normalizes to weight 1 regardless of its raw count of 3.
	features := Extract("ababab", artifact)
	req.Len(features, 1)
	req.InDelta(1.0, features["ab"], 1e-12)
}

func TestExtract_L2Normalization(t *testing.T) {
	req := require.New(t)

	// counts: ab=3, ba=2 -> weighted 3*1=3 and 2*2=4 -> norm 5 -> 0.6, 0.8
	features := Extract("ababab", fixtureArtifact())
	req.Len(features, 2)
	req.InDelta(0.6, features["ab"], 1e-12)
	req.InDelta(0.8, features["ba"], 1e-12)
}

func TestExtract_OutOfVocabularyIsSilent(t *testing.T) {
	req := require.New(t)

	req.Empty(Extract("zzzz", fixtureArtifact()))
	req.Empty(Extract("", fixtureArtifact()))
}

func TestExtract_TextShorterThanWindow(t *testing.T) {
	req := require.New(t)

	artifact := &model.Artifact{
		Features:  map[string]model.Feature{"abc": {Idf: 1.0}},
		NgramMin:  3,
		NgramMax:  5,
	}
	req.Empty(Extract("ab", artifact))
}

func TestExtract_CountsRunesNotBytes(t *testing.T) {
	req := require.New(t)

	artifact := &model.Artifact{
		Features:  map[string]model.Feature{"配信": {Idf: 1.0}},
		NgramMin:  2,
		NgramMax:  2,
	}

	// "配信" is one 2-gram window over runes even though it is 6 bytes
	features := Extract("配信", artifact)
	req.Len(features, 1)
	req.InDelta(1.0, features["配信"], 1e-12)
}

func TestExtract_MultipleWindowLengths(t *testing.T) {
	req := require.New(t)

	artifact := &model.Artifact{
		Features: map[string]model.Feature{
			"ab":  {Idf: 1.0},
			"abc": {Idf: 1.0},
		},
		NgramMin: 2,
		NgramMax: 3,
	}

	// "abc": windows ab, bc, abc; bc is out of vocabulary.
	// weighted ab=1, abc=1 -> norm sqrt(2)
	features := Extract("abc", artifact)
	req.Len(features, 2)
	req.InDelta(0.7071067811865475, features["ab"], 1e-12)
	req.InDelta(0.7071067811865475, features["abc"], 1e-12)
}
