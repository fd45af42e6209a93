package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"title-lab/keywords"
	"title-lab/model"
	"title-lab/normalizer"
)

func TestEngine_Predict_EndToEnd(t *testing.T) {
	req := require.New(t)

	artifact := &model.Artifact{
		Features:  map[string]model.Feature{"ab": {Idf: 1.0, Coef: 2.0}},
		Intercept: -0.5,
		NgramMin:  2,
		NgramMax:  2,
	}
	adjuster, err := keywords.NewAdjuster(model.KeywordRules{})
	req.NoError(err)

	engine := NewEngine(artifact, normalizer.New(normalizer.DefaultRules()), adjuster, 0.5)

	// "ab" -> single in-vocabulary gram, L2 weight 1.0 -> logit -0.5 + 2.0
	p := engine.Predict("ab")
	req.Equal("ab", p.NormalizedTitle)
	req.InDelta(0.8175744761936437, p.Probability, 1e-12)
	req.Equal(1, p.Label)
}

func TestEngine_Predict_EmptyTitleIsDefined(t *testing.T) {
	req := require.New(t)

	artifact := &model.Artifact{
		Features:  map[string]model.Feature{"ab": {Idf: 1.0, Coef: 2.0}},
		Intercept: -0.5,
		NgramMin:  2,
		NgramMax:  2,
	}
	adjuster, err := keywords.NewAdjuster(model.KeywordRules{})
	req.NoError(err)
	engine := NewEngine(artifact, normalizer.New(normalizer.DefaultRules()), adjuster, 0.5)

	p := engine.Predict("")
	req.Empty(p.NormalizedTitle)
	req.InDelta(Sigmoid(-0.5), p.Probability, 1e-12)
	req.Equal(0, p.Label)
}

// Conformance fixtures: probabilities below were produced by the original
// trained-model scoring pipeline on these exact titles. Any drift in the
// normalizer, the extractor or the scorer shows up here first.
func TestEngine_Predict_Conformance(t *testing.T) {
	req := require.New(t)

	artifact := &model.Artifact{
		Features: map[string]model.Feature{
			"配信":  {Idf: 1.4, Coef: 1.2},
			"歌って": {Idf: 2.0, Coef: 2.5},
			"てみた": {Idf: 1.8, Coef: 1.9},
			"切り":  {Idf: 1.5, Coef: -2.2},
		},
		Intercept: -0.3,
		NgramMin:  2,
		NgramMax:  3,
	}
	adjuster, err := keywords.NewAdjuster(model.KeywordRules{
		Positives:       []string{"歌ってみた"},
		Negatives:       []string{"切り抜き"},
		PositiveBonus:   0.9,
		NegativePenalty: 1.4,
	})
	req.NoError(err)

	engine := NewEngine(artifact, normalizer.New(normalizer.DefaultRules()), adjuster, 0.55)

	tests := []struct {
		name        string
		title       string
		normalized  string
		probability float64
		label       int
	}{
		{
			name:        "Positive gram hits plus keyword bonus",
			title:       "【公式】歌ってみた!!",
			normalized:  "公式歌ってみた!",
			probability: 0.9765525852432125,
			label:       1,
		},
		{
			name:        "Negative gram plus keyword penalty",
			title:       "切り抜きまとめ #5",
			normalized:  "切り抜きまとめ",
			probability: 0.01984030573407751,
			label:       0,
		},
		{
			name:        "Single gram no keywords",
			title:       "ライブ配信〜〜アーカイブ",
			normalized:  "ライブ配信〜アーカイブ",
			probability: 0.7109495026250039,
			label:       1,
		},
		{
			name:        "Empty title",
			title:       "",
			normalized:  "",
			probability: 0.425557483188341,
			label:       0,
		},
		{
			name:        "Out of vocabulary",
			title:       "ただの雑談",
			normalized:  "ただの雑談",
			probability: 0.425557483188341,
			label:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.Predict(tt.title)
			req.Equal(tt.title, p.Title)
			req.Equal(tt.normalized, p.NormalizedTitle)
			req.InDelta(tt.probability, p.Probability, 1e-9)
			req.Equal(tt.label, p.Label)
		})
	}
}
