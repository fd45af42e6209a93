package keywords

import (
	"testing"

	"github.com/stretchr/testify/require"

	"title-lab/model"
)

func TestAdjuster_Adjust(t *testing.T) {
	req := require.New(t)

	rules := model.KeywordRules{
		Positives:       []string{"歌ってみた", "live"},
		Negatives:       []string{"切り抜き", "spoiler"},
		PositiveBonus:   0.8,
		NegativePenalty: 1.5,
	}
	adjuster, err := NewAdjuster(rules)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "Positive keyword alone adds the bonus",
			input:    "新曲を歌ってみた",
			expected: 0.8,
		},
		{
			name:     "Negative keyword alone subtracts the penalty",
			input:    "昨日の配信切り抜き",
			expected: -1.5,
		},
		{
			name:     "Both polarities apply only the penalty",
			input:    "歌ってみた配信の切り抜き",
			expected: -1.5,
		},
		{
			name:     "Case-insensitive substring match",
			input:    "SPECIAL LIVE SHOW",
			expected: 0.8,
		},
		{
			name:     "Keyword inside a longer word still matches",
			input:    "alive and kicking",
			expected: 0.8,
		},
		{
			name:     "No keyword",
			input:    "今日のニュースまとめ",
			expected: 0,
		},
		{
			name:     "Empty text",
			input:    "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.InDelta(tt.expected, adjuster.Adjust(tt.input), 1e-12)
		})
	}
}

func TestAdjuster_EmptyRulesAreNoOp(t *testing.T) {
	req := require.New(t)

	adjuster, err := NewAdjuster(model.KeywordRules{})
	req.NoError(err)
	req.Zero(adjuster.Adjust("なんでも来い LIVE 切り抜き"))
}
