package normalizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	req := require.New(t)
	n := New(DefaultRules())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Fullwidth letters fold to lowercase ASCII",
			input:    "ＡＢＣ",
			expected: "abc",
		},
		{
			name:     "Repeated emphasis collapses to one occurrence",
			input:    "すごい!!!!!w",
			expected: "すごい!w",
		},
		{
			name:     "Hashtag and bracket tag removal",
			input:    "#shorts 今日の飯 [公式]",
			expected: "今日の飯",
		},
		{
			name:     "Episode markers vol and no",
			input:    "冒険記 vol.3 と no.5 のまとめ",
			expected: "冒険記 と のまとめ",
		},
		{
			name:     "Spaced hash number survives hashtag removal but not episode removal",
			input:    "実況プレイ # 12",
			expected: "実況プレイ",
		},
		{
			name:     "Corner brackets and angle brackets deleted without pairing",
			input:    "【新作】タイトル<未完】",
			expected: "新作タイトル未完",
		},
		{
			name:     "Emoji runs become a single space",
			input:    "歌ってみた🎵🎵🔥",
			expected: "歌ってみた",
		},
		{
			name:     "Wave dash runs collapse",
			input:    "雑談〜〜〜配信",
			expected: "雑談〜配信",
		},
		{
			name:     "Repeated characters outside the emphasis set are kept",
			input:    "ぎゃああああ",
			expected: "ぎゃああああ",
		},
		{
			name:     "Whitespace runs collapse and edges are stripped",
			input:    "  朝の　ニュース  ",
			expected: "朝の ニュース",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Fullwidth exclamation folds then collapses",
			input:    "行くぞ！！！",
			expected: "行くぞ!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, n.Normalize(tt.input))
		})
	}
}

// Normalization must be idempotent: feeding its own output back in yields
// the same string. A second pass that changes anything would mean dataset
// rows and inference inputs drift apart.
func TestNormalizer_Idempotence(t *testing.T) {
	req := require.New(t)
	n := New(DefaultRules())

	samples := []string{
		"ＡＢＣ",
		"すごい!!!!!w",
		"#shorts 今日の飯 [公式]",
		"【公式】ライブ配信〜〜第3回〜〜",
		"vol.12 ネタバラシ # 4 🎉🎉",
		"ｶﾀｶﾅ半角とＺＥＮＫＡＫＵ",
		"w w www !!!??",
		"",
	}

	for _, s := range samples {
		once := n.Normalize(s)
		req.Equal(once, n.Normalize(once), "sample %q", s)
	}
}
