package dataset

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"title-lab/errors"
	"title-lab/normalizer"
)

func writeDump(t *testing.T, name string, titles []string) string {
	t.Helper()
	payload := `[{"results": [`
	for i, title := range titles {
		if i > 0 {
			payload += ","
		}
		payload += `{"title": ` + jsonString(title) + `}`
	}
	payload += `]}]`
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func jsonString(s string) string {
	out := `"`
	for _, r := range s {
		if r == '"' || r == '\\' {
			out += `\`
		}
		out += string(r)
	}
	return out + `"`
}

func TestBuilder_BuildLabeled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	truePath := writeDump(t, "status1.txt", []string{
		"歌ってみたシリーズ第一弾",
		"歌ってみたシリーズ第二弾", // 1 edit away, collapses onto the first
	})
	falsePath := writeDump(t, "status2.txt", []string{
		"今日のニュースまとめ",
		"歌ってみたシリーズ第三弾", // near-duplicate of a positive row, dropped
	})

	builder := NewBuilder(NewSource(normalizer.New(normalizer.DefaultRules())), DefaultDedupThreshold, log)
	rows, err := builder.BuildLabeled(truePath, falsePath)
	req.NoError(err)
	req.Len(rows, 2)
	req.Equal("歌ってみたシリーズ第一弾", rows[0].Title)
	req.Equal(LabelTrue, rows[0].Label)
	req.Equal("今日のニュースまとめ", rows[1].Title)
	req.Equal(LabelFalse, rows[1].Label)
}

func TestBuilder_BuildLabeled_EmptyDumps(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	truePath := writeDump(t, "status1.txt", nil)
	falsePath := writeDump(t, "status2.txt", nil)

	builder := NewBuilder(NewSource(normalizer.New(normalizer.DefaultRules())), DefaultDedupThreshold, log)
	_, err := builder.BuildLabeled(truePath, falsePath)
	req.ErrorIs(err, errors.ErrEmptyDataset)
}

func TestBuilder_BuildUnlabeled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	pendingPath := writeDump(t, "status0.txt", []string{
		"#shorts 今日の飯 [公式]",
		"今日の飯",   // identical after normalization, dropped
		"新曲を出しました",
	})

	builder := NewBuilder(NewSource(normalizer.New(normalizer.DefaultRules())), DefaultDedupThreshold, log)
	rows, err := builder.BuildUnlabeled(pendingPath)
	req.NoError(err)
	req.Len(rows, 2)
	req.Equal("#shorts 今日の飯 [公式]", rows[0].Title)
	req.Equal("今日の飯", rows[0].NormalizedTitle)
	req.Equal("新曲を出しました", rows[1].Title)
}

func TestLanguageTally(t *testing.T) {
	req := require.New(t)

	rows := []Row{
		{NormalizedTitle: "今日の配信はゲーム実況です、みんな見に来てね"},
		{NormalizedTitle: "新しい曲を作って歌ってみました、感想ください"},
		{NormalizedTitle: "the quick brown fox jumps over the lazy dog"},
	}
	tally := LanguageTally(rows)

	total := 0
	for _, count := range tally {
		total += count
	}
	req.Equal(len(rows), total)
	req.GreaterOrEqual(tally["ja"], 1)
}
