package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"title-lab/classifier"
	"title-lab/keywords"
	"title-lab/model"
	"title-lab/normalizer"
)

func classifyEngine(t *testing.T) *classifier.Engine {
	t.Helper()
	artifact := &model.Artifact{
		Features:  map[string]model.Feature{"ab": {Idf: 1.0, Coef: 2.0}},
		Intercept: -0.5,
		NgramMin:  2,
		NgramMax:  2,
	}
	adjuster, err := keywords.NewAdjuster(model.KeywordRules{})
	require.NoError(t, err)
	return classifier.NewEngine(artifact, normalizer.New(normalizer.DefaultRules()), adjuster, 0.5)
}

func TestClassifyWorker_DrainsJobsAndStopsOnClose(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	jobs := make(chan TitleJob, 4)
	results := make(chan TitleResult, 4)
	worker := NewClassifyWorker(classifyEngine(t), jobs, results, log)

	jobs <- TitleJob{Index: 0, Title: "ab"}
	jobs <- TitleJob{Index: 1, Title: "zz"}
	close(jobs)

	req.NoError(worker.Run(context.Background()))

	first := <-results
	second := <-results
	req.Equal(0, first.Index)
	req.Equal("ab", first.Prediction.Title)
	req.Equal(1, first.Prediction.Label)
	req.Equal(1, second.Index)
	req.Equal(0, second.Prediction.Label)
}

func TestClassifyWorker_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	jobs := make(chan TitleJob)
	results := make(chan TitleResult)
	worker := NewClassifyWorker(classifyEngine(t), jobs, results, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("worker should stop when the context is cancelled")
	}
}
