package workers

import (
	"context"
	"log/slog"

	"title-lab/classifier"
	"title-lab/contract"
)

var _ contract.Worker = (*ClassifyWorker)(nil)

// TitleJob is one title to score, tagged with its position in the batch so
// the collector can restore input order after the parallel fan-out.
type TitleJob struct {
	Index int
	Title string
}

type TitleResult struct {
	Index      int
	Prediction classifier.Prediction
}

// ClassifyWorker drains the job channel through the inference engine. Each
// prediction is a pure function of the title and the immutable engine, so
// any number of these workers can run side by side.
type ClassifyWorker struct {
	engine  *classifier.Engine
	jobs    chan TitleJob
	results chan TitleResult
	log     *slog.Logger
}

func NewClassifyWorker(
	engine *classifier.Engine,
	jobs chan TitleJob,
	results chan TitleResult,
	log *slog.Logger) *ClassifyWorker {
	return &ClassifyWorker{
		engine:  engine,
		jobs:    jobs,
		results: results,
		log:     log,
	}
}

func (w *ClassifyWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			result := TitleResult{
				Index:      job.Index,
				Prediction: w.engine.Predict(job.Title),
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.results <- result:
			}
		}
	}
}
