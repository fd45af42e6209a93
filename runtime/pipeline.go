// Package runtime drives batch inference: it fans titles out to a
// supervised pool of classify workers and gathers the predictions back in
// input order. It orchestrates, it holds no scoring logic of its own.
package runtime

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"title-lab/classifier"
	"title-lab/contract"
	"title-lab/errors"
	"title-lab/runtime/workers"
)

// Pipeline owns the channels and the worker pool for one process. Build it
// once; Classify can be called for successive batches.
type Pipeline struct {
	engine            *classifier.Engine
	numberOfWorkers   int
	bufferSize        int
	telemetryInterval time.Duration
	sinks             []contract.PredictionSink
	log               *slog.Logger
}

func NewPipeline(
	engine *classifier.Engine,
	numberOfWorkers, bufferSize int,
	telemetryInterval time.Duration,
	log *slog.Logger,
) *Pipeline {
	if numberOfWorkers < 1 {
		numberOfWorkers = 1
	}
	return &Pipeline{
		engine:            engine,
		numberOfWorkers:   numberOfWorkers,
		bufferSize:        bufferSize,
		telemetryInterval: telemetryInterval,
		log:               log,
	}
}

// RegisterSinks attaches consumers that receive every prediction as it
// lands (storage, indexing). Sinks run on the collector goroutine, in
// completion order, not input order.
func (p *Pipeline) RegisterSinks(sinks ...contract.PredictionSink) {
	p.sinks = append(p.sinks, sinks...)
}

// Classify scores a batch. Per-title work is spread across the pool; the
// returned slice is aligned with the input. Cancelling the context stops
// feeding further titles; predictions already produced are returned and
// stay valid. When the pool loses jobs without a cancellation the result
// is compacted the same way and ErrIncompleteBatch is returned.
func (p *Pipeline) Classify(ctx context.Context, titles []string) ([]classifier.Prediction, error) {
	jobs := make(chan workers.TitleJob, p.bufferSize)
	results := make(chan workers.TitleResult, p.bufferSize)
	var processed atomic.Int64

	sup := workers.NewSupervisor(p.log)
	for i := 0; i < p.numberOfWorkers; i++ {
		sup.Add(workers.NewClassifyWorker(p.engine, jobs, results, p.log))
	}
	if p.telemetryInterval > 0 {
		sup.Add(workers.NewTelemetryWorker(p.log, p.telemetryInterval, &processed, len(titles)))
	}

	go func() {
		defer close(jobs)
		for i, title := range titles {
			select {
			case <-ctx.Done():
				p.log.Debug("Cancelled, no further titles issued")
				return
			case jobs <- workers.TitleJob{Index: i, Title: title}:
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		sup.Run(ctx)
	}()

	predictions := make([]classifier.Prediction, len(titles))
	seen := make([]bool, len(titles))
	collected := 0

collect:
	for collected < len(titles) {
		select {
		case result := <-results:
			predictions[result.Index] = result.Prediction
			seen[result.Index] = true
			collected++
			processed.Store(int64(collected))
			p.consume(ctx, result.Prediction)
		case <-done:
			// pool stopped early (cancellation); drain what is buffered
			for {
				select {
				case result := <-results:
					predictions[result.Index] = result.Prediction
					seen[result.Index] = true
					collected++
					p.consume(ctx, result.Prediction)
				default:
					break collect
				}
			}
		}
	}
	sup.Stop()
	<-done

	// Never hand back slots no worker wrote: a job consumed by a crashing
	// worker is gone, and a zero-value Prediction in its place would flow
	// into the CSVs and the store as a real result.
	if collected < len(titles) {
		if err := ctx.Err(); err != nil {
			return compact(predictions, seen), err
		}
		return compact(predictions, seen), errors.ErrIncompleteBatch
	}
	return predictions, nil
}

func (p *Pipeline) consume(ctx context.Context, prediction classifier.Prediction) {
	for _, sink := range p.sinks {
		if err := sink.Consume(ctx, prediction); err != nil {
			p.log.Error("Sink rejected prediction", "title", prediction.Title, "error", err)
		}
	}
}

// compact keeps only the predictions that actually completed, preserving
// input order.
func compact(predictions []classifier.Prediction, seen []bool) []classifier.Prediction {
	out := make([]classifier.Prediction, 0, len(predictions))
	for i, prediction := range predictions {
		if seen[i] {
			out = append(out, prediction)
		}
	}
	return out
}
