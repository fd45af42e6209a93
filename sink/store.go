// Package sink adapts prediction consumers to the pipeline's sink contract.
package sink

import (
	"context"
	"time"

	"title-lab/classifier"
	"title-lab/contract"
	"title-lab/repositories"
)

var _ contract.PredictionSink = (*StoreSink)(nil)

// StoreSink persists every prediction flowing out of the pipeline. Records
// are stamped at consume time; call Flush once the batch is done to make
// them searchable.
type StoreSink struct {
	repo repositories.IPredictionRepository
	now  func() time.Time
}

func NewStoreSink(repo repositories.IPredictionRepository) *StoreSink {
	return &StoreSink{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *StoreSink) Consume(_ context.Context, p classifier.Prediction) error {
	return s.repo.Store(repositories.NewPredictionRecord(p, s.now()))
}

func (s *StoreSink) Flush() error {
	return s.repo.Flush()
}
