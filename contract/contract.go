package contract

import (
	"context"
	"reflect"

	"title-lab/classifier"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// PredictionSink receives finished predictions from the classify pool.
// Implementations must tolerate out-of-order delivery: per-title work is
// parallel and only the sink re-establishes input order.
type PredictionSink interface {
	Consume(ctx context.Context, p classifier.Prediction) error
}
