package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrEmptyDataset    = fmt.Errorf("no titles have been found")
	ErrNoArrayPayload  = fmt.Errorf("no JSON array found in dump")
	ErrIncompleteBatch = fmt.Errorf("batch lost predictions to crashed workers")
)
