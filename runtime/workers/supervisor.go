package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"title-lab/contract"
	"title-lab/errors"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

// Supervisor runs the scoring pool: every worker in its own goroutine,
// panics recovered and the worker restarted, clean finishes left alone.
// One crashing worker never takes the batch down with it.
//
// Stop is safe from any goroutine, before or after Run has started: it
// closes a stop channel instead of touching state Run owns.
type Supervisor struct {
	wg      *sync.WaitGroup
	log     *slog.Logger
	workers []contract.Worker
	stop    chan struct{}
	once    sync.Once
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{
		wg:   &sync.WaitGroup{},
		log:  log,
		stop: make(chan struct{}),
	}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run starts every registered worker and blocks until all of them have
// finished. The supervisor derives its own cancellation from the parent
// context: the parent cancelling stops the pool, Stop cancels only the
// pool and leaves the parent alone.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.stop:
			cancel()
		case <-supervisedCtx.Done():
		}
	}()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Start supervises one worker. A nil return means the worker is done for
// good and is never restarted; a panic or error puts it back in rotation
// after a short pause, unless the context has been cancelled meanwhile.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info("Stopping worker", "name", workerName)
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				s.log.Info("Worker finished", "name", workerName)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				// cancellation beats the restart delay
				return
			case <-time.After(waitTimeBeforeRestart):
			}
		}
	}()
}

// Stop asks the pool to shut down; Run unblocks once every worker has
// observed the cancellation and returned. Idempotent, and effective even
// when it wins the race with Run starting.
func (s *Supervisor) Stop() {
	s.once.Do(func() { close(s.stop) })
}
