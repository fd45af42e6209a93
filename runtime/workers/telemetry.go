package workers

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"

	"title-lab/contract"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

// TelemetryWorker periodically reports batch progress together with process
// CPU and memory. Useful on large batches where the classifier runs for
// minutes; it stops with the context like every other worker.
type TelemetryWorker struct {
	log       *slog.Logger
	interval  time.Duration
	processed *atomic.Int64
	total     int
}

func NewTelemetryWorker(log *slog.Logger, interval time.Duration, processed *atomic.Int64, total int) *TelemetryWorker {
	return &TelemetryWorker{
		log:       log,
		interval:  interval,
		processed: processed,
		total:     total,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping telemetry worker")
			return nil
		case <-ticker.C:
			cpu, _ := p.CPUPercent()
			var rssMb uint64
			if mem, err := p.MemoryInfo(); err == nil {
				rssMb = mem.RSS / (1024 * 1024)
			}
			w.log.Info("Batch progress",
				"processed", w.processed.Load(),
				"total", w.total,
				"cpu_percent", cpu,
				"rss_mb", rssMb)
		}
	}
}
