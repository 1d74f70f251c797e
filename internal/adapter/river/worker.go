package river

import (
	"context"
	"log/slog"

	"github.com/riverqueue/river"
)

// DealEventWorker processes deal event jobs from the River queue. For now it
// logs the event; future versions will dispatch to notification systems or
// downstream indexers.
type DealEventWorker struct {
	river.WorkerDefaults[DealJobArgs]
}

// Work processes a single deal event job.
func (w *DealEventWorker) Work(ctx context.Context, job *river.Job[DealJobArgs]) error {
	slog.InfoContext(ctx, "processing deal event",
		"event", job.Args.Event,
		"property_id", job.Args.PropertyID,
		"request_id", job.Args.RequestID,
		"contract_id", job.Args.ContractID,
		"job_id", job.ID,
		"attempt", job.Attempt,
	)
	return nil
}
