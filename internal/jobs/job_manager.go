package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	abandonedOrderJob *AbandonedOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up the job execution.
func NewJobManager(
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	abandonedOrderMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		abandonedOrderJob: NewAbandonedOrderJob(
			ordersByStatusHandler, cancelOrderHandler, abandonedOrderMaxAge, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.abandonedOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start abandoned order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.abandonedOrderJob.Stop()
}
