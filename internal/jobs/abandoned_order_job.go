package jobs

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

const abandonedOrderReason = "abandoned: payment not received in time"

// AbandonedOrderJob manages the scheduled cleanup of abandoned orders.
// Runs every minute to cancel pending orders that never received a payment
// within the configured age limit.
type AbandonedOrderJob struct {
	ordersHandler queries.GetOrdersByStatusQueryHandler
	cancelHandler commands.CancelOrderCommandHandler
	maxAge        time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewAbandonedOrderJob creates a new job for cancelling abandoned orders.
// maxAge is how long an order may stay pending before it is swept.
func NewAbandonedOrderJob(
	ordersHandler queries.GetOrdersByStatusQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *AbandonedOrderJob {
	return &AbandonedOrderJob{
		ordersHandler: ordersHandler,
		cancelHandler: cancelHandler,
		maxAge:        maxAge,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "abandoned_order_job"),
	}
}

// Start begins the abandoned order job to run every minute.
func (j *AbandonedOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Abandoned order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order job started (running every minute)",
		"maxAge", j.maxAge.String())
	return nil
}

// Stop stops the abandoned order job.
func (j *AbandonedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order job stopped")
}

// sweep cancels every pending order created before the age cutoff.
// Orders arrive oldest first, so the loop stops at the first order
// that is still within the allowed age.
func (j *AbandonedOrderJob) sweep(ctx context.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
	if err != nil {
		return err
	}

	pending, err := j.ordersHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.maxAge)
	for _, candidate := range pending {
		if candidate.CreatedAt.After(cutoff) {
			break
		}

		cmd, err := commands.NewCancelOrderCommand(candidate.ID, abandonedOrderReason)
		if err != nil {
			return err
		}

		if _, err := j.cancelHandler.Handle(ctx, cmd); err != nil {
			// Keep sweeping: one stuck order must not block the rest.
			j.logger.ErrorContext(ctx, "Failed to cancel abandoned order",
				"orderID", candidate.ID.String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Abandoned order cancelled",
			"orderID", candidate.ID.String(), "createdAt", candidate.CreatedAt)
	}

	return nil
}
