package jobs

import (
	"context"
	"log/slog"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/observability"

	"github.com/robfig/cron/v3"
)

// PickupExpiryJob periodically returns stale pickup claims to the unclaimed
// pool. The same sweep runs lazily inside the courier-facing handlers; the
// job guarantees expired claims free up even when no courier is active.
type PickupExpiryJob struct {
	handler commands.ReleaseExpiredPickupsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupExpiryJob creates a new job for releasing expired pickup claims.
func NewPickupExpiryJob(handler commands.ReleaseExpiredPickupsCommandHandler, logger *slog.Logger) *PickupExpiryJob {
	return &PickupExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pickup_expiry_job"),
	}
}

// Start begins the expiry sweep, running once a minute.
func (j *PickupExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseExpiredPickupsCommand()

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pickup expiry sweep failed", "error", err)
			return
		}

		if released > 0 {
			observability.PickupsExpiredTotal.Add(float64(released))
			j.logger.InfoContext(ctx, "Released expired pickup claims", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup expiry job started (running every minute)")
	return nil
}

// Stop stops the pickup expiry job.
func (j *PickupExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup expiry job stopped")
}
