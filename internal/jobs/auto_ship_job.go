package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoShipJob runs the scheduled batch sweep over auto-ship eligible orders.
// The schedule is seller-configurable; the default runs every 15 minutes.
type AutoShipJob struct {
	handler  commands.AutoShipCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutoShipJob creates the batch shipping job. The schedule is a standard
// five-field cron expression.
func NewAutoShipJob(
	handler commands.AutoShipCommandHandler, schedule string, logger *slog.Logger,
) *AutoShipJob {
	return &AutoShipJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "auto_ship_job"),
	}
}

// Start begins the scheduled sweeps.
func (j *AutoShipJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewScheduledAutoShipCommand()

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// A seller who never configured the carrier is not a system fault.
			if errors.Is(handleErr, commands.ErrCarrierNotConfigured) ||
				errors.Is(handleErr, commands.ErrDefaultCourierNotConfigured) {
				j.logger.InfoContext(ctx, "Auto-ship sweep skipped", "reason", handleErr)
				return
			}
			j.logger.ErrorContext(ctx, "Auto-ship sweep failed", "error", handleErr)
			return
		}

		if result.Skipped {
			return
		}

		j.logger.InfoContext(ctx, "Auto-ship sweep finished",
			"eligible", result.Eligible,
			"succeeded", result.Succeeded,
			"failed", result.Failed,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-ship job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled sweeps.
func (j *AutoShipJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-ship job stopped")
}
