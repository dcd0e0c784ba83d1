package jobs

import (
	"context"
	"errors"
	"log/slog"

	"sharebite/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NgoAssignmentJob manages the scheduled routing of unassigned posts.
// Posts left behind by an empty directory or a reject are picked up on the
// configured cadence.
type NgoAssignmentJob struct {
	handler  commands.AssignPendingPostsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNgoAssignmentJob creates a new job for routing unassigned posts.
// schedule is a cron spec with a seconds field; an empty schedule disables
// the job.
func NewNgoAssignmentJob(
	handler commands.AssignPendingPostsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *NgoAssignmentJob {
	return &NgoAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "ngo_assignment_job"),
	}
}

// Start begins the assignment sweep. With an empty schedule the job stays
// idle.
func (j *NgoAssignmentJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "NGO assignment job disabled (no schedule configured)")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAssignPendingPostsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build sweep command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(handleErr, commands.ErrNoPendingPosts) &&
				!errors.Is(handleErr, commands.ErrNoNgosRegistered) {
				j.logger.ErrorContext(ctx, "NGO assignment sweep failed", "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "NGO assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the assignment sweep.
func (j *NgoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "NGO assignment job stopped")
}
