package jobs

import (
	"fmt"
	"log/slog"

	"sharebite/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ngoAssignmentJob *NgoAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
// sweepSchedule is the cron spec for the re-assignment sweep; empty disables
// it.
func NewJobManager(
	assignPendingPostsHandler commands.AssignPendingPostsCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ngoAssignmentJob: NewNgoAssignmentJob(assignPendingPostsHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ngoAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start NGO assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ngoAssignmentJob.Stop()
}
