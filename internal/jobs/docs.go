// Package jobs provides scheduled background tasks for the donation
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NgoAssignmentJob - Periodically routes posts that are still unassigned
// to an NGO. Covers posts created while the directory was empty and posts
// returned to the pool by a reject.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface.
// The sweep cadence comes from configuration; an empty schedule disables it:
//
//	jobManager := jobs.NewJobManager(assignPendingPostsHandler, "*/15 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment job ignores expected business errors (no pending posts, no
// NGOs registered) and logs everything else.
package jobs
