// Package jobs provides scheduled background tasks for the load lifecycle
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that must stay off the request path.
//
// # Available Jobs
//
// 1. AuditFlushJob - Drains the buffered audit recorder into durable storage
// on a configurable schedule.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(auditRecorder, "*/5 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed flush leaves the entries queued; the next scheduled run retries
// them. Stopping the manager performs one final flush.
package jobs
