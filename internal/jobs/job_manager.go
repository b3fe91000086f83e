package jobs

import (
	"fmt"
	"log/slog"

	"loadflow/internal/adapters/out/audit"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	auditFlushJob *AuditFlushJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	auditRecorder *audit.BufferedRecorder,
	auditFlushSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		auditFlushJob: NewAuditFlushJob(auditRecorder, auditFlushSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.auditFlushJob.Start(); err != nil {
		return fmt.Errorf("failed to start audit flush job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.auditFlushJob.Stop()
}
