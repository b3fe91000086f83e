package jobs

import (
	"context"
	"log/slog"

	"loadflow/internal/adapters/out/audit"

	"github.com/robfig/cron/v3"
)

// AuditFlushJob periodically drains the buffered audit recorder into its
// sink. Flushing off the request path keeps audit storage latency away
// from the primary write operations.
type AuditFlushJob struct {
	recorder *audit.BufferedRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAuditFlushJob creates a job flushing the audit buffer on the given
// cron schedule (with a seconds field, e.g. "*/5 * * * * *").
func NewAuditFlushJob(recorder *audit.BufferedRecorder, schedule string, logger *slog.Logger) *AuditFlushJob {
	return &AuditFlushJob{
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "audit_flush_job"),
	}
}

// Start begins the periodic flush.
func (j *AuditFlushJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.recorder.Flush(ctx); err != nil {
			// Entries stay queued; the next run retries them.
			j.logger.ErrorContext(ctx, "Audit flush failed",
				"error", err, "pending", j.recorder.Pending())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit flush job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and performs one final flush so a clean shutdown does
// not strand queued entries.
func (j *AuditFlushJob) Stop() {
	j.cron.Stop()

	ctx := context.Background()
	if err := j.recorder.Flush(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Final audit flush failed",
			"error", err, "pending", j.recorder.Pending())
	}
	j.logger.InfoContext(ctx, "Audit flush job stopped")
}
