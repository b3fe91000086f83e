package commands

import (
	"context"
	"log/slog"
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/core/ports"
)

// loadsTable is the table name reported in audit entries for load mutations.
const loadsTable = "loads"

// loadSnapshot captures the audited view of a load's mutable state.
// Status is included for the audit reader's benefit even though it is
// derived; the cursor remains the source of truth.
func loadSnapshot(l *load.Load) map[string]any {
	snap := map[string]any{
		"progress":    l.Progress(),
		"load_status": l.Status().String(),
	}
	if at := l.InvoicedAt(); at != nil {
		snap["invoiced_at"] = at.UTC().Format(time.RFC3339)
	}
	if at := l.PaidAt(); at != nil {
		snap["paid_at"] = at.UTC().Format(time.RFC3339)
	}
	return snap
}

// recordAudit emits an audit entry after a committed transition. Audit is
// best-effort logging, not part of the invariant set: failures are logged
// and swallowed so they never fail the primary operation.
func recordAudit(
	ctx context.Context,
	recorder ports.AuditRecorder,
	logger *slog.Logger,
	action string,
	recordID, orgID, performedBy kernel.UUID,
	before, after map[string]any,
) {
	entry := ports.AuditEntry{
		Table:       loadsTable,
		RecordID:    recordID,
		Action:      action,
		OrgID:       orgID,
		Before:      before,
		After:       after,
		PerformedBy: performedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := recorder.Record(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "audit record failed",
			"action", action, "record_id", recordID.String(), "error", err)
	}
}
