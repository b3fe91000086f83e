package ports

import (
	"context"
	"time"

	"loadflow/internal/core/domain/model/kernel"
)

// AuditEntry is a before/after snapshot request emitted whenever a load's
// progress, invoice timestamp, or payment timestamp changes. Storage of the
// entries belongs to the audit collaborator, not to this core.
type AuditEntry struct {
	Table       string
	RecordID    kernel.UUID
	Action      string
	OrgID       kernel.UUID
	Before      map[string]any
	After       map[string]any
	PerformedBy kernel.UUID
	CreatedAt   time.Time
}

// AuditRecorder receives audit entries after a state transition has
// committed. Recording is best-effort: a failure here never rolls back or
// fails the primary operation.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry) error
}
