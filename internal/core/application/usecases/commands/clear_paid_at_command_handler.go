package commands

import (
	"context"
	"log/slog"

	"loadflow/internal/core/ports"
)

// ClearPaidAtCommandHandler removes a load's paid-at timestamp. Allowed at
// any cursor value; the cursor itself is untouched.
type ClearPaidAtCommandHandler struct {
	uowFactory LoadUoWFactory
	audit      ports.AuditRecorder
	logger     *slog.Logger
}

// NewClearPaidAtCommandHandler creates a handler for paid-at corrections.
func NewClearPaidAtCommandHandler(
	uowFactory LoadUoWFactory, audit ports.AuditRecorder, logger *slog.Logger,
) ClearPaidAtCommandHandler {
	return ClearPaidAtCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger.With("component", "clear_paid_at_handler"),
	}
}

// Handle processes the paid-at correction.
func (h *ClearPaidAtCommandHandler) Handle(ctx context.Context, cmd ClearPaidAtCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	before := loadSnapshot(aggregate)
	if err = aggregate.ClearPaidAt(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, h.logger, "clear_paid_at",
		aggregate.ID(), aggregate.OrgID(), cmd.PerformedBy(), before, loadSnapshot(aggregate))

	return nil
}
