package commands

import (
	"context"
	"log/slog"

	"loadflow/internal/core/ports"
)

// SetPaidAtCommandHandler records when a load was paid. Valid only in the
// invoiced/paid cursor window; the domain rejects anything earlier.
type SetPaidAtCommandHandler struct {
	uowFactory LoadUoWFactory
	audit      ports.AuditRecorder
	logger     *slog.Logger
}

// NewSetPaidAtCommandHandler creates a handler for paid-at updates.
func NewSetPaidAtCommandHandler(
	uowFactory LoadUoWFactory, audit ports.AuditRecorder, logger *slog.Logger,
) SetPaidAtCommandHandler {
	return SetPaidAtCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger.With("component", "set_paid_at_handler"),
	}
}

// Handle processes the paid-at update.
func (h *SetPaidAtCommandHandler) Handle(ctx context.Context, cmd SetPaidAtCommand) error {
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
	if err = aggregate.SetPaidAt(cmd.PaidAt()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, h.logger, "set_paid_at",
		aggregate.ID(), aggregate.OrgID(), cmd.PerformedBy(), before, loadSnapshot(aggregate))

	return nil
}
