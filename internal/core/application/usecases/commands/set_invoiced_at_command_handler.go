package commands

import (
	"context"
	"log/slog"

	"loadflow/internal/core/ports"
)

// SetInvoicedAtCommandHandler records when a load was invoiced. The domain
// rejects timestamps set outside the delivered/invoiced cursor window, so a
// stray request cannot mark an in-transit load as invoiced.
type SetInvoicedAtCommandHandler struct {
	uowFactory LoadUoWFactory
	audit      ports.AuditRecorder
	logger     *slog.Logger
}

// NewSetInvoicedAtCommandHandler creates a handler for invoiced-at updates.
func NewSetInvoicedAtCommandHandler(
	uowFactory LoadUoWFactory, audit ports.AuditRecorder, logger *slog.Logger,
) SetInvoicedAtCommandHandler {
	return SetInvoicedAtCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger.With("component", "set_invoiced_at_handler"),
	}
}

// Handle processes the invoiced-at update.
func (h *SetInvoicedAtCommandHandler) Handle(ctx context.Context, cmd SetInvoicedAtCommand) error {
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
	if err = aggregate.SetInvoicedAt(cmd.InvoicedAt()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, h.logger, "set_invoiced_at",
		aggregate.ID(), aggregate.OrgID(), cmd.PerformedBy(), before, loadSnapshot(aggregate))

	return nil
}
