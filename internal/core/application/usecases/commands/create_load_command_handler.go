package commands

import (
	"context"
	"log/slog"

	"loadflow/internal/core/domain/model/counter"
	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/core/ports"
)

// CreateLoadResponse carries the identifiers the caller needs after a
// successful creation.
type CreateLoadResponse struct {
	LoadID        kernel.UUID
	InvoiceNumber string
}

// CreateLoadCommandHandler handles the business logic for load creation:
// invoice number allocation and initial persistence happen in one
// transaction, so a failed create never consumes a number.
type CreateLoadCommandHandler struct {
	uowFactory UoWFactory
	audit      ports.AuditRecorder
	logger     *slog.Logger
}

// NewCreateLoadCommandHandler creates a handler for load creation.
func NewCreateLoadCommandHandler(
	uowFactory UoWFactory, audit ports.AuditRecorder, logger *slog.Logger,
) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger.With("component", "create_load_handler"),
	}
}

// Handle processes the load creation command. The load starts at cursor 0
// with the freshly allocated invoice number embedded in its payload.
func (h *CreateLoadCommandHandler) Handle(
	ctx context.Context, cmd CreateLoadCommand,
) (CreateLoadResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateLoadResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateLoadResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cnt, err := uow.CounterRepository().Allocate(ctx, cmd.OrgID())
	if err != nil {
		return CreateLoadResponse{}, err
	}
	invoiceNumber := counter.FormatInvoiceNumber(cnt.LastNumber())

	aggregate, err := load.NewLoad(cmd.LoadID(), cmd.OrgID(), cmd.Stops(), invoiceNumber, cmd.Rate())
	if err != nil {
		return CreateLoadResponse{}, err
	}

	if err = uow.LoadRepository().Add(ctx, aggregate); err != nil {
		return CreateLoadResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateLoadResponse{}, err
	}

	recordAudit(ctx, h.audit, h.logger, "create",
		aggregate.ID(), aggregate.OrgID(), cmd.PerformedBy(), nil, loadSnapshot(aggregate))

	return CreateLoadResponse{
		LoadID:        aggregate.ID(),
		InvoiceNumber: invoiceNumber,
	}, nil
}
