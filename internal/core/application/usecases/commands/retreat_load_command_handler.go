package commands

import (
	"context"
	"log/slog"

	"loadflow/internal/core/ports"
)

// RetreatLoadCommandHandler moves a load one step back, with the same
// row-locked read-modify-write discipline as the advance handler.
type RetreatLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	audit      ports.AuditRecorder
	logger     *slog.Logger
}

// NewRetreatLoadCommandHandler creates a handler for retreat operations.
func NewRetreatLoadCommandHandler(
	uowFactory LoadUoWFactory, audit ports.AuditRecorder, logger *slog.Logger,
) RetreatLoadCommandHandler {
	return RetreatLoadCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger.With("component", "retreat_load_handler"),
	}
}

// Handle processes the retreat command. Retreating at cursor 0 is a no-op
// and still succeeds.
func (h *RetreatLoadCommandHandler) Handle(
	ctx context.Context, cmd RetreatLoadCommand,
) (ProgressResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ProgressResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProgressResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return ProgressResponse{}, err
	}

	before := loadSnapshot(aggregate)
	if err = aggregate.Retreat(); err != nil {
		return ProgressResponse{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return ProgressResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProgressResponse{}, err
	}

	recordAudit(ctx, h.audit, h.logger, "progress_retreat",
		aggregate.ID(), aggregate.OrgID(), cmd.PerformedBy(), before, loadSnapshot(aggregate))

	return ProgressResponse{
		Cursor: aggregate.Progress(),
		Status: aggregate.Status(),
	}, nil
}
