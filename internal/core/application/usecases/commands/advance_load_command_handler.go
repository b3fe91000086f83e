package commands

import (
	"context"
	"log/slog"

	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/core/ports"
)

// ProgressResponse is the result of a progress mutation: the new cursor and
// its coarse status projection.
type ProgressResponse struct {
	Cursor int
	Status load.Status
}

// AdvanceLoadCommandHandler moves a load one step forward. The load row is
// locked for the transaction, so two racing requests (a double-clicked
// advance button) each observe the other's result instead of losing an
// update.
type AdvanceLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	audit      ports.AuditRecorder
	logger     *slog.Logger
}

// NewAdvanceLoadCommandHandler creates a handler for advance operations.
func NewAdvanceLoadCommandHandler(
	uowFactory LoadUoWFactory, audit ports.AuditRecorder, logger *slog.Logger,
) AdvanceLoadCommandHandler {
	return AdvanceLoadCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger.With("component", "advance_load_handler"),
	}
}

// Handle processes the advance command. Advancing at the terminal step is a
// no-op and still succeeds.
func (h *AdvanceLoadCommandHandler) Handle(
	ctx context.Context, cmd AdvanceLoadCommand,
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
	if err = aggregate.Advance(); err != nil {
		return ProgressResponse{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return ProgressResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProgressResponse{}, err
	}

	recordAudit(ctx, h.audit, h.logger, "progress_advance",
		aggregate.ID(), aggregate.OrgID(), cmd.PerformedBy(), before, loadSnapshot(aggregate))

	return ProgressResponse{
		Cursor: aggregate.Progress(),
		Status: aggregate.Status(),
	}, nil
}
