package commands

import (
	"errors"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/guard"
)

var ErrAdvanceLoadCommandIsNotConstructed = errors.New(
	"AdvanceLoadCommand must be created via NewAdvanceLoadCommand constructor",
)

// AdvanceLoadCommand requests moving a load one step forward in its
// workflow sequence.
type AdvanceLoadCommand struct { //nolint:recvcheck //using for validation
	loadID      kernel.UUID
	performedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceLoadCommand creates a command to advance a load's progress.
func NewAdvanceLoadCommand(loadID, performedBy kernel.UUID) (AdvanceLoadCommand, error) {
	if err := errors.Join(loadID.Validate(), performedBy.Validate()); err != nil {
		return AdvanceLoadCommand{}, err
	}

	return AdvanceLoadCommand{
		loadID:      loadID,
		performedBy: performedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceLoadCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c AdvanceLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// PerformedBy returns the acting user's identifier for audit.
func (c AdvanceLoadCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}
