package commands

import (
	"errors"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/guard"
)

var ErrRetreatLoadCommandIsNotConstructed = errors.New(
	"RetreatLoadCommand must be created via NewRetreatLoadCommand constructor",
)

// RetreatLoadCommand requests moving a load one step back in its workflow
// sequence, the correction path for an accidental advance.
type RetreatLoadCommand struct { //nolint:recvcheck //using for validation
	loadID      kernel.UUID
	performedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetreatLoadCommand creates a command to retract a load's progress.
func NewRetreatLoadCommand(loadID, performedBy kernel.UUID) (RetreatLoadCommand, error) {
	if err := errors.Join(loadID.Validate(), performedBy.Validate()); err != nil {
		return RetreatLoadCommand{}, err
	}

	return RetreatLoadCommand{
		loadID:      loadID,
		performedBy: performedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatLoadCommand) Validate() error {
	return c.guard.Validate(ErrRetreatLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c RetreatLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// PerformedBy returns the acting user's identifier for audit.
func (c RetreatLoadCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}
