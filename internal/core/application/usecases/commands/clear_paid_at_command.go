package commands

import (
	"errors"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/guard"
)

var ErrClearPaidAtCommandIsNotConstructed = errors.New(
	"ClearPaidAtCommand must be created via NewClearPaidAtCommand constructor",
)

// ClearPaidAtCommand requests removing a load's paid-at timestamp, the
// correction path for a payment recorded in error.
type ClearPaidAtCommand struct { //nolint:recvcheck //using for validation
	loadID      kernel.UUID
	performedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearPaidAtCommand creates a command to clear a load's paid-at timestamp.
func NewClearPaidAtCommand(loadID, performedBy kernel.UUID) (ClearPaidAtCommand, error) {
	if err := errors.Join(loadID.Validate(), performedBy.Validate()); err != nil {
		return ClearPaidAtCommand{}, err
	}

	return ClearPaidAtCommand{
		loadID:      loadID,
		performedBy: performedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearPaidAtCommand) Validate() error {
	return c.guard.Validate(ErrClearPaidAtCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c ClearPaidAtCommand) LoadID() kernel.UUID {
	return c.loadID
}

// PerformedBy returns the acting user's identifier for audit.
func (c ClearPaidAtCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}
