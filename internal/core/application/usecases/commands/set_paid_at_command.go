package commands

import (
	"errors"
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/errs"
	"loadflow/internal/pkg/guard"
)

var ErrSetPaidAtCommandIsNotConstructed = errors.New(
	"SetPaidAtCommand must be created via NewSetPaidAtCommand constructor",
)

// SetPaidAtCommand requests recording the moment a load was paid.
type SetPaidAtCommand struct { //nolint:recvcheck //using for validation
	loadID      kernel.UUID
	paidAt      time.Time
	performedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetPaidAtCommand creates a command to set a load's paid-at timestamp.
func NewSetPaidAtCommand(
	loadID kernel.UUID, paidAt time.Time, performedBy kernel.UUID,
) (SetPaidAtCommand, error) {
	if err := errors.Join(loadID.Validate(), performedBy.Validate()); err != nil {
		return SetPaidAtCommand{}, err
	}
	if paidAt.IsZero() {
		return SetPaidAtCommand{}, errs.NewValueIsRequiredError("paidAt")
	}

	return SetPaidAtCommand{
		loadID:      loadID,
		paidAt:      paidAt,
		performedBy: performedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPaidAtCommand) Validate() error {
	return c.guard.Validate(ErrSetPaidAtCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c SetPaidAtCommand) LoadID() kernel.UUID {
	return c.loadID
}

// PaidAt returns the timestamp to record.
func (c SetPaidAtCommand) PaidAt() time.Time {
	return c.paidAt
}

// PerformedBy returns the acting user's identifier for audit.
func (c SetPaidAtCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}
