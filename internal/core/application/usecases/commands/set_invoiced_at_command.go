package commands

import (
	"errors"
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/errs"
	"loadflow/internal/pkg/guard"
)

var ErrSetInvoicedAtCommandIsNotConstructed = errors.New(
	"SetInvoicedAtCommand must be created via NewSetInvoicedAtCommand constructor",
)

// SetInvoicedAtCommand requests recording the moment a load was invoiced.
type SetInvoicedAtCommand struct { //nolint:recvcheck //using for validation
	loadID      kernel.UUID
	invoicedAt  time.Time
	performedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetInvoicedAtCommand creates a command to set a load's invoiced-at
// timestamp.
func NewSetInvoicedAtCommand(
	loadID kernel.UUID, invoicedAt time.Time, performedBy kernel.UUID,
) (SetInvoicedAtCommand, error) {
	if err := errors.Join(loadID.Validate(), performedBy.Validate()); err != nil {
		return SetInvoicedAtCommand{}, err
	}
	if invoicedAt.IsZero() {
		return SetInvoicedAtCommand{}, errs.NewValueIsRequiredError("invoicedAt")
	}

	return SetInvoicedAtCommand{
		loadID:      loadID,
		invoicedAt:  invoicedAt,
		performedBy: performedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetInvoicedAtCommand) Validate() error {
	return c.guard.Validate(ErrSetInvoicedAtCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c SetInvoicedAtCommand) LoadID() kernel.UUID {
	return c.loadID
}

// InvoicedAt returns the timestamp to record.
func (c SetInvoicedAtCommand) InvoicedAt() time.Time {
	return c.invoicedAt
}

// PerformedBy returns the acting user's identifier for audit.
func (c SetInvoicedAtCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}
