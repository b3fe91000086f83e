// Package counter implements the per-organization invoice number sequence.
// Each organization owns exactly one Counter; every successful allocation
// increases it by one, so invoice numbers form a gapless increasing run.
package counter

import (
	"fmt"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/errs"
)

// ErrCounterIsNotConstructed is returned when a Counter instance was not
// created through NewCounter or RestoreCounter.
var ErrCounterIsNotConstructed = errs.NewValueIsRequiredError(
	"Counter must be created via NewCounter or RestoreCounter")

// invoiceNumberWidth is the zero-padding width of formatted invoice numbers.
const invoiceNumberWidth = 4

// Counter is the invoice sequence aggregate for one organization.
// lastNumber is non-decreasing; Next is the only mutation.
type Counter struct {
	orgID         kernel.UUID
	lastNumber    int64
	isConstructed bool
}

// NewCounter creates a fresh counter for an organization. The first call to
// Next yields 1.
func NewCounter(orgID kernel.UUID) (*Counter, error) {
	return RestoreCounter(orgID, 0)
}

// RestoreCounter reconstructs a counter from persistence.
func RestoreCounter(orgID kernel.UUID, lastNumber int64) (*Counter, error) {
	if err := orgID.Validate(); err != nil {
		return nil, err
	}
	if lastNumber < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("lastNumber",
			fmt.Errorf("%d is negative", lastNumber))
	}

	return &Counter{
		orgID:         orgID,
		lastNumber:    lastNumber,
		isConstructed: true,
	}, nil
}

// Validate ensures the Counter was created through a constructor.
func (c *Counter) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCounterIsNotConstructed
	}
	return nil
}

// OrgID returns the owning organization's identifier.
func (c *Counter) OrgID() kernel.UUID {
	return c.orgID
}

// LastNumber returns the most recently allocated number, 0 if none.
func (c *Counter) LastNumber() int64 {
	return c.lastNumber
}

// Next allocates the next number in the sequence.
func (c *Counter) Next() (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	c.lastNumber++
	return c.lastNumber, nil
}

// FormatInvoiceNumber renders an allocated number as the zero-padded
// invoice number embedded in load payloads, e.g. 1 -> "0001".
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("%0*d", invoiceNumberWidth, n)
}
