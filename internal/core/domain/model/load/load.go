package load

import (
	"errors"
	"fmt"
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/errs"
)

// ErrLoadIsNotConstructed is returned when a Load instance was not created
// through NewLoad or RestoreLoad.
var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad")

// Load is the aggregate root for a shipment moving through its workflow.
// It owns its stops exclusively and holds the progress cursor, the
// authoritative position in the detailed step sequence derived from those
// stops.
//
// Invariants:
//   - the stop set contains at least one pickup and one delivery
//   - stops are append-only: fixed at creation, never edited
//   - the cursor is always within [0, DetailedCount-1]
//   - the coarse status is a pure projection of the cursor, never stored
//
// The workflow sequence is memoized on first use. The stops are immutable
// after construction, so the memoized value can never go stale.
type Load struct {
	id            kernel.UUID
	orgID         kernel.UUID
	stops         []*Stop
	progress      int
	invoiceNumber string
	invoicedAt    *time.Time
	paidAt        *time.Time
	rate          kernel.Money

	seq           *Sequence
	isConstructed bool
}

// NewLoad creates a load at cursor 0 from its stop batch. The stop set must
// be progress-eligible (at least one pickup and one delivery); the invoice
// number comes from the per-organization allocator and must already be set.
func NewLoad(
	id, orgID kernel.UUID, stops []*Stop, invoiceNumber string, rate kernel.Money,
) (*Load, error) {
	return RestoreLoad(id, orgID, stops, 0, invoiceNumber, nil, nil, rate)
}

// RestoreLoad reconstructs a load from persistence. The persisted cursor is
// clamped into the valid range re-derived from the load's own stops, so a
// stored value is never trusted blindly.
func RestoreLoad(
	id, orgID kernel.UUID, stops []*Stop, progress int, invoiceNumber string,
	invoicedAt, paidAt *time.Time, rate kernel.Money,
) (*Load, error) {
	if err := errors.Join(
		id.Validate(),
		orgID.Validate(),
		rate.Validate(),
	); err != nil {
		return nil, err
	}
	if invoiceNumber == "" {
		return nil, errs.NewValueIsRequiredError("invoiceNumber")
	}
	for _, s := range stops {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	seq, err := BuildSequence(stops)
	if err != nil {
		return nil, err
	}

	owned := make([]*Stop, len(stops))
	copy(owned, stops)

	return &Load{
		id:            id,
		orgID:         orgID,
		stops:         owned,
		progress:      seq.Clamp(progress),
		invoiceNumber: invoiceNumber,
		invoicedAt:    invoicedAt,
		paidAt:        paidAt,
		rate:          rate,
		seq:           &seq,
		isConstructed: true,
	}, nil
}

// Validate ensures the Load was created through NewLoad or RestoreLoad.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}
	return nil
}

// IsEqual compares two loads by identifier.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// OrgID returns the owning organization's identifier.
func (l *Load) OrgID() kernel.UUID {
	return l.orgID
}

// Stops returns a copy of the load's stops, waypoints included.
func (l *Load) Stops() []*Stop {
	stops := make([]*Stop, len(l.stops))
	copy(stops, l.stops)
	return stops
}

// Progress returns the current cursor into the detailed step sequence.
func (l *Load) Progress() int {
	return l.progress
}

// InvoiceNumber returns the allocated per-organization invoice number.
func (l *Load) InvoiceNumber() string {
	return l.invoiceNumber
}

// InvoicedAt returns when the load was invoiced, nil if it was not.
func (l *Load) InvoicedAt() *time.Time {
	return l.invoicedAt
}

// PaidAt returns when the load was paid, nil if it was not.
func (l *Load) PaidAt() *time.Time {
	return l.paidAt
}

// Rate returns the agreed rate for the load.
func (l *Load) Rate() kernel.Money {
	return l.rate
}

// Sequence returns the load's workflow sequence, building it on first use.
func (l *Load) Sequence() Sequence {
	if l.seq == nil {
		seq, err := BuildSequence(l.stops)
		if err != nil {
			// Construction guarantees eligibility; an error here means the
			// aggregate was tampered with.
			panic(err)
		}
		l.seq = &seq
	}
	return *l.seq
}

// Status resolves the coarse status from the current cursor.
func (l *Load) Status() Status {
	return ResolveStatus(l.progress, l.Sequence().DetailedCount())
}

// VisibleIndex projects the current cursor onto the visible sequence.
func (l *Load) VisibleIndex() int {
	return l.Sequence().VisibleIndex(l.progress)
}

// Advance moves the cursor one step forward. At the terminal step it is a
// no-op, so repeated requests (a double-clicked button) are idempotent.
func (l *Load) Advance() error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.progress < l.Sequence().TerminalCursor() {
		l.progress++
	}
	return nil
}

// Retreat moves the cursor one step back. At cursor 0 it is a no-op.
func (l *Load) Retreat() error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.progress > 0 {
		l.progress--
	}
	return nil
}

// SetProgress writes an absolute cursor value. Unlike the relative Advance
// and Retreat, an out-of-range value is rejected, not clamped.
func (l *Load) SetProgress(cursor int) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if max := l.Sequence().TerminalCursor(); cursor < 0 || cursor > max {
		return errs.NewValueIsOutOfRangeError("progress", cursor, 0, max)
	}
	l.progress = cursor
	return nil
}

// SetInvoicedAt records when the load was invoiced. Only valid while the
// cursor sits on the final delivered step or the invoiced step.
func (l *Load) SetInvoicedAt(t time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if t.IsZero() {
		return errs.NewValueIsRequiredError("invoicedAt")
	}

	n := l.Sequence().DetailedCount()
	if l.progress != n-3 && l.progress != n-2 {
		return errs.NewInvalidTransitionErrorWithCause(
			"invoiced-at can only be set at the delivered or invoiced step",
			fmt.Errorf("cursor is %d", l.progress),
		)
	}

	l.invoicedAt = &t
	return nil
}

// SetPaidAt records when the load was paid. Only valid while the cursor
// sits on the invoiced step or the terminal paid step.
func (l *Load) SetPaidAt(t time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if t.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}

	n := l.Sequence().DetailedCount()
	if l.progress != n-2 && l.progress != n-1 {
		return errs.NewInvalidTransitionErrorWithCause(
			"paid-at can only be set at the invoiced or paid step",
			fmt.Errorf("cursor is %d", l.progress),
		)
	}

	l.paidAt = &t
	return nil
}

// ClearPaidAt removes the paid timestamp. Allowed at any cursor: it is the
// manual correction path for a payment recorded in error.
func (l *Load) ClearPaidAt() error {
	if err := l.Validate(); err != nil {
		return err
	}
	l.paidAt = nil
	return nil
}
