package load

import (
	"fmt"

	"loadflow/internal/pkg/errs"
)

// Fixed step labels. Per-stop labels get a "{i}.- " prefix when more than
// one stop of that kind exists on the load.
const (
	stepNew        = "New"
	stepAtPickup   = "At Pickup"
	stepPickedUp   = "Picked Up"
	stepAtDelivery = "At Delivery"
	stepDelivered  = "Delivered"
	stepInvoiced   = "Invoiced"
	stepPaid       = "Paid"

	visiblePickup   = "Pickup"
	visibleDelivery = "Delivery"
	visibleInvoice  = "Invoice"
)

// Sequence is the fixed-shape workflow derived from a load's stops. It holds
// two parallel label lists:
//
//   - the detailed sequence, the authoritative cursor domain: "New", then an
//     "At X"/"X done" pair per pickup and per delivery, then "Invoiced", "Paid"
//     (length 1 + 2p + 2d + 2);
//   - the visible sequence, the coarser user-facing list: "New", one label per
//     stop, "Invoice" (length 1 + p + d + 1).
//
// A Sequence is deterministic in the stops it was built from: the same stop
// set always yields the same labels, so it is derived on read and never
// persisted.
type Sequence struct {
	detailed   []string
	visible    []string
	pickups    int
	deliveries int
}

// BuildSequence expands a load's stops into its workflow Sequence. It is a
// pure function of the stop set.
//
// Returns a PreconditionFailedError if the load has no pickup or no delivery
// stop: such a load is not progress-eligible and has no workflow.
func BuildSequence(stops []*Stop) (Sequence, error) {
	pickups, deliveries := WorkStops(stops)

	if len(pickups) == 0 {
		return Sequence{}, errs.NewPreconditionFailedError("load has no pickup stop")
	}
	if len(deliveries) == 0 {
		return Sequence{}, errs.NewPreconditionFailedError("load has no delivery stop")
	}

	detailed := make([]string, 0, 1+2*len(pickups)+2*len(deliveries)+2)
	visible := make([]string, 0, 1+len(pickups)+len(deliveries)+1)

	detailed = append(detailed, stepNew)
	visible = append(visible, stepNew)

	for i := range pickups {
		prefix := stepPrefix(i, len(pickups))
		detailed = append(detailed, prefix+stepAtPickup, prefix+stepPickedUp)
		visible = append(visible, prefix+visiblePickup)
	}

	for i := range deliveries {
		prefix := stepPrefix(i, len(deliveries))
		detailed = append(detailed, prefix+stepAtDelivery, prefix+stepDelivered)
		visible = append(visible, prefix+visibleDelivery)
	}

	detailed = append(detailed, stepInvoiced, stepPaid)
	visible = append(visible, visibleInvoice)

	return Sequence{
		detailed:   detailed,
		visible:    visible,
		pickups:    len(pickups),
		deliveries: len(deliveries),
	}, nil
}

// stepPrefix returns the "{i}.- " label prefix. The prefix only appears when
// the load has more than one stop of the kind.
func stepPrefix(index, count int) string {
	if count <= 1 {
		return ""
	}
	return fmt.Sprintf("%d.- ", index+1)
}

// Detailed returns a copy of the detailed step labels.
func (s Sequence) Detailed() []string {
	return append([]string(nil), s.detailed...)
}

// Visible returns a copy of the visible step labels.
func (s Sequence) Visible() []string {
	return append([]string(nil), s.visible...)
}

// DetailedCount returns the cursor-domain length: 1 + 2p + 2d + 2.
func (s Sequence) DetailedCount() int {
	return len(s.detailed)
}

// VisibleCount returns the user-facing length: 1 + p + d + 1.
func (s Sequence) VisibleCount() int {
	return len(s.visible)
}

// TerminalCursor returns the last valid cursor value ("Paid").
func (s Sequence) TerminalCursor() int {
	return len(s.detailed) - 1
}

// PickupCount returns the number of pickup stops in the sequence.
func (s Sequence) PickupCount() int {
	return s.pickups
}

// DeliveryCount returns the number of delivery stops in the sequence.
func (s Sequence) DeliveryCount() int {
	return s.deliveries
}

// Clamp forces a cursor value into the valid range [0, TerminalCursor].
func (s Sequence) Clamp(cursor int) int {
	if cursor < 0 {
		return 0
	}
	if max := s.TerminalCursor(); cursor > max {
		return max
	}
	return cursor
}

// VisibleIndex projects a detailed cursor onto the visible sequence.
//
// Cursor 0 maps to visible index 0. Each stop's two detailed steps collapse
// onto one visible index: a cursor on the "At X" step maps to that stop
// (still in progress toward it), a cursor on the completion step maps past
// it. The trailing "Invoiced" and "Paid" steps both map to the final visible
// index.
func (s Sequence) VisibleIndex(cursor int) int {
	cursor = s.Clamp(cursor)
	stopCount := s.pickups + s.deliveries

	switch {
	case cursor == 0:
		return 0
	case cursor > 2*stopCount:
		return stopCount + 1
	case cursor%2 == 1:
		return (cursor + 1) / 2
	default:
		return cursor/2 + 1
	}
}
