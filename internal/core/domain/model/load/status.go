package load

import (
	"fmt"

	"loadflow/internal/pkg/errs"
)

// Status is the coarse, queryable projection of a load's progress cursor.
// It exists only for list and filter views: the cursor is the source of
// truth, and Status is always re-derived from it via ResolveStatus, never
// stored or set independently.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusNew is a freshly created load, cursor 0.
	StatusNew

	// StatusAtPickup is a load at its first pickup, cursor 1.
	StatusAtPickup

	// StatusInTransit covers every intermediate cursor position.
	StatusInTransit

	// StatusDelivered is a load at its final delivered step.
	StatusDelivered

	// StatusInvoiced is a load at the invoiced step.
	StatusInvoiced

	// StatusPaid is the terminal status.
	StatusPaid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusNew:       "new",
		StatusAtPickup:  "at_pickup",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusInvoiced:  "invoiced",
		StatusPaid:      "paid",
	}
}

// Validate rejects StatusUnknown and any out-of-range value.
func (s Status) Validate() error {
	switch s {
	case StatusNew, StatusAtPickup, StatusInTransit, StatusDelivered, StatusInvoiced, StatusPaid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the snake_case wire representation.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the wire representation used by filters and APIs.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// ResolveStatus maps a progress cursor and a detailed sequence length onto
// the coarse status enum. It is a pure function: the same (cursor, n) always
// yields the same status.
//
// Intermediate cursor positions of multi-stop loads have no distinct coarse
// label and fall through to in_transit. The projection is intentionally
// lossy; it must never be used as the source of truth for progress.
func ResolveStatus(cursor, n int) Status {
	switch cursor {
	case 0:
		return StatusNew
	case 1:
		return StatusAtPickup
	case 2:
		return StatusInTransit
	case n - 3:
		return StatusDelivered
	case n - 2:
		return StatusInvoiced
	case n - 1:
		return StatusPaid
	default:
		return StatusInTransit
	}
}
