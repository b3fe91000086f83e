package load

import (
	"sort"
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/pkg/errs"
)

// ErrStopIsNotConstructed is returned when a Stop instance was not created
// through one of the Stop constructors.
var ErrStopIsNotConstructed = errs.NewValueIsRequiredError(
	"Stop must be created via NewAppointmentStop, NewWindowStop, or RestoreStop")

// Stop is a scheduled location on a load: a pickup, a delivery, or a
// routing-only waypoint. Stops are created as a batch when the load is
// created and are immutable afterwards.
//
// A stop is scheduled either with a fixed appointment time or with a
// start/end window. The moment a stop is expected to conclude (the
// appointment time, or the window end) is its ordering key within the load.
type Stop struct {
	id              kernel.UUID
	kind            StopKind
	location        string
	timeType        TimeType
	appointmentTime *time.Time
	windowStart     *time.Time
	windowEnd       *time.Time
	sequenceHint    int
	isConstructed   bool
}

// NewAppointmentStop creates a stop scheduled at a fixed appointment time.
func NewAppointmentStop(
	id kernel.UUID, kind StopKind, location string, appointmentTime time.Time, sequenceHint int,
) (*Stop, error) {
	if err := validateStopBasics(id, kind, location); err != nil {
		return nil, err
	}
	if appointmentTime.IsZero() {
		return nil, errs.NewValueIsRequiredError("appointmentTime")
	}

	at := appointmentTime
	return &Stop{
		id:              id,
		kind:            kind,
		location:        location,
		timeType:        Appointment,
		appointmentTime: &at,
		sequenceHint:    sequenceHint,
		isConstructed:   true,
	}, nil
}

// NewWindowStop creates a stop scheduled within a start/end window.
func NewWindowStop(
	id kernel.UUID, kind StopKind, location string, windowStart, windowEnd time.Time, sequenceHint int,
) (*Stop, error) {
	if err := validateStopBasics(id, kind, location); err != nil {
		return nil, err
	}
	if windowStart.IsZero() {
		return nil, errs.NewValueIsRequiredError("windowStart")
	}
	if windowEnd.IsZero() {
		return nil, errs.NewValueIsRequiredError("windowEnd")
	}
	if windowEnd.Before(windowStart) {
		return nil, errs.NewValueIsInvalidError("windowEnd must not be before windowStart")
	}

	ws, we := windowStart, windowEnd
	return &Stop{
		id:            id,
		kind:          kind,
		location:      location,
		timeType:      Window,
		windowStart:   &ws,
		windowEnd:     &we,
		sequenceHint:  sequenceHint,
		isConstructed: true,
	}, nil
}

// RestoreStop reconstructs a stop from persistence without re-running the
// scheduling constructors. The time type decides which time fields are read.
func RestoreStop(
	id kernel.UUID, kind StopKind, location string, timeType TimeType,
	appointmentTime, windowStart, windowEnd *time.Time, sequenceHint int,
) (*Stop, error) {
	if timeType == Appointment {
		if appointmentTime == nil {
			return nil, errs.NewValueIsRequiredError("appointmentTime")
		}
		return NewAppointmentStop(id, kind, location, *appointmentTime, sequenceHint)
	}
	if err := timeType.Validate(); err != nil {
		return nil, err
	}
	if windowStart == nil {
		return nil, errs.NewValueIsRequiredError("windowStart")
	}
	if windowEnd == nil {
		return nil, errs.NewValueIsRequiredError("windowEnd")
	}
	return NewWindowStop(id, kind, location, *windowStart, *windowEnd, sequenceHint)
}

func validateStopBasics(id kernel.UUID, kind StopKind, location string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := kind.Validate(); err != nil {
		return err
	}
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	return nil
}

// Validate ensures the Stop was created through a constructor.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// Kind returns the stop's workflow role.
func (s *Stop) Kind() StopKind {
	return s.kind
}

// Location returns the stop's free-text location.
func (s *Stop) Location() string {
	return s.location
}

// TimeType returns how the stop is scheduled.
func (s *Stop) TimeType() TimeType {
	return s.timeType
}

// AppointmentTime returns the fixed arrival time, nil for window stops.
func (s *Stop) AppointmentTime() *time.Time {
	return s.appointmentTime
}

// WindowStart returns the window opening time, nil for appointment stops.
func (s *Stop) WindowStart() *time.Time {
	return s.windowStart
}

// WindowEnd returns the window closing time, nil for appointment stops.
func (s *Stop) WindowEnd() *time.Time {
	return s.windowEnd
}

// SequenceHint returns the insertion-order position of the stop within its
// load. It is the tie-breaker when two stops share an ordering key.
func (s *Stop) SequenceHint() int {
	return s.sequenceHint
}

// orderingKey is the moment the stop is expected to conclude: the
// appointment time for appointment stops, the window end for window stops.
// The load can only be marked progressed past a stop after this moment, so
// it is the key the canonical stop order sorts on.
func (s *Stop) orderingKey() time.Time {
	if s.timeType == Appointment {
		return *s.appointmentTime
	}
	return *s.windowEnd
}

// SortStops returns the canonical order of a load's stops: ascending by
// ordering key, ties broken by insertion order. The input slice is not
// modified.
func SortStops(stops []*Stop) []*Stop {
	sorted := make([]*Stop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := sorted[i].orderingKey(), sorted[j].orderingKey()
		if ki.Equal(kj) {
			return sorted[i].sequenceHint < sorted[j].sequenceHint
		}
		return ki.Before(kj)
	})

	return sorted
}

// WorkStops splits a load's stops into its workflow-relevant pickups and
// deliveries, each group in canonical order. Waypoints are dropped: they are
// preserved on the load for routing but generate no workflow steps.
func WorkStops(stops []*Stop) (pickups, deliveries []*Stop) {
	for _, s := range SortStops(stops) {
		switch s.kind {
		case Pickup:
			pickups = append(pickups, s)
		case Delivery:
			deliveries = append(deliveries, s)
		}
	}
	return pickups, deliveries
}
