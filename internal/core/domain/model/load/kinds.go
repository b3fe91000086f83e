package load

import (
	"fmt"

	"loadflow/internal/pkg/errs"
)

// StopKind classifies a stop's role in the load workflow. Only pickups and
// deliveries participate in workflow-step generation; waypoints are
// routing-only and never appear in the step sequence.
type StopKind int

const (
	// StopKindUnknown represents an invalid or undefined stop kind.
	StopKindUnknown StopKind = iota

	// Pickup is a stop where freight is picked up.
	Pickup

	// Delivery is a stop where freight is delivered.
	Delivery

	// Waypoint is an intermediate routing stop with no workflow steps.
	Waypoint
)

func getStopKindStrings() map[StopKind]string {
	return map[StopKind]string{
		StopKindUnknown: "unknown",
		Pickup:          "pickup",
		Delivery:        "delivery",
		Waypoint:        "waypoint",
	}
}

// Validate rejects StopKindUnknown and any out-of-range value.
func (k StopKind) Validate() error {
	switch k {
	case Pickup, Delivery, Waypoint:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stop kind is invalid",
			fmt.Errorf("%d is not a valid stop kind", k))
	}
}

// String implements fmt.Stringer. Safe to call on any value.
func (k StopKind) String() string {
	if s, ok := getStopKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// StopKindFromString parses the persisted/API representation of a stop kind.
func StopKindFromString(s string) (StopKind, error) {
	for kind, str := range getStopKindStrings() {
		if str == s && kind != StopKindUnknown {
			return kind, nil
		}
	}
	return StopKindUnknown, errs.NewValueIsInvalidErrorWithCause("stop kind is invalid",
		fmt.Errorf("%q is not a valid stop kind", s))
}

// TimeType says how a stop is scheduled: a fixed appointment or a
// start/end window.
type TimeType int

const (
	// TimeTypeUnknown represents an invalid or undefined time type.
	TimeTypeUnknown TimeType = iota

	// Appointment is a single fixed arrival time.
	Appointment

	// Window is an arrival interval between windowStart and windowEnd.
	Window
)

func getTimeTypeStrings() map[TimeType]string {
	return map[TimeType]string{
		TimeTypeUnknown: "unknown",
		Appointment:     "appointment",
		Window:          "window",
	}
}

// Validate rejects TimeTypeUnknown and any out-of-range value.
func (t TimeType) Validate() error {
	switch t {
	case Appointment, Window:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("time type is invalid",
			fmt.Errorf("%d is not a valid time type", t))
	}
}

// String implements fmt.Stringer. Safe to call on any value.
func (t TimeType) String() string {
	if s, ok := getTimeTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// TimeTypeFromString parses the persisted/API representation of a time type.
func TimeTypeFromString(s string) (TimeType, error) {
	for tt, str := range getTimeTypeStrings() {
		if str == s && tt != TimeTypeUnknown {
			return tt, nil
		}
	}
	return TimeTypeUnknown, errs.NewValueIsInvalidErrorWithCause("time type is invalid",
		fmt.Errorf("%q is not a valid time type", s))
}
