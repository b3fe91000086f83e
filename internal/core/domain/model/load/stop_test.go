package load_test

import (
	"testing"
	"time"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func appointmentStop(t *testing.T, kind load.StopKind, at time.Time, hint int) *load.Stop {
	t.Helper()
	s, err := load.NewAppointmentStop(kernel.NewUUID(), kind, "Dallas, TX", at, hint)
	require.NoError(t, err)
	return s
}

func windowStop(t *testing.T, kind load.StopKind, start, end time.Time, hint int) *load.Stop {
	t.Helper()
	s, err := load.NewWindowStop(kernel.NewUUID(), kind, "Memphis, TN", start, end, hint)
	require.NoError(t, err)
	return s
}

func TestNewAppointmentStop(t *testing.T) {
	t.Run("creates valid stop", func(t *testing.T) {
		s := appointmentStop(t, load.Pickup, testBase, 0)

		require.NoError(t, s.Validate())
		assert.Equal(t, load.Pickup, s.Kind())
		assert.Equal(t, load.Appointment, s.TimeType())
		require.NotNil(t, s.AppointmentTime())
		assert.True(t, s.AppointmentTime().Equal(testBase))
		assert.Nil(t, s.WindowStart())
		assert.Nil(t, s.WindowEnd())
	})

	t.Run("rejects zero appointment time", func(t *testing.T) {
		_, err := load.NewAppointmentStop(kernel.NewUUID(), load.Pickup, "Dallas, TX", time.Time{}, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty location", func(t *testing.T) {
		_, err := load.NewAppointmentStop(kernel.NewUUID(), load.Pickup, "", testBase, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		_, err := load.NewAppointmentStop(kernel.NewUUID(), load.StopKindUnknown, "Dallas, TX", testBase, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		_, err := load.NewAppointmentStop(kernel.UUID{}, load.Pickup, "Dallas, TX", testBase, 0)
		require.Error(t, err)
	})
}

func TestNewWindowStop(t *testing.T) {
	t.Run("creates valid stop", func(t *testing.T) {
		s := windowStop(t, load.Delivery, testBase, testBase.Add(4*time.Hour), 1)

		require.NoError(t, s.Validate())
		assert.Equal(t, load.Window, s.TimeType())
		assert.Nil(t, s.AppointmentTime())
		require.NotNil(t, s.WindowEnd())
		assert.True(t, s.WindowEnd().Equal(testBase.Add(4*time.Hour)))
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := load.NewWindowStop(
			kernel.NewUUID(), load.Delivery, "Memphis, TN", testBase, testBase.Add(-time.Hour), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStop_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var s load.Stop
		require.ErrorIs(t, s.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("nil stop is not constructed", func(t *testing.T) {
		var s *load.Stop
		require.Error(t, s.Validate())
	})
}

func TestSortStops(t *testing.T) {
	t.Run("sorts by appointment time", func(t *testing.T) {
		later := appointmentStop(t, load.Delivery, testBase.Add(6*time.Hour), 0)
		earlier := appointmentStop(t, load.Pickup, testBase, 1)

		sorted := load.SortStops([]*load.Stop{later, earlier})
		assert.Equal(t, earlier.ID(), sorted[0].ID())
		assert.Equal(t, later.ID(), sorted[1].ID())
	})

	t.Run("window stops sort by window end, not window start", func(t *testing.T) {
		// Opens first but closes last: must sort after the appointment stop.
		wide := windowStop(t, load.Delivery, testBase.Add(-2*time.Hour), testBase.Add(8*time.Hour), 0)
		appt := appointmentStop(t, load.Pickup, testBase, 1)

		sorted := load.SortStops([]*load.Stop{wide, appt})
		assert.Equal(t, appt.ID(), sorted[0].ID())
		assert.Equal(t, wide.ID(), sorted[1].ID())
	})

	t.Run("ties broken by insertion order", func(t *testing.T) {
		first := appointmentStop(t, load.Pickup, testBase, 0)
		second := appointmentStop(t, load.Pickup, testBase, 1)

		sorted := load.SortStops([]*load.Stop{second, first})
		assert.Equal(t, first.ID(), sorted[0].ID())
		assert.Equal(t, second.ID(), sorted[1].ID())
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		later := appointmentStop(t, load.Delivery, testBase.Add(time.Hour), 0)
		earlier := appointmentStop(t, load.Pickup, testBase, 1)
		input := []*load.Stop{later, earlier}

		load.SortStops(input)
		assert.Equal(t, later.ID(), input[0].ID())
	})
}

func TestWorkStops(t *testing.T) {
	t.Run("excludes waypoints", func(t *testing.T) {
		pickup := appointmentStop(t, load.Pickup, testBase, 0)
		waypoint := appointmentStop(t, load.Waypoint, testBase.Add(time.Hour), 1)
		delivery := appointmentStop(t, load.Delivery, testBase.Add(2*time.Hour), 2)

		pickups, deliveries := load.WorkStops([]*load.Stop{pickup, waypoint, delivery})
		require.Len(t, pickups, 1)
		require.Len(t, deliveries, 1)
		assert.Equal(t, pickup.ID(), pickups[0].ID())
		assert.Equal(t, delivery.ID(), deliveries[0].ID())
	})

	t.Run("groups are each in time order", func(t *testing.T) {
		p2 := appointmentStop(t, load.Pickup, testBase.Add(2*time.Hour), 0)
		p1 := appointmentStop(t, load.Pickup, testBase, 1)
		d1 := appointmentStop(t, load.Delivery, testBase.Add(3*time.Hour), 2)

		pickups, deliveries := load.WorkStops([]*load.Stop{p2, d1, p1})
		require.Len(t, pickups, 2)
		require.Len(t, deliveries, 1)
		assert.Equal(t, p1.ID(), pickups[0].ID())
		assert.Equal(t, p2.ID(), pickups[1].ID())
	})
}

func TestRestoreStop(t *testing.T) {
	t.Run("restores appointment stop", func(t *testing.T) {
		at := testBase
		s, err := load.RestoreStop(
			kernel.NewUUID(), load.Pickup, "Dallas, TX", load.Appointment, &at, nil, nil, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, s.SequenceHint())
	})

	t.Run("restores window stop", func(t *testing.T) {
		ws, we := testBase, testBase.Add(2*time.Hour)
		s, err := load.RestoreStop(
			kernel.NewUUID(), load.Delivery, "Memphis, TN", load.Window, nil, &ws, &we, 0)
		require.NoError(t, err)
		assert.Equal(t, load.Window, s.TimeType())
	})

	t.Run("rejects appointment stop without time", func(t *testing.T) {
		_, err := load.RestoreStop(
			kernel.NewUUID(), load.Pickup, "Dallas, TX", load.Appointment, nil, nil, nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown time type", func(t *testing.T) {
		_, err := load.RestoreStop(
			kernel.NewUUID(), load.Pickup, "Dallas, TX", load.TimeTypeUnknown, nil, nil, nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
