package errs_test

import (
	"errors"
	"testing"

	"loadflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("loadId", "123")

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("loadId", "123", cause)

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: loadId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("progress", 12, 0, 8)

		assert.Equal(t, "progress", err.ParamName)
		assert.Equal(t, 12, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 8, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 12 is progress, min value is 0, max value is 8", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("progress", -5, 0, 8, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is progress, min value is 0, max value is 8 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("orgId")

		assert.Equal(t, "orgId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: orgId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("orgId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orgId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("NewPreconditionFailedError", func(t *testing.T) {
		err := errs.NewPreconditionFailedError("load has no pickup stop")

		assert.Equal(t, "load has no pickup stop", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "precondition failed: load has no pickup stop", err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})

	t.Run("NewPreconditionFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("stop list is empty")
		err := errs.NewPreconditionFailedErrorWithCause("load is not progress-eligible", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"precondition failed: load is not progress-eligible (cause: stop list is empty)",
			err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("invoiced-at cannot be set before delivery")

		assert.Equal(t, "invoiced-at cannot be set before delivery", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"transition is invalid: invoiced-at cannot be set before delivery",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("cursor is 2")
		err := errs.NewInvalidTransitionErrorWithCause("paid-at window", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "transition is invalid: paid-at window (cause: cursor is 2)", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "precondition failed", errs.ErrPreconditionFailed.Error())
		assert.Equal(t, "transition is invalid", errs.ErrInvalidTransition.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("loadId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("progress", 12, 0, 8), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("orgId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewPreconditionFailedError("no pickup"), errs.ErrPreconditionFailed)
		require.ErrorIs(t, errs.NewInvalidTransitionError("too early"), errs.ErrInvalidTransition)
	})
}
