package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
)

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	t.Run("detects validation errors", func(t *testing.T) {
		_, err := validate.Value(5).Equal(6).Get()
		require.Error(t, err)
		assert.True(t, validate.IsValidationError(err))
	})

	t.Run("detects wrapped validation errors", func(t *testing.T) {
		_, err := validate.Value(5).Equal(6).Get()
		wrapped := fmt.Errorf("loading config: %w", err)
		assert.True(t, validate.IsValidationError(wrapped))
	})

	t.Run("rejects nil and foreign errors", func(t *testing.T) {
		assert.False(t, validate.IsValidationError(nil))
		assert.False(t, validate.IsValidationError(errors.New("boom")))
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Parallel()

	t.Run("returns the typed error with its fields", func(t *testing.T) {
		_, err := validate.Named(5, "answer").Equal(6).Get()
		require.Error(t, err)

		verr := validate.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, validate.KindMismatch, verr.Kind)
		assert.Equal(t, "The value of 'answer'", verr.Subject)
		assert.Equal(t, 5, verr.Actual)
		assert.Equal(t, 6, verr.Expected)
		assert.Equal(t, verr.Message, verr.Error())
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		_, err := validate.Value(5).NotEqual(5).Get()
		wrapped := fmt.Errorf("outer: %w", err)

		verr := validate.ExtractValidationError(wrapped)
		require.NotNil(t, verr)
		assert.Equal(t, validate.KindForbidden, verr.Kind)
	})

	t.Run("returns nil for nil and foreign errors", func(t *testing.T) {
		assert.Nil(t, validate.ExtractValidationError(nil))
		assert.Nil(t, validate.ExtractValidationError(errors.New("boom")))
	})
}
