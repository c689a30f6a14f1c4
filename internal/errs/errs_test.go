package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError(Field("title", "this field is required"), Field("category", "invalid value"))

	assert.Equal(t, "validation failed: title: this field is required; category: invalid value", err.Error())
}

func TestValidationError_Unwrapping(t *testing.T) {
	wrapped := fmt.Errorf("create event: %w", NewValidationError(Field("date", "this field is required")))

	ve, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"date"}, ve.FieldNames())
	assert.Equal(t, map[string]string{"date": "this field is required"}, ve.FieldMap())
}

func TestAsValidation_OtherErrors(t *testing.T) {
	_, ok := AsValidation(ErrNotFound)
	assert.False(t, ok)
}

func TestIsAuth(t *testing.T) {
	assert.True(t, IsAuth(ErrInvalidCredentials))
	assert.True(t, IsAuth(fmt.Errorf("verify: %w", ErrTokenExpired)))
	assert.True(t, IsAuth(ErrTokenInvalid))
	assert.False(t, IsAuth(ErrForbidden))
	assert.False(t, IsAuth(ErrStorageUnavailable))
}
