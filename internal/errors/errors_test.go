package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	e := NotFound("profile not found")
	assert.Equal(t, "profile not found", e.Error())

	wrapped := Wrap(errors.New("no rows"), ErrCodeNotFound, "profile not found")
	assert.Equal(t, "profile not found: no rows", wrapped.Error())
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsUnauthorized(Unauthorized("x")))
	assert.True(t, IsUnavailable(Unavailable("x")))
	assert.False(t, IsNotFound(Conflict("x")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestUnwrap_ThroughFmtErrorf(t *testing.T) {
	cause := Conflict("email already registered")
	err := fmt.Errorf("register user: %w", cause)

	require.True(t, IsConflict(err))
	assert.Equal(t, ErrCodeConflict, GetCode(err))
}

func TestValidationField(t *testing.T) {
	e := ValidationField("email", "Enter a valid email address.")
	assert.Equal(t, "email", GetField(e))
	assert.Equal(t, ErrCodeValidation, GetCode(e))
	assert.Empty(t, GetField(errors.New("plain")))
}
