package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError(t *testing.T) {
	fe := &FieldError{Field: "type", Value: "expense"}
	assert.Equal(t, `invalid value "expense" for field type`, fe.Error())

	dup := NewDuplicateFieldError("type", "expense")
	assert.Equal(t, "type", dup.Field)
	assert.Contains(t, dup.Error(), "already exists")
}

func TestAsFieldError(t *testing.T) {
	fe := NewDuplicateFieldError("type", "expense")
	wrapped := fmt.Errorf("create category: %w", fe)

	got, ok := AsFieldError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "type", got.Field)

	_, ok = AsFieldError(errors.New("boom"))
	assert.False(t, ok)

	_, ok = AsFieldError(nil)
	assert.False(t, ok)
}

func TestUserSafeMessage(t *testing.T) {
	assert.Equal(t, "", UserSafeMessage(nil))
	assert.Equal(t, "The requested record was not found.", UserSafeMessage(ErrNotFound))
	assert.Equal(t, "Invalid email or password.", UserSafeMessage(ErrInvalidCredentials))
	assert.Equal(t, "Your session has expired. Please sign in again.", UserSafeMessage(ErrNoIdentity))

	fe := NewDuplicateFieldError("type", "expense")
	assert.Equal(t, fe.Error(), UserSafeMessage(fe))

	assert.Equal(t, "Something went wrong. Please try again.", UserSafeMessage(errors.New("pq: deadlock detected")))
}
