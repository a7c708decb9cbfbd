package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCSRFTokenMissing occurs when CSRF token missing.
	ErrCSRFTokenMissing = errors.New("csrf token missing")
	// ErrCSRFTokenMismatch occurs when CSRF tokens do not match.
	ErrCSRFTokenMismatch = errors.New("csrf token mismatch")
	// ErrNoIdentity occurs when a request reaches a tenant-scoped handler
	// without an authenticated user and active company.
	ErrNoIdentity = errors.New("no authenticated identity")
)

// FieldError is a validation or uniqueness failure tied to a single input
// field. Handlers render it next to the field instead of as a server fault.
type FieldError struct {
	Field   string
	Value   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

// NewDuplicateFieldError reports a uniqueness conflict on one field.
func NewDuplicateFieldError(field, value string) *FieldError {
	return &FieldError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("a record with %s %q already exists", field, value),
	}
}

// AsFieldError unwraps err into a FieldError when possible.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// UserSafeMessage maps an error to text safe to show in the UI. Anything not
// explicitly recognised becomes a generic failure message so internals never
// leak into rendered pages.
func UserSafeMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "The requested record was not found."
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, ErrNoIdentity):
		return "Your session has expired. Please sign in again."
	}
	if fe, ok := AsFieldError(err); ok {
		return fe.Error()
	}
	return "Something went wrong. Please try again."
}
