package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredFields is returned when a required field is absent,
	// null or empty.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidFieldValue is matched by every [InvalidFieldError].
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrInvalidCredentials is returned when a username/password pair does
	// not match a stored user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive is returned when valid credentials belong to a
	// deactivated user.
	ErrUserInactive = errors.New("user is inactive")

	// ErrTokenExpired is returned for a well-formed access token whose exp
	// claim is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for any other access token failure.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenCreationFailed is returned when an access token cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// InvalidFieldError reports a field whose value has the wrong type or is
// not allowed (for example null on a non-nullable field).
type InvalidFieldError struct {
	Field string
}

// NewInvalidFieldError returns an [InvalidFieldError] for field.
func NewInvalidFieldError(field string) *InvalidFieldError {
	return &InvalidFieldError{Field: field}
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for field %s", e.Field)
}

// Is makes every InvalidFieldError match [ErrInvalidFieldValue].
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidFieldValue
}
