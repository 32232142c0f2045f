package authenticating

import (
	"errors"
	"fmt"

	"github.com/Cascadia376/cascadia-data-pipeline/pkg/apiErrors"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrMissingSecret = errors.New("AUTH_SECRET is not configured")
	ErrInvalidRole   = errors.New("unknown role")
	ErrMissingClaims = errors.New("subject is required")
)

// AuthError pairs an authentication failure with the API error code reported
// to the client.
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error { return e.Err }

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

// ErrorCode returns the API code carried by err, or AUTH_001 when err is not
// an AuthError.
func ErrorCode(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return apiErrors.ErrInvalidToken
}
