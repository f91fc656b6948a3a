package errors

import (
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
	ErrorTypeSessionInvalid     ErrorType = "session_invalid"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// AuthError represents authentication-specific errors with enhanced security context
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged.
	// Invalid credentials are expected and don't need error-level logging.
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The message does not reveal whether the email or password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewSessionExpiredError creates an error for an expired admin session
func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionExpired,
			Message: "Session has expired, please log in again",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: false,
	}
}

// NewSessionInvalidError creates an error for a session rejected by verification
func NewSessionInvalidError(details ...string) *AuthError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionInvalid,
			Message: "Session is no longer valid",
			Code:    http.StatusUnauthorized,
			Details: detail,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewTokenInvalidError creates an error for a malformed or tampered token
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Invalid authentication token",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// IsAuthRejection reports whether err is a 401/403-class authentication
// rejection. The session layer fails closed on these and fails open on
// everything else (transport errors, storage unavailability).
func IsAuthRejection(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	return appErr.Code == http.StatusUnauthorized || appErr.Code == http.StatusForbidden
}
