package errors

import (
	"errors"
	"net/http"

	"wisekey/internal/auth"
)

var (
	// ErrUserAlreadyExists is returned when registering a duplicate email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on any login failure. Unknown
	// email and wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrRefreshNotSupported is returned by the refresh stub: refresh
	// tokens are issued but exchange is not yet supported.
	ErrRefreshNotSupported = errors.New("refresh token exchange is not supported")
	// ErrPropertyNotFound is returned when a property is absent or owned
	// by someone else. The two cases are deliberately identical.
	ErrPropertyNotFound = errors.New("property not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. All authentication
// failures surface as a generic 401 regardless of root cause.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrWrongTokenClass):
		return NewHTTPError(http.StatusUnauthorized, "invalid or expired token", "UNAUTHORIZED")
	case errors.Is(err, ErrPropertyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROPERTY_NOT_FOUND")
	case errors.Is(err, ErrRefreshNotSupported):
		return NewHTTPError(http.StatusNotImplemented, err.Error(), "NOT_SUPPORTED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
