package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
// Message is what the caller sees; details stay in the logs.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helpers for common errors
var (
	ErrBadRequest = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrInternal   = func(msg string) *HTTPError { return NewHTTPError(http.StatusInternalServerError, msg) }
)

var (
	ErrInvalidBody         = ErrBadRequest("Invalid request body")
	ErrReservationMissing  = ErrBadRequest("All required fields must be filled.")
	ErrContactMissing      = ErrBadRequest("All fields are required")
	ErrContactInvalidEmail = ErrBadRequest("A valid email address is required")
	ErrReservationDispatch = ErrInternal("Failed to send reservation request")
	ErrContactDispatch     = ErrInternal("Failed to send email")
)
