package errors

import "net/http"

// HTTPError is a domain error mapped to an HTTP status. Delivery layers
// produce these from use-case errors; pkg/response renders them.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an error carrying the given HTTP status and message.
// The envelope error code defaults to the status code.
func NewHTTPError(statusCode int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}
