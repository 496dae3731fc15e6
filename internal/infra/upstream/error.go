package upstream

import "fmt"

// Error carries the status and message of a failed third-party call.
// StatusCode is zero for transport-level failures that never got a response.
type Error struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Message)
}

func Errorf(service string, statusCode int, format string, args ...any) *Error {
	return &Error{
		Service:    service,
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}
