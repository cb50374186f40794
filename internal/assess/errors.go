package assess

import (
	"encoding/json"
	"fmt"
)

// ErrService indicates the service answered with a non-2xx status.
// Detail carries the service-provided message when the error body had one.
type ErrService struct {
	Endpoint string
	Status   int
	Detail   string
}

func (e *ErrService) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s returned HTTP %d: %s", e.Endpoint, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.Status)
}

// ErrTransport indicates the request never produced a usable HTTP response
// (connection refused, timeout, DNS failure).
type ErrTransport struct {
	Endpoint string
	Err      error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the service returned a 2xx body that is not
// valid JSON or does not conform to the response contract.
type ErrInvalidResponse struct {
	Endpoint string
	Body     json.RawMessage
	Err      error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid %s response: %v", e.Endpoint, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
