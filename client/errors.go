package client

import "fmt"

// ApiError is a non-2xx reply from the backend. Message carries the server's
// localized text and must be shown to the user unchanged for conflicts.
type ApiError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Conflict reports whether the server rejected the write because the
// underlying offering changed (HTTP 409).
func (e *ApiError) Conflict() bool {
	return e.Status == 409
}

// NetworkError wraps transport failures: no response ever arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError is raised when a request fails validation before it
// leaves the client, or when a server reply does not fit the expected
// shape. Fields carries the per-field issues for diagnostics.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", e.Fields)
}
