package compiler

import "fmt"

// NetworkError means the compiler service could not be reached at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("compiler service unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// BackendError means the compiler was reached but answered with a
// non-success status. Body carries the service's own error text.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("compiler service returned an error: %s", e.Body)
}

// DecodeError means the compiler answered with a success status but a
// payload that doesn't decode as a Response. Kept distinct from
// BackendError so callers can tell a protocol mismatch apart from an
// application error the compiler reported itself.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode compiler response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
