package api

import "fmt"

// NetworkError means the request never completed: transport failure,
// timeout, or an unreadable response body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-success response from the backend. Message carries the
// backend's {"error": "..."} text when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// EmptyResponseError is a well-formed success response that lacks a field
// the flow needs, e.g. a chat reply without a message.
type EmptyResponseError struct {
	Op    string
	Field string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s: response missing %s", e.Op, e.Field)
}
