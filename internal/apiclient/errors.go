// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apiclient

import (
	"errors"
	"fmt"
)

// ErrNetwork reports that no response was received from the service.
// Match it with errors.Is; the transport error is kept in the chain.
var ErrNetwork = errors.New("Network error: Unable to connect to server")

type networkError struct {
	cause error
}

func (e *networkError) Error() string { return ErrNetwork.Error() }

func (e *networkError) Unwrap() []error { return []error{ErrNetwork, e.cause} }

// APIError is a non-2xx response from the service. Detail is the
// server-supplied message when the body carried one, or the operation's
// generic failure message otherwise.
type APIError struct {
	Op         string
	StatusCode int
	Detail     string

	// Structured is true when Detail came from the response body.
	Structured bool
}

func (e *APIError) Error() string {
	return e.Detail
}

// String includes the status code, for logs.
func (e *APIError) String() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Detail)
}
