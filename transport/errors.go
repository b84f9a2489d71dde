package transport

import (
	"errors"
	"fmt"
)

// ErrNoData indicates that no response bytes arrived before the deadline,
// or that the wait was cancelled. It is a terminal outcome for the call,
// never retried by this layer.
var ErrNoData = errors.New("no data received before deadline")

// TransportError wraps a failure of the underlying serial stream.
type TransportError struct {
	// Op is the operation that failed ("open", "write", "close", "enumerate")
	Op string

	// Port is the port name, when one is known
	Port string

	// Err is the underlying cause
	Err error
}

func (e *TransportError) Error() string {
	if e.Port == "" {
		return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transport %s %s: %v", e.Op, e.Port, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
