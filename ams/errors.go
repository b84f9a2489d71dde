package ams

import (
	"errors"
	"fmt"
)

// ErrNotConnected indicates an operation on a device that has no open
// session. Call Connect first.
var ErrNotConnected = errors.New("device is not connected")

// ErrDeviceNotPresent indicates that the opened port did not answer the
// presence check with the expected signature, so whatever is attached is
// not a reachable VU-AMS device.
var ErrDeviceNotPresent = errors.New("device did not answer the presence check")

// ConnectError wraps a failed connection attempt.
type ConnectError struct {
	// Port is the serial port the attempt targeted
	Port string

	// Err is the underlying cause
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Port, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}
