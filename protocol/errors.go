package protocol

import "fmt"

// DecodeError indicates a response frame too short for the decoder that
// was applied to it.
type DecodeError struct {
	// Response names the reply shape that was expected
	Response string

	// Length is the actual frame length in bytes
	Length int

	// MinLength is the minimum frame length the decoder requires
	MinLength int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s response too short: got %d bytes, need at least %d", e.Response, e.Length, e.MinLength)
}

// UnknownStatusError indicates a status byte outside the closed Status
// enumeration.
type UnknownStatusError struct {
	// Code is the status byte the device returned
	Code byte
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown device status code %d", e.Code)
}
