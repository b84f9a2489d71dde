package protocol

import (
	"bytes"
	"strconv"
)

// IsPresenceConfirmation reports whether frame begins with the fixed 8-byte
// signature the device returns for a ParamPresence request. Shorter or
// differing input returns false; the function never panics.
func IsPresenceConfirmation(frame []byte) bool {
	if len(frame) < len(presenceSignature) {
		return false
	}
	return bytes.Equal(frame[:len(presenceSignature)], presenceSignature)
}

// DecodeStatus extracts the device status from a ParamStatus response.
// The status byte sits at ParameterValueOffset; a frame too short to hold
// it yields a *DecodeError, and a byte outside the closed enumeration
// yields an *UnknownStatusError.
func DecodeStatus(frame []byte) (Status, error) {
	if len(frame) <= ParameterValueOffset {
		return 0, &DecodeError{Response: "status", Length: len(frame), MinLength: ParameterValueOffset + 1}
	}
	s := Status(frame[ParameterValueOffset])
	if s < StatusNoMemory || s > StatusBatteryLow {
		return 0, &UnknownStatusError{Code: frame[ParameterValueOffset]}
	}
	return s, nil
}

// DecodeLabel extracts the device label from a ParamLabel response and
// renders it as decimal text.
//
// Only a single byte at ParameterValueOffset has been observed to carry
// label data; the full layout of the ParamLabel response is undocumented,
// so this decoder deliberately reads no further.
func DecodeLabel(frame []byte) (string, error) {
	if len(frame) <= ParameterValueOffset {
		return "", &DecodeError{Response: "label", Length: len(frame), MinLength: ParameterValueOffset + 1}
	}
	return strconv.Itoa(int(frame[ParameterValueOffset])), nil
}
