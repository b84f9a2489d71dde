package protocol

import "fmt"

// Status is the device status byte returned for a ParamStatus request.
// The enumeration is closed; the device defines no other values.
type Status byte

const (
	// StatusNoMemory indicates no memory card is inserted
	StatusNoMemory Status = 1

	// StatusCloseCover indicates the memory card cover is open
	StatusCloseCover Status = 2

	// StatusIdle indicates the device is ready but not recording
	StatusIdle Status = 3

	// StatusRecording indicates a recording is in progress
	StatusRecording Status = 4

	// StatusMemoryFull indicates the memory card is full
	StatusMemoryFull Status = 5

	// StatusBatteryLow indicates the battery is too low to record
	StatusBatteryLow Status = 6
)

// String returns the human-readable status label as displayed by the
// official VU-DAMS software.
func (s Status) String() string {
	switch s {
	case StatusNoMemory:
		return "No Memory"
	case StatusCloseCover:
		return "Close Cover"
	case StatusIdle:
		return "Idle"
	case StatusRecording:
		return "Recording"
	case StatusMemoryFull:
		return "Memory Full"
	case StatusBatteryLow:
		return "Battery Low"
	default:
		return fmt.Sprintf("Unknown (%d)", byte(s))
	}
}
