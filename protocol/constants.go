package protocol

// Opcode bytes. The opcode sits at offset 2 of every request frame.
const (
	// OpGetParameter requests a single device parameter, sub-selected by a
	// parameter code in the following byte
	OpGetParameter = 1

	// OpSetTime carries an 8-byte wall-clock payload to set the device clock
	OpSetTime = 6

	// OpCommand executes a device command, sub-selected by a command code
	OpCommand = 11
)

// Parameter codes for use with OpGetParameter.
//
// The device answers more codes than are listed here; only these have been
// observed and exercised. ParamBatteryVoltage and ParamFirmwareVersion
// return payloads whose layout is undocumented.
const (
	// ParamStatus returns the device status byte (see Status)
	ParamStatus = 100

	// ParamBatteryVoltage returns the battery voltage in unknown units
	ParamBatteryVoltage = 109

	// ParamPresence returns a fixed 8-byte signature when the device is present
	ParamPresence = 200

	// ParamFirmwareVersion returns the firmware version
	ParamFirmwareVersion = 201

	// ParamLabel returns the device label (serial number)
	ParamLabel = 202
)

// Command codes for use with OpCommand.
const (
	// CmdStartRecording starts a recording on the device
	CmdStartRecording = 5

	// CmdStopRecording stops the current recording
	CmdStopRecording = 6
)

// RequestFrameLen is the declared length of the fixed 4-byte request frames
// (header plus the 4-byte checksum trailer).
const RequestFrameLen = 8

// ParameterValueOffset is the fixed offset at which single-byte parameter
// responses (status, label) carry their value.
const ParameterValueOffset = 4

// presenceSignature is the fixed prefix the device returns for a
// ParamPresence request. The trailing four bytes spell "AMS2".
var presenceSignature = []byte{12, 0, 129, 200, 65, 77, 83, 50}

// Marker frame layout.
const (
	// MarkerFrameSize is the marker frame size before the checksum trailer
	MarkerFrameSize = 52

	// MarkerTextOffset is the offset at which the marker text begins
	MarkerTextOffset = 20

	// MarkerTextLimit is the maximum number of marker text characters
	MarkerTextLimit = 32
)

// markerTemplate holds the constant bytes observed in wire captures of the
// official software's marker packets. Their individual meanings are not
// documented; they are reproduced verbatim.
var markerTemplate = [MarkerFrameSize]byte{
	0:  56,
	2:  14,
	4:  3,
	6:  48,
	8:  17,
	9:  17,
	10: 17,
	11: 17,
	12: 1,
	16: 4,
}
