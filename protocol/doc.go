// Package protocol implements the VU-AMS serial command/response protocol.
//
// This package provides functions to build command frames and decode response
// frames for the VU-AMS ambulatory monitoring device, as spoken over the AMS
// USB infrared bridge. The protocol is closed and versionless: it was
// reverse-engineered from wire captures of the official VU-DAMS software, so
// frames carry no self-describing structure beyond a declared length and a
// checksum trailer.
//
// # Frame Structure
//
// Every outbound frame follows the same convention:
//
//	[LEN][0x00][OPCODE][SELECTOR][PAYLOAD...][CRC32(4)]
//
// Where:
//   - LEN = total frame length in bytes, including the 4-byte checksum
//   - OPCODE = the device operation (OpGetParameter, OpSetTime, OpCommand)
//   - SELECTOR = parameter code or command code, depending on the opcode
//   - CRC32 = CRC-32 (IEEE 802.3 / zlib polynomial) of all preceding bytes,
//     appended most-significant byte first
//
// # Command Builders
//
// Use the Build* functions to create complete, checksummed frames:
//
//	frame := protocol.BuildParameterRequest(protocol.ParamStatus)
//	frame := protocol.BuildCommandRequest(protocol.CmdStartRecording)
//	frame := protocol.BuildTimeSyncRequest(time.Now())
//	frame := protocol.BuildMarkerRequest("baseline start")
//
// # Response Decoders
//
// Responses are not self-describing; the caller must know which request
// produced the bytes and pick the matching decoder:
//
//	if protocol.IsPresenceConfirmation(resp) { ... }
//	status, err := protocol.DecodeStatus(resp)
//	label, err := protocol.DecodeLabel(resp)
//
// Decoders validate minimum length before touching fixed offsets and return
// a *DecodeError rather than panicking on short input.
//
// # Error Handling
//
// Malformed responses surface as typed errors:
//
//	var decodeErr *protocol.DecodeError
//	if errors.As(err, &decodeErr) { ... }
//
//	var statusErr *protocol.UnknownStatusError
//	if errors.As(err, &statusErr) { ... }
package protocol
