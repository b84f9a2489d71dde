package protocol

import "time"

// BuildFrame assembles a complete frame from the given values and appends
// the CRC-32 trailer. Each value is reduced modulo 256: negative values and
// values above 255 wrap around rather than being rejected, matching the
// official software's behavior.
//
// The output length is always len(vals) + ChecksumSize, and the result is
// deterministic for identical input.
func BuildFrame(vals []int) []byte {
	frame := make([]byte, len(vals))
	for i, v := range vals {
		// byte conversion wraps modulo 256
		frame[i] = byte(v)
	}
	return AppendChecksum(frame)
}

// BuildParameterRequest constructs a get-parameter request frame.
//
// Frame structure:
//
//	[LEN=8][0x00][OpGetParameter][PARAM][CRC32(4)]
func BuildParameterRequest(param byte) []byte {
	return AppendChecksum([]byte{RequestFrameLen, 0, OpGetParameter, param})
}

// BuildCommandRequest constructs a device command request frame.
//
// Frame structure:
//
//	[LEN=8][0x00][OpCommand][CMD][CRC32(4)]
func BuildCommandRequest(cmd byte) []byte {
	return AppendChecksum([]byte{RequestFrameLen, 0, OpCommand, cmd})
}

// BuildTimeSyncRequest constructs a set-time request frame carrying the
// wall-clock fields of t in its own location.
//
// Frame structure:
//
//	[LEN=16][0x00][OpSetTime][0x00][YEAR-1900][MONTH][DAY][HOUR][MIN][SEC][DST][WEEKDAY][CRC32(4)]
//
// MONTH is zero-based (the device follows the Java Calendar convention),
// DST is 1 when t is in daylight-saving time, and WEEKDAY is the ISO
// weekday (Monday=1 through Sunday=7).
func BuildTimeSyncRequest(t time.Time) []byte {
	dst := byte(0)
	if t.IsDST() {
		dst = 1
	}
	payload := []byte{
		byte(t.Year() - 1900),
		byte(int(t.Month()) - 1),
		byte(t.Day()),
		byte(t.Hour()),
		byte(t.Minute()),
		byte(t.Second()),
		dst,
		byte((int(t.Weekday())+6)%7 + 1),
	}

	frame := make([]byte, 0, 4+len(payload)+ChecksumSize)
	frame = append(frame, byte(4+len(payload)+ChecksumSize), 0, OpSetTime, 0)
	frame = append(frame, payload...)
	return AppendChecksum(frame)
}

// BuildMarkerRequest constructs a marker frame carrying the normalized text
// starting at MarkerTextOffset. The remaining frame bytes come from the
// fixed template captured from the official software; see NormalizeMarkerText
// for the text rules.
//
// The device timestamps the marker into its own recording stream and sends
// no reply, so callers should not wait for one.
func BuildMarkerRequest(text string) []byte {
	frame := markerTemplate
	copy(frame[MarkerTextOffset:], NormalizeMarkerText(text))
	return AppendChecksum(frame[:])
}

// NormalizeMarkerText applies the marker text rules: truncate to
// MarkerTextLimit characters and replace everything outside printable ASCII
// with an underscore. Literal question marks are replaced as well, because
// '?' doubles as the replacement placeholder in the official software.
func NormalizeMarkerText(s string) string {
	runes := []rune(s)
	if len(runes) > MarkerTextLimit {
		runes = runes[:MarkerTextLimit]
	}
	out := make([]byte, len(runes))
	for i, r := range runes {
		if r < 0x20 || r > 0x7E || r == '?' {
			out[i] = '_'
		} else {
			out[i] = byte(r)
		}
	}
	return string(out)
}
