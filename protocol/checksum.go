package protocol

import (
	"encoding/binary"
	"hash/crc32"
)

// ChecksumSize is the length in bytes of the CRC-32 trailer on every frame.
const ChecksumSize = 4

// Checksum computes the CRC-32 of data using the IEEE 802.3 polynomial
// (the same algorithm as zlib's crc32, which the device implements).
func Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// AppendChecksum returns frame with its CRC-32 appended most-significant
// byte first. The input slice is not modified.
func AppendChecksum(frame []byte) []byte {
	out := make([]byte, len(frame), len(frame)+ChecksumSize)
	copy(out, frame)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(frame))
}

// VerifyChecksum reports whether the last ChecksumSize bytes of frame hold
// the CRC-32 of all preceding bytes. Frames shorter than the trailer fail.
func VerifyChecksum(frame []byte) bool {
	if len(frame) < ChecksumSize {
		return false
	}
	body := frame[:len(frame)-ChecksumSize]
	want := binary.BigEndian.Uint32(frame[len(frame)-ChecksumSize:])
	return crc32.ChecksumIEEE(body) == want
}
