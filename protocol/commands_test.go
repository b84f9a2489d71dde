package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFrame(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want []byte
	}{
		{
			name: "status request",
			vals: []int{8, 0, 1, 100},
			want: []byte{8, 0, 1, 100, 0xB7, 0x34, 0x63, 0xF3},
		},
		{
			name: "negative values wrap modulo 256",
			vals: []int{-1, -256},
			want: AppendChecksum([]byte{255, 0}),
		},
		{
			name: "values above 255 wrap modulo 256",
			vals: []int{300, 256, 511},
			want: AppendChecksum([]byte{44, 0, 255}),
		},
		{
			name: "empty input",
			vals: nil,
			want: []byte{0x00, 0x00, 0x00, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFrame(tt.vals)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.vals)+ChecksumSize)
		})
	}
}

func TestBuildFrameDeterministic(t *testing.T) {
	vals := []int{8, 0, 11, 5}
	assert.Equal(t, BuildFrame(vals), BuildFrame(vals))
}

func TestBuildParameterRequest(t *testing.T) {
	tests := []struct {
		name  string
		param byte
		want  []byte
	}{
		{
			name:  "status",
			param: ParamStatus,
			want:  []byte{8, 0, 1, 100, 0xB7, 0x34, 0x63, 0xF3},
		},
		{
			name:  "presence",
			param: ParamPresence,
			want:  []byte{8, 0, 1, 200, 0x68, 0x54, 0x8C, 0x30},
		},
		{
			name:  "label",
			param: ParamLabel,
			want:  []byte{8, 0, 1, 202, 0x86, 0x5A, 0xED, 0x1C},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildParameterRequest(tt.param))
		})
	}
}

func TestBuildCommandRequest(t *testing.T) {
	tests := []struct {
		name string
		cmd  byte
		want []byte
	}{
		{
			name: "start recording",
			cmd:  CmdStartRecording,
			want: []byte{8, 0, 11, 5, 0x77, 0x6E, 0xDA, 0xB7},
		},
		{
			name: "stop recording",
			cmd:  CmdStopRecording,
			want: []byte{8, 0, 11, 6, 0xEE, 0x67, 0x8B, 0x0D},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildCommandRequest(tt.cmd))
		})
	}
}

func TestBuildTimeSyncRequest(t *testing.T) {
	// Thursday, no DST in UTC
	ts := time.Date(2024, time.February, 1, 12, 34, 56, 0, time.UTC)

	want := []byte{
		16, 0, 6, 0, // header: declared length 16, set-time opcode
		124, 1, 1, 12, 34, 56, 0, 4, // year-1900, 0-based month, day, h, m, s, dst, ISO weekday
		0x0E, 0xD9, 0xFD, 0x9F,
	}
	assert.Equal(t, want, BuildTimeSyncRequest(ts))
}

func TestBuildTimeSyncRequestWeekdays(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want byte // ISO weekday, Monday=1 .. Sunday=7
	}{
		{name: "Monday", date: time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "Thursday", date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), want: 4},
		{name: "Sunday", date: time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildTimeSyncRequest(tt.date)
			require.Len(t, frame, 16)
			assert.Equal(t, tt.want, frame[11])
		})
	}
}

func TestNormalizeMarkerText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain ASCII passes through",
			input: "baseline start",
			want:  "baseline start",
		},
		{
			name:  "truncated to 32 characters",
			input: "0123456789012345678901234567890123456789",
			want:  "01234567890123456789012345678901",
		},
		{
			name:  "non-ASCII replaced with underscore",
			input: "café ☕",
			want:  "caf_ _",
		},
		{
			name:  "literal question mark replaced",
			input: "really?",
			want:  "really_",
		},
		{
			name:  "control characters replaced",
			input: "a\tb\nc",
			want:  "a_b_c",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMarkerText(tt.input))
		})
	}
}

func TestBuildMarkerRequest(t *testing.T) {
	frame := BuildMarkerRequest("TEST")
	require.Len(t, frame, MarkerFrameSize+ChecksumSize)

	// Template constants preserved at their fixed positions
	wantTemplate := map[int]byte{0: 56, 2: 14, 4: 3, 6: 48, 8: 17, 9: 17, 10: 17, 11: 17, 12: 1, 16: 4}
	for idx, val := range wantTemplate {
		assert.Equal(t, val, frame[idx], "template byte at index %d", idx)
	}

	// Text at MarkerTextOffset, zero padding around it
	assert.Equal(t, []byte("TEST"), frame[MarkerTextOffset:MarkerTextOffset+4])
	for i := MarkerTextOffset + 4; i < MarkerFrameSize; i++ {
		assert.Zero(t, frame[i], "padding byte at index %d", i)
	}

	assert.Equal(t, []byte{0x07, 0x0C, 0xE7, 0xF3}, frame[MarkerFrameSize:])
}

func TestBuildMarkerRequestTruncation(t *testing.T) {
	long := "0123456789012345678901234567890123456789" // 40 characters
	frame := BuildMarkerRequest(long)

	require.Len(t, frame, MarkerFrameSize+ChecksumSize)
	assert.Equal(t, []byte(long[:MarkerTextLimit]), frame[MarkerTextOffset:MarkerTextOffset+MarkerTextLimit])
}

func BenchmarkBuildFrame(b *testing.B) {
	vals := []int{8, 0, 1, 100}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildFrame(vals)
	}
}

func BenchmarkBuildMarkerRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildMarkerRequest("benchmark marker text")
	}
}
