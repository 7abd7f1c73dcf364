// ABOUTME: Tests for format constants and sample helpers
// ABOUTME: Covers int16 clamping and little-endian sample access
package audio

import (
	"testing"
	"time"
)

func TestClampInt16(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int16
	}{
		{"zero", 0, 0},
		{"in range positive", 12345, 12345},
		{"in range negative", -12345, -12345},
		{"max", 32767, 32767},
		{"min", -32768, -32768},
		{"above max", 32768, 32767},
		{"below min", -32769, -32768},
		{"sum of two full scale", 32767 + 32767, 32767},
		{"sum of two full scale negative", -32768 + -32768, -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInt16(tt.in); got != tt.want {
				t.Errorf("ClampInt16(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt16RoundTrip(t *testing.T) {
	b := make([]byte, 8)
	PutInt16(b, 2, -20000)

	if got := Int16At(b, 2); got != -20000 {
		t.Errorf("Int16At = %d, want -20000", got)
	}

	// Little-endian layout
	if b[2] != 0xE0 || b[3] != 0xB1 {
		t.Errorf("unexpected byte layout: % x", b[2:4])
	}
}

func TestDuration(t *testing.T) {
	// One second of stereo 16-bit at 44100Hz is 176400 bytes
	if got := Duration(176400); got != time.Second {
		t.Errorf("Duration(176400) = %v, want 1s", got)
	}
	if got := Bytes(time.Second); got != 176400 {
		t.Errorf("Bytes(1s) = %d, want 176400", got)
	}
}
