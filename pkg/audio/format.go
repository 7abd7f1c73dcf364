// ABOUTME: Fixed audio format constants and sample helpers
// ABOUTME: Everything the engine touches is 44.1kHz 16-bit LE stereo PCM
package audio

import (
	"encoding/binary"
	"time"
)

// The engine runs one format for its whole lifetime. Decoded payloads are
// assumed to conform; no resampling is performed.
const (
	SampleRate = 44100
	Channels   = 2
	BitDepth   = 16

	// BytesPerSample is the width of one 16-bit sample.
	BytesPerSample = BitDepth / 8

	// FrameSize is the byte width of one interleaved stereo frame.
	FrameSize = Channels * BytesPerSample
)

// ClampInt16 saturates v to the signed 16-bit range.
func ClampInt16(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Int16At reads the little-endian sample starting at byte offset i.
func Int16At(b []byte, i int) int16 {
	return int16(binary.LittleEndian.Uint16(b[i:]))
}

// PutInt16 writes sample v little-endian at byte offset i.
func PutInt16(b []byte, i int, v int16) {
	binary.LittleEndian.PutUint16(b[i:], uint16(v))
}

// Duration returns the playback time of n PCM bytes in the fixed format.
func Duration(n int) time.Duration {
	frames := n / FrameSize
	return time.Duration(frames) * time.Second / SampleRate
}

// Bytes returns the PCM byte count covering d of playback, rounded down to
// a whole frame.
func Bytes(d time.Duration) int {
	frames := int(d * SampleRate / time.Second)
	return frames * FrameSize
}
