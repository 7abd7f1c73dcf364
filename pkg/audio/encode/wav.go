// ABOUTME: Canonical PCM16 WAV container writer
// ABOUTME: Wraps raw PCM in a fixed 44-byte RIFF/WAVE header
package encode

import (
	"bytes"
	"encoding/binary"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio"
)

// WAV wraps raw PCM bytes in a canonical RIFF/WAVE container using the
// engine's fixed format (44100Hz, 16-bit, stereo). The layout is the
// minimal 44-byte header: RIFF descriptor, 16-byte fmt chunk, data chunk.
func WAV(pcm []byte) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(44 + len(pcm))

	byteRate := uint32(audio.SampleRate * audio.FrameSize)
	dataSize := uint32(len(pcm))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))                // fmt chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))                 // PCM
	binary.Write(buf, binary.LittleEndian, uint16(audio.Channels))    // channels
	binary.Write(buf, binary.LittleEndian, uint32(audio.SampleRate))  // sample rate
	binary.Write(buf, binary.LittleEndian, byteRate)                  // byte rate
	binary.Write(buf, binary.LittleEndian, uint16(audio.FrameSize))   // block align
	binary.Write(buf, binary.LittleEndian, uint16(audio.BitDepth))    // bits per sample

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(pcm)

	return buf.Bytes()
}
