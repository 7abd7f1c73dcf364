// ABOUTME: Tests for the canonical WAV container writer
// ABOUTME: Verifies header fields against the fixed engine format
package encode

import (
	"encoding/binary"
	"testing"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio"
)

func TestWAVHeader(t *testing.T) {
	pcm := make([]byte, 100)
	container := WAV(pcm)

	if len(container) != 44+len(pcm) {
		t.Fatalf("container length = %d, want %d", len(container), 44+len(pcm))
	}

	if string(container[0:4]) != "RIFF" || string(container[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if string(container[12:16]) != "fmt " || string(container[36:40]) != "data" {
		t.Error("missing fmt/data chunk ids")
	}

	if got := binary.LittleEndian.Uint16(container[22:24]); got != audio.Channels {
		t.Errorf("channels = %d, want %d", got, audio.Channels)
	}
	if got := binary.LittleEndian.Uint32(container[24:28]); got != audio.SampleRate {
		t.Errorf("sample rate = %d, want %d", got, audio.SampleRate)
	}
	if got := binary.LittleEndian.Uint16(container[34:36]); got != audio.BitDepth {
		t.Errorf("bit depth = %d, want %d", got, audio.BitDepth)
	}
	if got := binary.LittleEndian.Uint32(container[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data size = %d, want %d", got, len(pcm))
	}
}
