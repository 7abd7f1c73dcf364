// ABOUTME: Music library loader feeding the audio device with byte payloads
// ABOUTME: Resolves track names to files and decodes inline base64 payloads
package assets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio"
)

// Library resolves music identifiers to WAV byte payloads from a directory
// of tracks. The library never decodes containers; the engine does that.
type Library struct {
	dir string
}

// NewLibrary creates a library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Load reads the track for name. A name with no extension maps to
// <dir>/<name>.wav; anything else is treated as a path relative to the
// library root. The declared WAV format is probed and logged when it does
// not match the engine's fixed format, but the bytes are handed over
// regardless — playback degrades rather than fails.
func (l *Library) Load(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("empty track name")
	}

	rel := name
	if filepath.Ext(rel) == "" {
		rel += ".wav"
	}

	path := filepath.Join(l.dir, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track %q: %w", name, err)
	}

	Probe(name, data)
	return data, nil
}

// FromBase64 decodes an inline base64 music payload, as handed over by
// save files and network messages. Whitespace is tolerated.
func FromBase64(encoded string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, nil
}

// Probe inspects a WAV payload's declared format and logs a warning when
// it differs from the engine's fixed 44.1kHz 16-bit stereo format. Raw PCM
// and malformed containers are skipped silently; the engine treats them as
// best-effort PCM either way.
func Probe(name string, data []byte) {
	d := wav.NewDecoder(bytes.NewReader(data))
	d.ReadInfo()
	if !d.IsValidFile() {
		return
	}

	if d.SampleRate != audio.SampleRate ||
		int(d.NumChans) != audio.Channels ||
		int(d.BitDepth) != audio.BitDepth {
		log.Printf("Track %q declares %dHz/%dch/%dbit, engine plays %dHz/%dch/%dbit without resampling",
			name, d.SampleRate, d.NumChans, d.BitDepth,
			audio.SampleRate, audio.Channels, audio.BitDepth)
	}
}
