// ABOUTME: Permissive RIFF/WAVE to raw PCM extraction
// ABOUTME: Always returns best-effort PCM bytes, never an error
package decode

import (
	"bytes"
	"encoding/binary"
)

// headerSize is the canonical PCM WAV header length: RIFF descriptor,
// fmt chunk, and the data chunk header.
const headerSize = 44

var (
	riffID = []byte("RIFF")
	waveID = []byte("WAVE")
	dataID = []byte("data")
)

// WAV extracts the raw PCM payload from a RIFF/WAVE container.
//
// Anything that does not look like a WAV container is treated as raw PCM
// and passed through unchanged: buffers shorter than the canonical header,
// buffers without the RIFF/WAVE magic. Malformed containers degrade rather
// than fail — if no data chunk is found the bytes after the canonical
// 44-byte header are returned. The data-chunk path returns a copy, so the
// caller never holds a view into the container.
func WAV(data []byte) []byte {
	if len(data) < headerSize {
		return data
	}
	if !bytes.Equal(data[0:4], riffID) || !bytes.Equal(data[8:12], waveID) {
		return data
	}

	// Walk chunks after the RIFF descriptor. Chunks are padded to even
	// length, so an odd payload carries one trailing pad byte.
	off := 12
	for off+8 <= len(data) {
		id := data[off : off+4]
		length := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		off += 8

		if bytes.Equal(id, dataID) {
			n := length
			if rem := len(data) - off; n > rem {
				n = rem
			}
			pcm := make([]byte, n)
			copy(pcm, data[off:off+n])
			return pcm
		}

		off += length
		if length%2 == 1 {
			off++
		}
	}

	// No data chunk located; assume the canonical header layout.
	pcm := make([]byte, len(data)-headerSize)
	copy(pcm, data[headerSize:])
	return pcm
}
