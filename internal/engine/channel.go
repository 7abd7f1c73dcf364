// ABOUTME: Single logical audio source with cursor, loop flag, and volume
// ABOUTME: Two instances exist per engine, the music bed and the voice line
package engine

// channel holds one playable PCM buffer and its read cursor. All fields
// except volume are guarded by the engine lock; volume is read and written
// under the same lock for simplicity.
type channel struct {
	buf    []byte
	pos    int
	active bool
	loop   bool
	volume float64
}

// set replaces the channel's buffer and restarts playback. The old buffer
// is dropped; ownership of pcm moves to the channel.
func (c *channel) set(pcm []byte, loop bool) {
	c.buf = pcm
	c.pos = 0
	c.active = true
	c.loop = loop
}

// clear stops the channel and releases its buffer. Idempotent.
func (c *channel) clear() {
	c.buf = nil
	c.pos = 0
	c.active = false
}

// clampVolume bounds v to [0,1].
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
