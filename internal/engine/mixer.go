// ABOUTME: Per-callback mix of the music and voice channels into one buffer
// ABOUTME: Scale, add, clamp per 16-bit sample; music ducks under voice
package engine

import (
	"math"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio"
)

// voiceDucking attenuates the music bed while a voice line is active.
// Music is lowered, never silenced.
const voiceDucking = 0.3

// mix fills dst from the two channels. dst length is a whole number of
// stereo frames. The caller holds the engine lock for the full duration;
// nothing in this path allocates.
func mix(dst []byte, music, voice *channel, master float64) {
	if len(dst) == 0 {
		return
	}
	for i := range dst {
		dst[i] = 0
	}

	musicGain := music.volume * master
	if voice.active && len(voice.buf) > 0 {
		musicGain *= voiceDucking
	}

	mixChannel(dst, music, musicGain)
	mixChannel(dst, voice, voice.volume*master)
}

// mixChannel adds one channel's samples into dst, scaled by gain and
// clamped to int16 range. The cursor advances past the copied range; a
// looping channel wraps as many times as dst requires, a non-looping
// channel deactivates at end of data and leaves the rest of dst untouched.
func mixChannel(dst []byte, c *channel, gain float64) {
	if !c.active || len(c.buf) == 0 {
		return
	}

	written := 0
	for written < len(dst) {
		remain := len(c.buf) - c.pos
		if remain <= 0 {
			if !c.loop {
				c.clear()
				return
			}
			c.pos = 0
			remain = len(c.buf)
		}

		n := len(dst) - written
		if n > remain {
			n = remain
		}

		for i := 0; i+1 < n; i += 2 {
			s := audio.Int16At(c.buf, c.pos+i)
			scaled := int(math.Round(float64(s) * gain))
			mixed := int(audio.Int16At(dst, written+i)) + scaled
			audio.PutInt16(dst, written+i, audio.ClampInt16(mixed))
		}

		c.pos += n
		written += n
	}

	if !c.loop && c.pos >= len(c.buf) {
		c.clear()
	}
}
