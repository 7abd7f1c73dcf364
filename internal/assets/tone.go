// ABOUTME: Sine tone generator for device verification
// ABOUTME: Produces stereo PCM in the engine's fixed format
package assets

import (
	"math"
	"time"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio"
)

// Tone generates d of a stereo sine wave at freq Hz with amplitude in
// [0,1] of full scale. Used by the soundcheck tool and tests as a music
// bed with a known waveform.
func Tone(freq float64, amplitude float64, d time.Duration) []byte {
	if amplitude < 0 {
		amplitude = 0
	}
	if amplitude > 1 {
		amplitude = 1
	}

	n := audio.Bytes(d)
	pcm := make([]byte, n)
	scale := amplitude * 32767

	for f := 0; f < n/audio.FrameSize; f++ {
		v := int16(math.Round(scale * math.Sin(2*math.Pi*freq*float64(f)/audio.SampleRate)))
		audio.PutInt16(pcm, f*audio.FrameSize, v)
		audio.PutInt16(pcm, f*audio.FrameSize+2, v)
	}
	return pcm
}
