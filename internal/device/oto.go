// ABOUTME: Oto output backend
// ABOUTME: Pull model — an io.Reader adapter invokes the fill callback
package device

import (
	"fmt"
	"log"

	"github.com/ebitengine/oto/v3"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio"
)

// Oto drives playback through the oto library. Oto pulls samples by
// reading from an io.Reader; the reader adapter turns each Read into a
// fill callback, which matches the engine's callback contract.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewOto creates an unopened oto backend.
func NewOto() *Oto {
	return &Oto{}
}

// Open creates the oto context in the engine's fixed format and starts a
// player that pulls from fill.
func (o *Oto) Open(fill FillFunc) error {
	op := &oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: audio.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.ctx = ctx
	o.player = ctx.NewPlayer(fillReader{fill})
	o.player.Play()

	log.Printf("Audio device opened: %dHz, %d channels, %d-bit (oto)",
		audio.SampleRate, audio.Channels, audio.BitDepth)

	return nil
}

// Close stops the player and suspends the context. Oto contexts cannot be
// destroyed once created, so suspend is the terminal state.
func (o *Oto) Close() error {
	if o.player != nil {
		if err := o.player.Close(); err != nil {
			log.Printf("Warning: oto player close error: %v", err)
		}
		o.player = nil
	}
	if o.ctx != nil {
		if err := o.ctx.Suspend(); err != nil {
			log.Printf("Warning: oto context suspend error: %v", err)
		}
		o.ctx = nil
	}
	return nil
}

// fillReader adapts the fill callback to oto's reader-based pull model.
type fillReader struct {
	fill FillFunc
}

func (r fillReader) Read(p []byte) (int, error) {
	r.fill(p)
	return len(p), nil
}
