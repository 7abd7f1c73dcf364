// ABOUTME: Malgo (miniaudio) output backend
// ABOUTME: True driver-thread data callback, the primary playback path
package device

import (
	"fmt"
	"log"

	"github.com/gen2brain/malgo"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio"
)

// Malgo drives a miniaudio playback device. The library invokes the data
// callback on its own thread at a period set by the device buffer size.
type Malgo struct {
	ctx    *malgo.AllocatedContext
	device *malgo.Device
}

// NewMalgo creates an unopened malgo backend.
func NewMalgo() *Malgo {
	return &Malgo{}
}

// Open starts the miniaudio context, opens one playback device in the
// engine's fixed format, registers fill as the data callback, and starts
// the device so the callback begins firing.
func (m *Malgo) Open(fill FillFunc) error {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize malgo context: %w", err)
	}

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = audio.Channels
	config.SampleRate = audio.SampleRate
	config.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, pInput []byte, frameCount uint32) {
			fill(pOutput)
		},
	}

	dev, err := malgo.InitDevice(ctx.Context, config, callbacks)
	if err != nil {
		uninitContext(ctx)
		return fmt.Errorf("failed to open playback device: %w", err)
	}

	if err := dev.Start(); err != nil {
		dev.Uninit()
		uninitContext(ctx)
		return fmt.Errorf("failed to start playback device: %w", err)
	}

	m.ctx = ctx
	m.device = dev

	log.Printf("Audio device opened: %dHz, %d channels, %d-bit (malgo)",
		audio.SampleRate, audio.Channels, audio.BitDepth)

	return nil
}

// Close stops the device, releases the callback registration, and shuts
// down the miniaudio context. Safe to call when Open never succeeded.
func (m *Malgo) Close() error {
	if m.device != nil {
		if err := m.device.Stop(); err != nil {
			log.Printf("Warning: device stop error: %v", err)
		}
		m.device.Uninit()
		m.device = nil
	}
	if m.ctx != nil {
		uninitContext(m.ctx)
		m.ctx = nil
	}
	return nil
}

func uninitContext(ctx *malgo.AllocatedContext) {
	if err := ctx.Uninit(); err != nil {
		log.Printf("Warning: malgo context uninit error: %v", err)
	}
	ctx.Free()
}
