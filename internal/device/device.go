// ABOUTME: Audio device lifecycle and the control surface the game calls
// ABOUTME: Uninitialized -> Open -> Closed, degrading to silent no-ops
package device

import (
	"log"
	"sync"

	"github.com/xilonoide/xiloadventures-sub008/internal/engine"
)

// State is the device lifecycle position. There is no transition out of
// StateClosed.
type State int

const (
	StateUninitialized State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Device owns the native output through its backend and fronts the mixing
// engine with the control surface the game layer calls. When the backend
// cannot be opened the device stays functional but silent: every playback
// call becomes a no-op instead of an error, because sound is an
// enhancement, never a gameplay dependency.
type Device struct {
	mu      sync.Mutex
	engine  *engine.Engine
	backend Backend
	state   State
}

// New creates a device over the given backend. The backend is not opened
// until Initialize.
func New(backend Backend) *Device {
	return &Device{
		engine:  engine.New(),
		backend: backend,
	}
}

// Engine exposes the underlying mixing engine. Used by the headless
// backend's callers and by code that reads volumes.
func (d *Device) Engine() *engine.Engine {
	return d.engine
}

// Initialize opens the backend with the engine's fill routine registered
// as the periodic callback. Returns true when sound is available. Calling
// it again after success is a no-op returning true; after Dispose it
// returns false. Open failure is logged and leaves the device silent.
func (d *Device) Initialize() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case StateOpen:
		return true
	case StateClosed:
		return false
	}

	if err := d.backend.Open(d.engine.Fill); err != nil {
		log.Printf("Sound unavailable: %v", err)
		return false
	}

	d.state = StateOpen
	return true
}

// Dispose stops both channels, closes the backend, and seals the device.
// Safe to call repeatedly and safe when Initialize never ran or failed.
func (d *Device) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateClosed {
		return
	}

	d.engine.StopMusic()
	d.engine.StopVoice()

	if d.state == StateOpen {
		if err := d.backend.Close(); err != nil {
			log.Printf("Warning: backend close error: %v", err)
		}
	}

	d.state = StateClosed
}

// State returns the current lifecycle state.
func (d *Device) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// sound reports whether playback calls should reach the engine.
func (d *Device) sound() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == StateOpen
}

// PlayMusic starts data (WAV or raw PCM) on the music bed. No-op while
// sound is unavailable.
func (d *Device) PlayMusic(data []byte, loop bool) {
	if !d.sound() {
		return
	}
	d.engine.PlayMusic(data, loop)
}

// PlayVoice starts data (WAV or raw PCM) on the voice channel. Voice
// lines never loop. No-op while sound is unavailable.
func (d *Device) PlayVoice(data []byte) {
	if !d.sound() {
		return
	}
	d.engine.PlayVoice(data)
}

// StopMusic halts the music bed.
func (d *Device) StopMusic() { d.engine.StopMusic() }

// StopVoice halts the voice channel.
func (d *Device) StopVoice() { d.engine.StopVoice() }

// SetMasterVolume sets the gain applied to both channels, clamped to [0,1].
func (d *Device) SetMasterVolume(v float64) { d.engine.SetMasterVolume(v) }

// SetMusicVolume sets the music channel gain, clamped to [0,1].
func (d *Device) SetMusicVolume(v float64) { d.engine.SetMusicVolume(v) }

// SetVoiceVolume sets the voice channel gain, clamped to [0,1].
func (d *Device) SetVoiceVolume(v float64) { d.engine.SetVoiceVolume(v) }

// IsVoicePlaying reports whether a voice line is still being consumed.
func (d *Device) IsVoicePlaying() bool { return d.engine.IsVoicePlaying() }

// IsMusicPlaying reports whether the music bed is active.
func (d *Device) IsMusicPlaying() bool { return d.engine.IsMusicPlaying() }
