// ABOUTME: Two-channel mixing engine behind the game's audio control surface
// ABOUTME: One lock serializes control mutations against the driver callback
package engine

import (
	"sync"

	"github.com/xilonoide/xiloadventures-sub008/pkg/audio/decode"
)

// Engine owns the music and voice channels and the master volume. Control
// calls arrive from the game and UI goroutines; Fill is invoked from the
// audio driver's thread. A single mutex serializes both sides so the
// callback never observes a torn buffer/cursor pair.
type Engine struct {
	mu     sync.Mutex
	music  channel
	voice  channel
	master float64
}

// New creates an engine with both channels empty and all volumes at full.
func New() *Engine {
	return &Engine{
		music:  channel{volume: 1},
		voice:  channel{volume: 1},
		master: 1,
	}
}

// PlayMusic decodes data (WAV container or raw PCM) and starts it on the
// music channel, replacing whatever was playing. An empty payload stops
// the channel instead. Decoding happens before the lock is taken; only
// the buffer swap runs under it.
func (e *Engine) PlayMusic(data []byte, loop bool) {
	pcm := decode.WAV(data)
	if len(pcm) == 0 {
		e.StopMusic()
		return
	}

	e.mu.Lock()
	e.music.set(pcm, loop)
	e.mu.Unlock()
}

// PlayVoice decodes data and starts it on the voice channel. Voice lines
// never loop. An empty payload stops the channel.
func (e *Engine) PlayVoice(data []byte) {
	pcm := decode.WAV(data)
	if len(pcm) == 0 {
		e.StopVoice()
		return
	}

	e.mu.Lock()
	e.voice.set(pcm, false)
	e.mu.Unlock()
}

// StopMusic halts the music channel and drops its buffer. Idempotent.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	e.music.clear()
	e.mu.Unlock()
}

// StopVoice halts the voice channel and drops its buffer. Idempotent.
func (e *Engine) StopVoice() {
	e.mu.Lock()
	e.voice.clear()
	e.mu.Unlock()
}

// SetMasterVolume sets the gain applied to both channels, clamped to [0,1].
func (e *Engine) SetMasterVolume(v float64) {
	e.mu.Lock()
	e.master = clampVolume(v)
	e.mu.Unlock()
}

// SetMusicVolume sets the music channel gain, clamped to [0,1].
func (e *Engine) SetMusicVolume(v float64) {
	e.mu.Lock()
	e.music.volume = clampVolume(v)
	e.mu.Unlock()
}

// SetVoiceVolume sets the voice channel gain, clamped to [0,1].
func (e *Engine) SetVoiceVolume(v float64) {
	e.mu.Lock()
	e.voice.volume = clampVolume(v)
	e.mu.Unlock()
}

// IsVoicePlaying reports whether a voice line is still being consumed.
// Callers use it to hold the next dialogue line until this one finishes.
func (e *Engine) IsVoicePlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voice.active
}

// IsMusicPlaying reports whether the music channel is active.
func (e *Engine) IsMusicPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.music.active
}

// MusicVolume returns the current music channel gain.
func (e *Engine) MusicVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.music.volume
}

// VoiceVolume returns the current voice channel gain.
func (e *Engine) VoiceVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voice.volume
}

// MasterVolume returns the current master gain.
func (e *Engine) MasterVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.master
}

// Fill mixes both channels into dst. It is the periodic callback handed to
// the device backend and runs on the driver's thread; the lock is held only
// for the mix itself and the path does no I/O or allocation.
func (e *Engine) Fill(dst []byte) {
	if len(dst) == 0 {
		return
	}

	e.mu.Lock()
	mix(dst, &e.music, &e.voice, e.master)
	e.mu.Unlock()
}
