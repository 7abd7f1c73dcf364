// ABOUTME: Output backend interface for the audio device layer
// ABOUTME: A backend owns the native handle and drives the fill callback
package device

// FillFunc is invoked from the driver's thread to fill one output buffer
// with interleaved 16-bit LE stereo PCM. It must not block or allocate.
type FillFunc func(dst []byte)

// Backend abstracts one native audio output. Open registers fill as the
// periodic callback and starts playback; Close releases the native handle.
// Exactly one Open/Close cycle per backend instance.
type Backend interface {
	Open(fill FillFunc) error
	Close() error
}
