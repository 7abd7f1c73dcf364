// ABOUTME: Headless backend with no native device
// ABOUTME: Tests and CI drive the fill callback by hand through Fill
package device

// Headless satisfies Backend without touching audio hardware. Callers
// invoke Fill themselves, standing in for the driver thread.
type Headless struct {
	fill FillFunc
	open bool
}

// NewHeadless creates an unopened headless backend.
func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Open(fill FillFunc) error {
	h.fill = fill
	h.open = true
	return nil
}

func (h *Headless) Close() error {
	h.fill = nil
	h.open = false
	return nil
}

// Fill invokes the registered callback the way a driver would. No-op when
// the backend is not open.
func (h *Headless) Fill(dst []byte) {
	if h.open && h.fill != nil {
		h.fill(dst)
	}
}

// IsOpen reports whether Open has been called without a matching Close.
func (h *Headless) IsOpen() bool {
	return h.open
}
