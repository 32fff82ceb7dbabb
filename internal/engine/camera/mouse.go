package camera

// MouseTracker turns absolute pointer positions into per-sample deltas.
// The first sample only records the reference position and yields a zero
// delta, so locking or centering the pointer never produces a jump.
type MouseTracker struct {
	lastX, lastY float32
	primed       bool
}

// NewMouseTracker creates a tracker that treats its next sample as the
// reference position.
func NewMouseTracker() *MouseTracker {
	return &MouseTracker{}
}

// Sample records the pointer position and returns the movement since the
// previous sample. dy is inverted (moving up is positive) because screen
// y grows downwards.
func (m *MouseTracker) Sample(x, y float32) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
	}

	dx = x - m.lastX
	dy = m.lastY - y
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next sample a reference-only capture again.
func (m *MouseTracker) Reset() {
	m.primed = false
}
