package engine

import "github.com/ayusman/mudra/internal/detector"

// Tracker keeps a bounded history of hand-center positions for one hand
// slot and derives velocity from it. It is purely additive state and
// never classifies. Storage is a preallocated ring, so pushes are O(1)
// and allocation-free.
type Tracker struct {
	buf  []detector.Point3D
	head int // index of the oldest sample
	size int
}

// NewTracker creates a Tracker holding at most capacity samples.
// Capacities below two are raised to two so velocity is always defined.
func NewTracker(capacity int) *Tracker {
	if capacity < 2 {
		capacity = 2
	}
	return &Tracker{buf: make([]detector.Point3D, capacity)}
}

// Push records a new center, evicting the oldest sample past capacity.
func (t *Tracker) Push(p detector.Point3D) {
	if t.size < len(t.buf) {
		t.buf[(t.head+t.size)%len(t.buf)] = p
		t.size++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

// Len returns the number of recorded samples.
func (t *Tracker) Len() int {
	return t.size
}

// At returns the i-th recorded sample, oldest first.
func (t *Tracker) At(i int) detector.Point3D {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Velocity returns the per-frame displacement between the two most
// recent centers, or (0, 0) when fewer than two samples exist.
func (t *Tracker) Velocity() (vx, vy float64) {
	if t.size < 2 {
		return 0, 0
	}
	cur := t.At(t.size - 1)
	prev := t.At(t.size - 2)
	return cur.X - prev.X, cur.Y - prev.Y
}

// Reset discards all recorded samples.
func (t *Tracker) Reset() {
	t.head = 0
	t.size = 0
}
