package engine

// stabilizer smooths the raw per-frame pose label with a majority vote
// over a fixed-size sliding window, suppressing single-frame
// misclassification jitter. Storage is a preallocated ring.
type stabilizer struct {
	buf  []Label
	head int
	size int
}

func newStabilizer(window int) *stabilizer {
	if window < 1 {
		window = 1
	}
	return &stabilizer{buf: make([]Label, window)}
}

// push records the raw label of one frame, evicting the oldest past
// capacity.
func (s *stabilizer) push(l Label) {
	if s.size < len(s.buf) {
		s.buf[(s.head+s.size)%len(s.buf)] = l
		s.size++
		return
	}
	s.buf[s.head] = l
	s.head = (s.head + 1) % len(s.buf)
}

// at returns the i-th label in the window, oldest first.
func (s *stabilizer) at(i int) Label {
	return s.buf[(s.head+i)%len(s.buf)]
}

// vote returns the label with the most occurrences in the window. Ties
// break toward the label first seen earliest in the window (oldest frame
// first), so the result is deterministic rather than an artifact of map
// iteration. Before any frame has been observed the empty Label is
// returned. The window is tiny, so nested linear scans beat a map.
func (s *stabilizer) vote() Label {
	if s.size == 0 {
		return ""
	}

	var best Label
	bestCount := 0

	for i := 0; i < s.size; i++ {
		l := s.at(i)

		// Only count each distinct label at its first occurrence.
		dup := false
		for j := 0; j < i; j++ {
			if s.at(j) == l {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		count := 1
		for j := i + 1; j < s.size; j++ {
			if s.at(j) == l {
				count++
			}
		}

		// Strict > keeps the earliest first-seen label on ties.
		if count > bestCount {
			best = l
			bestCount = count
		}
	}

	return best
}

// reset discards the window contents.
func (s *stabilizer) reset() {
	s.head = 0
	s.size = 0
}
