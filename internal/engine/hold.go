package engine

import "time"

// holdState tracks how long one slot's stabilized label has persisted
// and whether its action has already fired. A fired hold stays latched
// until the stabilized label changes, so a sustained pose triggers its
// action exactly once; the user must visibly change gesture (even
// transiently, through "unknown") before the same pose can fire again.
type holdState struct {
	current Label
	since   time.Time
	fired   bool
}

// observe feeds the current stabilized label into the hold machine.
// It reports whether the fire threshold was crossed on this frame and
// whether the hold has passed the lighter UI threshold.
func (h *holdState) observe(label Label, now time.Time, fireAfter, uiAfter time.Duration) (fire, engaged bool) {
	if label != h.current {
		h.current = label
		h.since = now
		h.fired = false
		return false, false
	}

	held := now.Sub(h.since)
	engaged = held >= uiAfter

	if !h.fired && held >= fireAfter {
		h.fired = true
		return true, engaged
	}
	return false, engaged
}

// reset returns the hold machine to its idle state.
func (h *holdState) reset() {
	*h = holdState{}
}
