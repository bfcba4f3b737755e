// Package engine turns per-frame streams of hand skeletal landmarks into
// discrete, debounced gesture events. Raw per-frame pose classifications
// are smoothed by a sliding-window majority vote, combined with motion
// detectors over bounded position history, and gated by a fire-once hold
// state machine so a sustained pose triggers its action exactly once.
//
// The engine is synchronous and single-threaded: one caller invokes
// Ingest once per captured frame per hand. All per-slot state is owned
// by the Engine value; there are no hidden globals.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// ErrInvalidFrame is returned when a hand frame fails validation.
var ErrInvalidFrame = errors.New("invalid hand frame")

// HandFrame is one detector observation of a single hand: exactly
// detector.NumLandmarks points in a consistent coordinate space, the
// hand slot it belongs to, and a monotonic capture timestamp.
type HandFrame struct {
	Slot       int
	Handedness Handedness
	Points     []detector.Point3D
	Timestamp  time.Time
}

// Event is the per-frame label snapshot for one hand slot, emitted on
// every ingested frame independent of firing.
type Event struct {
	Slot       int       `json:"slot"`
	Raw        Label     `json:"raw"`
	Stabilized Label     `json:"stabilized"`
	Dynamic    []Label   `json:"dynamic,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Action is the fire-once result produced when a stabilized pose has
// been held past the fire threshold.
type Action struct {
	Slot      int       `json:"slot"`
	Gesture   Label     `json:"gesture"`
	Tag       string    `json:"tag"`
	Timestamp time.Time `json:"timestamp"`
}

// Result bundles everything the engine produces for one ingested frame:
// the event, the UI-feedback hold flag, and at most one action.
type Result struct {
	Event   Event   `json:"event"`
	Engaged bool    `json:"engaged"`
	Action  *Action `json:"action,omitempty"`
}

// slotState is the mutable per-hand-slot state. The engine is its sole
// owner and mutator; slots never interact.
type slotState struct {
	tracker  *Tracker
	stab     *stabilizer
	hold     holdState
	radii    []float64 // scratch for the circle detector
	dynamic  []Label   // scratch for the dynamic label set
	lastSeen time.Time
}

func newSlotState(cfg Config) *slotState {
	return &slotState{
		tracker: NewTracker(cfg.PositionHistory),
		stab:    newStabilizer(cfg.StabilizerWindow),
		radii:   make([]float64, 0, cfg.CircleWindow),
		dynamic: make([]Label, 0, 8),
	}
}

func (s *slotState) reset() {
	s.tracker.Reset()
	s.stab.reset()
	s.hold.reset()
	s.radii = s.radii[:0]
	s.dynamic = s.dynamic[:0]
	s.lastSeen = time.Time{}
}

// Engine ingests hand landmark frames and emits gesture events and
// fire-once actions. It is not safe for concurrent use; the capture
// loop owns it.
type Engine struct {
	cfg   Config
	slots []*slotState
}

// New creates an Engine. Zero-valued Config fields fall back to the
// DefaultConfig values.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		cfg:   cfg,
		slots: make([]*slotState, cfg.MaxHands),
	}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetThresholds replaces the detector thresholds and hold durations
// while preserving per-slot history, so tuning does not interrupt a
// hold in progress. Structural fields (MaxHands, window and history
// capacities) keep their current values.
func (e *Engine) SetThresholds(cfg Config) {
	cfg = cfg.withDefaults()
	cfg.MaxHands = e.cfg.MaxHands
	cfg.StabilizerWindow = e.cfg.StabilizerWindow
	cfg.PositionHistory = e.cfg.PositionHistory
	if cfg.WaveWindow > e.cfg.PositionHistory {
		cfg.WaveWindow = e.cfg.PositionHistory
	}
	if cfg.CircleWindow > e.cfg.PositionHistory {
		cfg.CircleWindow = e.cfg.PositionHistory
	}
	e.cfg = cfg
}

// Ingest processes one hand frame and returns the per-frame result.
// Frames with a landmark count other than detector.NumLandmarks or a
// slot outside [0, MaxHands) are rejected with ErrInvalidFrame and
// leave all state untouched. A hand missing from a captured frame is
// simply not ingested that frame: brief detection dropouts keep their
// state, while a slot unseen for longer than DropoutTimeout is reset
// before its next frame is processed.
func (e *Engine) Ingest(frame HandFrame) (Result, error) {
	if len(frame.Points) != detector.NumLandmarks {
		return Result{}, fmt.Errorf("%w: %d landmarks, want %d",
			ErrInvalidFrame, len(frame.Points), detector.NumLandmarks)
	}
	if frame.Slot < 0 || frame.Slot >= len(e.slots) {
		return Result{}, fmt.Errorf("%w: slot %d outside [0, %d)",
			ErrInvalidFrame, frame.Slot, len(e.slots))
	}

	now := frame.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	s := e.slots[frame.Slot]
	if s == nil {
		s = newSlotState(e.cfg)
		e.slots[frame.Slot] = s
	} else if e.cfg.DropoutTimeout > 0 && !s.lastSeen.IsZero() &&
		now.Sub(s.lastSeen) > e.cfg.DropoutTimeout {
		// The hand left the frame long enough ago that resuming the
		// old vote window or hold would be wrong.
		s.reset()
	}
	s.lastSeen = now

	center, err := Center(frame.Points)
	if err != nil {
		return Result{}, err
	}
	s.tracker.Push(center)

	fingers := classifyFingers(frame.Points, frame.Handedness)
	raw := classifyStatic(fingers)
	s.stab.push(raw)
	stabilized := s.stab.vote()

	s.dynamic = detectDynamic(e.cfg, frame.Points, s.tracker, s.radii, s.dynamic[:0])

	res := Result{
		Event: Event{
			Slot:       frame.Slot,
			Raw:        raw,
			Stabilized: stabilized,
			Timestamp:  now,
		},
	}
	if len(s.dynamic) > 0 {
		// The event escapes to callers (store, websocket); hand them a
		// copy rather than the scratch buffer.
		res.Event.Dynamic = append([]Label(nil), s.dynamic...)
	}

	fire, engaged := s.hold.observe(stabilized, now, e.cfg.FireHold, e.cfg.UIHold)
	res.Engaged = engaged
	if fire {
		if tag, ok := ActionTag(stabilized); ok {
			res.Action = &Action{
				Slot:      frame.Slot,
				Gesture:   stabilized,
				Tag:       tag,
				Timestamp: now,
			}
		}
	}

	return res, nil
}

// Reset clears one slot's position history, vote window, and hold
// state. Out-of-range or untouched slots are a no-op.
func (e *Engine) Reset(slot int) {
	if slot < 0 || slot >= len(e.slots) || e.slots[slot] == nil {
		return
	}
	e.slots[slot].reset()
}

// ResetAll clears every slot, e.g. when detection is toggled off.
func (e *Engine) ResetAll() {
	for _, s := range e.slots {
		if s != nil {
			s.reset()
		}
	}
}
