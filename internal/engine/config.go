package engine

import "time"

// Config holds every tunable threshold of the recognition engine.
// Distances and velocities are in the detector's coordinate units
// (pixels for the MediaPipe bridge). Zero-valued fields are replaced by
// the DefaultConfig values when passed to New.
type Config struct {
	// MaxHands is the number of hand slots the engine tracks.
	MaxHands int

	// StabilizerWindow is the majority-vote window size in frames.
	StabilizerWindow int

	// PositionHistory is the per-slot center history capacity in frames.
	PositionHistory int

	// FireHold is how long a stabilized pose must persist before its
	// action fires.
	FireHold time.Duration

	// UIHold is the shorter hold threshold used for UI feedback.
	UIHold time.Duration

	// DropoutTimeout resets a slot whose hand has been undetected for
	// this long. Zero disables the reset.
	DropoutTimeout time.Duration

	// PinchThreshold is the exclusive thumb-index tip distance below
	// which a pinch (and the ok-sign circle) is detected.
	PinchThreshold float64

	// SpreadThreshold is the total adjacent-fingertip distance above
	// which a spread is detected.
	SpreadThreshold float64

	// SwipeVelocity is the horizontal per-frame velocity a swipe must
	// exceed.
	SwipeVelocity float64

	// SwipeMaxDrift is the vertical per-frame velocity a swipe must
	// stay under.
	SwipeMaxDrift float64

	// WaveWindow is the number of recent centers examined for a wave.
	WaveWindow int

	// WaveReversals is the x-direction reversal count a wave must
	// exceed within the window.
	WaveReversals int

	// CircleWindow is the number of recent centers examined for a
	// circle.
	CircleWindow int

	// CircleVariance is the radius variance a circle must stay under.
	CircleVariance float64

	// CircleMinRadius is the mean radius a circle must exceed.
	CircleMinRadius float64
}

// DefaultConfig returns a Config with the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MaxHands:         2,
		StabilizerWindow: 5,
		PositionHistory:  30,
		FireHold:         time.Second,
		UIHold:           500 * time.Millisecond,
		DropoutTimeout:   2 * time.Second,
		PinchThreshold:   30,
		SpreadThreshold:  300,
		SwipeVelocity:    20,
		SwipeMaxDrift:    10,
		WaveWindow:       20,
		WaveReversals:    3,
		CircleWindow:     15,
		CircleVariance:   1000,
		CircleMinRadius:  30,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig.
// DropoutTimeout is left alone so zero can mean "never reset".
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.MaxHands <= 0 {
		c.MaxHands = def.MaxHands
	}
	if c.StabilizerWindow <= 0 {
		c.StabilizerWindow = def.StabilizerWindow
	}
	if c.PositionHistory <= 0 {
		c.PositionHistory = def.PositionHistory
	}
	if c.FireHold <= 0 {
		c.FireHold = def.FireHold
	}
	if c.UIHold <= 0 {
		c.UIHold = def.UIHold
	}
	if c.PinchThreshold <= 0 {
		c.PinchThreshold = def.PinchThreshold
	}
	if c.SpreadThreshold <= 0 {
		c.SpreadThreshold = def.SpreadThreshold
	}
	if c.SwipeVelocity <= 0 {
		c.SwipeVelocity = def.SwipeVelocity
	}
	if c.SwipeMaxDrift <= 0 {
		c.SwipeMaxDrift = def.SwipeMaxDrift
	}
	if c.WaveWindow <= 0 {
		c.WaveWindow = def.WaveWindow
	}
	if c.WaveReversals <= 0 {
		c.WaveReversals = def.WaveReversals
	}
	if c.CircleWindow <= 0 {
		c.CircleWindow = def.CircleWindow
	}
	if c.CircleVariance <= 0 {
		c.CircleVariance = def.CircleVariance
	}
	if c.CircleMinRadius <= 0 {
		c.CircleMinRadius = def.CircleMinRadius
	}

	// A window larger than the history could never fill; grow the
	// history to fit.
	if c.PositionHistory < c.WaveWindow {
		c.PositionHistory = c.WaveWindow
	}
	if c.PositionHistory < c.CircleWindow {
		c.PositionHistory = c.CircleWindow
	}

	return c
}
