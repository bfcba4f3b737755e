package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ayusman/mudra/internal/detector"
)

// detectDynamic evaluates every motion predicate against the current
// frame and the slot's position history. Detectors are independent and
// any subset can be true in the same frame; labels are appended to dst
// in a fixed order so the output is deterministic. The radii slice is a
// caller-owned scratch buffer reused across frames.
func detectDynamic(cfg Config, points []detector.Point3D, tracker *Tracker, radii []float64, dst []Label) []Label {
	if detectPinch(cfg, points) {
		dst = append(dst, LabelPinch)
	}
	if detectSpread(cfg, points) {
		dst = append(dst, LabelSpread)
	}
	left, right := detectSwipe(cfg, tracker)
	if left {
		dst = append(dst, LabelSwipeLeft)
	}
	if right {
		dst = append(dst, LabelSwipeRight)
	}
	if detectWave(cfg, tracker) {
		dst = append(dst, LabelWave)
	}
	if detectCircle(cfg, tracker, radii) {
		dst = append(dst, LabelCircle)
	}
	if detectOKSign(cfg, points) {
		dst = append(dst, LabelOKSign)
	}
	if detectRockOn(points) {
		dst = append(dst, LabelRockOn)
	}
	return dst
}

// detectPinch reports whether the thumb and index fingertips are closer
// than the pinch threshold. The threshold is exclusive: a distance of
// exactly PinchThreshold does not pinch.
func detectPinch(cfg Config, points []detector.Point3D) bool {
	return Distance(points[detector.ThumbTip], points[detector.IndexTip]) < cfg.PinchThreshold
}

// detectSpread sums the distances between adjacent fingertips
// (thumb-index-middle-ring-pinky) and fires past the spread threshold.
func detectSpread(cfg Config, points []detector.Point3D) bool {
	tips := [5]detector.Point3D{
		points[detector.ThumbTip],
		points[detector.IndexTip],
		points[detector.MiddleTip],
		points[detector.RingTip],
		points[detector.PinkyTip],
	}

	var total float64
	for i := 0; i < len(tips)-1; i++ {
		total += Distance(tips[i], tips[i+1])
	}
	return total > cfg.SpreadThreshold
}

// detectSwipe reports horizontal motion past the velocity threshold with
// little vertical drift. The sign of the horizontal velocity picks the
// direction; at most one of the two results is true.
func detectSwipe(cfg Config, tracker *Tracker) (left, right bool) {
	if tracker.Len() < 2 {
		return false, false
	}

	vx, vy := tracker.Velocity()
	if math.Abs(vx) <= cfg.SwipeVelocity || math.Abs(vy) >= cfg.SwipeMaxDrift {
		return false, false
	}
	return vx < 0, vx > 0
}

// detectWave counts direction reversals of the x coordinate over the
// last WaveWindow centers. A local extremum in the sequence is one
// reversal; more than WaveReversals of them is a wave.
func detectWave(cfg Config, tracker *Tracker) bool {
	n := tracker.Len()
	if n < cfg.WaveWindow {
		return false
	}

	start := n - cfg.WaveWindow
	reversals := 0
	for i := start + 1; i < n-1; i++ {
		prev := tracker.At(i - 1).X
		cur := tracker.At(i).X
		next := tracker.At(i + 1).X
		if (cur > prev && cur > next) || (cur < prev && cur < next) {
			reversals++
		}
	}
	return reversals > cfg.WaveReversals
}

// detectCircle checks the last CircleWindow centers for roughly
// constant-radius motion around their centroid: low radius variance and
// a mean radius large enough to rule out a stationary hand.
func detectCircle(cfg Config, tracker *Tracker, radii []float64) bool {
	n := tracker.Len()
	if n < cfg.CircleWindow {
		return false
	}

	start := n - cfg.CircleWindow
	var cx, cy float64
	for i := start; i < n; i++ {
		p := tracker.At(i)
		cx += p.X
		cy += p.Y
	}
	cx /= float64(cfg.CircleWindow)
	cy /= float64(cfg.CircleWindow)

	radii = radii[:0]
	for i := start; i < n; i++ {
		p := tracker.At(i)
		radii = append(radii, math.Hypot(p.X-cx, p.Y-cy))
	}

	mean := stat.Mean(radii, nil)
	variance := stat.PopVariance(radii, nil)
	return variance < cfg.CircleVariance && mean > cfg.CircleMinRadius
}

// detectOKSign requires the thumb-index circle (same exclusive threshold
// as pinch) with the middle, ring, and pinky fingers extended.
func detectOKSign(cfg Config, points []detector.Point3D) bool {
	if Distance(points[detector.ThumbTip], points[detector.IndexTip]) >= cfg.PinchThreshold {
		return false
	}
	return points[detector.MiddleTip].Y < points[detector.MiddlePIP].Y &&
		points[detector.RingTip].Y < points[detector.RingPIP].Y &&
		points[detector.PinkyTip].Y < points[detector.PinkyPIP].Y
}

// detectRockOn matches the exact finger pattern index up, middle down,
// ring down, pinky up. The thumb does not participate.
func detectRockOn(points []detector.Point3D) bool {
	return points[detector.IndexTip].Y < points[detector.IndexPIP].Y &&
		points[detector.MiddleTip].Y > points[detector.MiddlePIP].Y &&
		points[detector.RingTip].Y > points[detector.RingPIP].Y &&
		points[detector.PinkyTip].Y < points[detector.PinkyPIP].Y
}
