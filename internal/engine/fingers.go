package engine

import "github.com/ayusman/mudra/internal/detector"

// Handedness identifies which hand a frame belongs to, matching the
// detector's "Left"/"Right" labels.
type Handedness string

const (
	// Right marks a right hand.
	Right Handedness = "Right"
	// Left marks a left hand.
	Left Handedness = "Left"
)

// FingerState records which fingers are extended in a single frame.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool
}

// Count returns the number of extended fingers (0-5).
func (f FingerState) Count() int {
	count := 0
	for _, up := range [5]bool{f.Thumb, f.Index, f.Middle, f.Ring, f.Pinky} {
		if up {
			count++
		}
	}
	return count
}

// classifyFingers derives per-finger extension from one frame's landmarks.
// Image coordinates grow downward, so a non-thumb finger is up when its
// tip is strictly above its PIP joint. The thumb folds sideways instead
// of curling: its tip is compared horizontally against the IP joint, and
// the comparison mirrors between hands. An empty handedness is treated
// as Right, which misreads mirrored left-hand thumbs; callers that know
// the handedness should pass it.
func classifyFingers(points []detector.Point3D, hand Handedness) FingerState {
	f := FingerState{
		Index:  points[detector.IndexTip].Y < points[detector.IndexPIP].Y,
		Middle: points[detector.MiddleTip].Y < points[detector.MiddlePIP].Y,
		Ring:   points[detector.RingTip].Y < points[detector.RingPIP].Y,
		Pinky:  points[detector.PinkyTip].Y < points[detector.PinkyPIP].Y,
	}

	if hand == Left {
		f.Thumb = points[detector.ThumbTip].X < points[detector.ThumbIP].X
	} else {
		f.Thumb = points[detector.ThumbTip].X > points[detector.ThumbIP].X
	}

	return f
}
