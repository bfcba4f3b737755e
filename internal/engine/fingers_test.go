package engine

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

// testHand builds a 21-point landmark set with the given fingers
// extended, in pixel-style coordinates (y grows downward) for a right
// hand. The geometry is deliberately coarse; only the tip/joint
// relations the classifier reads are meaningful.
func testHand(f FingerState) []detector.Point3D {
	pts := make([]detector.Point3D, detector.NumLandmarks)
	for i := range pts {
		pts[i] = detector.Point3D{X: 100, Y: 100}
	}
	pts[detector.Wrist] = detector.Point3D{X: 100, Y: 160}

	finger := func(tip, pip int, up bool, x float64) {
		pts[pip] = detector.Point3D{X: x, Y: 100}
		if up {
			pts[tip] = detector.Point3D{X: x, Y: 60}
		} else {
			pts[tip] = detector.Point3D{X: x, Y: 130}
		}
	}
	finger(detector.IndexTip, detector.IndexPIP, f.Index, 90)
	finger(detector.MiddleTip, detector.MiddlePIP, f.Middle, 100)
	finger(detector.RingTip, detector.RingPIP, f.Ring, 110)
	finger(detector.PinkyTip, detector.PinkyPIP, f.Pinky, 120)

	// Right-hand thumb: extended means tip to the right of the IP joint.
	pts[detector.ThumbIP] = detector.Point3D{X: 70, Y: 110}
	if f.Thumb {
		pts[detector.ThumbTip] = detector.Point3D{X: 85, Y: 108}
	} else {
		pts[detector.ThumbTip] = detector.Point3D{X: 55, Y: 112}
	}

	return pts
}

func TestClassifyFingers_AllStates(t *testing.T) {
	cases := []FingerState{
		{},
		{Thumb: true},
		{Index: true},
		{Index: true, Middle: true},
		{Thumb: true, Index: true, Middle: true, Ring: true, Pinky: true},
		{Middle: true, Ring: true, Pinky: true},
	}

	for _, want := range cases {
		got := classifyFingers(testHand(want), Right)
		if got != want {
			t.Errorf("classifyFingers() = %+v, want %+v", got, want)
		}
	}
}

func TestClassifyFingers_ThumbMirrorsByHandedness(t *testing.T) {
	// A right-hand extended thumb reads as folded when the frame is
	// classified as a left hand.
	pts := testHand(FingerState{Thumb: true})

	if got := classifyFingers(pts, Right); !got.Thumb {
		t.Error("expected thumb up for right hand")
	}
	if got := classifyFingers(pts, Left); got.Thumb {
		t.Error("expected thumb down when the same frame is read as a left hand")
	}
}

func TestClassifyFingers_EmptyHandednessDefaultsRight(t *testing.T) {
	pts := testHand(FingerState{Thumb: true})
	if got := classifyFingers(pts, ""); !got.Thumb {
		t.Error("expected empty handedness to use the right-hand thumb rule")
	}
}

func TestFingerState_Count(t *testing.T) {
	tests := []struct {
		state FingerState
		want  int
	}{
		{FingerState{}, 0},
		{FingerState{Index: true}, 1},
		{FingerState{Thumb: true, Pinky: true}, 2},
		{FingerState{Thumb: true, Index: true, Middle: true, Ring: true, Pinky: true}, 5},
	}

	for _, tt := range tests {
		if got := tt.state.Count(); got != tt.want {
			t.Errorf("Count(%+v) = %d, want %d", tt.state, got, tt.want)
		}
	}
}
