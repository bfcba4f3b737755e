package detector

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestHandLandmarks_Normalize(t *testing.T) {
	t.Run("wrist at origin after normalization", func(t *testing.T) {
		hand := HandLandmarks{
			Handedness: "Right",
			Score:      0.9,
		}

		hand.Points[Wrist] = Point3D{X: 100.0, Y: 200.0, Z: 50.0}
		hand.Points[MiddleMCP] = Point3D{X: 130.0, Y: 240.0, Z: 50.0}

		for i := 1; i < NumLandmarks; i++ {
			if i != MiddleMCP {
				hand.Points[i] = Point3D{
					X: 100.0 + float64(i)*10.0,
					Y: 200.0 + float64(i)*5.0,
					Z: 50.0 + float64(i)*2.0,
				}
			}
		}

		normalized := hand.Normalize()

		if math.Abs(normalized.Points[Wrist].X) > epsilon {
			t.Errorf("expected wrist X to be 0, got %f", normalized.Points[Wrist].X)
		}
		if math.Abs(normalized.Points[Wrist].Y) > epsilon {
			t.Errorf("expected wrist Y to be 0, got %f", normalized.Points[Wrist].Y)
		}
		if math.Abs(normalized.Points[Wrist].Z) > epsilon {
			t.Errorf("expected wrist Z to be 0, got %f", normalized.Points[Wrist].Z)
		}

		if normalized.Handedness != hand.Handedness {
			t.Errorf("expected handedness %s, got %s", hand.Handedness, normalized.Handedness)
		}
		if normalized.Score != hand.Score {
			t.Errorf("expected score %f, got %f", hand.Score, normalized.Score)
		}
	})

	t.Run("distance from wrist to middle MCP is 1.0", func(t *testing.T) {
		hand := HandLandmarks{}

		hand.Points[Wrist] = Point3D{X: 10.0, Y: 20.0, Z: 5.0}
		hand.Points[MiddleMCP] = Point3D{X: 13.0, Y: 24.0, Z: 5.0} // distance = 5.0

		for i := 1; i < NumLandmarks; i++ {
			if i != MiddleMCP {
				hand.Points[i] = Point3D{
					X: 10.0 + float64(i),
					Y: 20.0 + float64(i),
					Z: 5.0,
				}
			}
		}

		normalized := hand.Normalize()

		middleMCP := normalized.Points[MiddleMCP]
		distance := math.Sqrt(middleMCP.X*middleMCP.X + middleMCP.Y*middleMCP.Y + middleMCP.Z*middleMCP.Z)

		if math.Abs(distance-1.0) > epsilon {
			t.Errorf("expected distance from wrist to middle MCP to be 1.0, got %f", distance)
		}
	})

	t.Run("nil hand returns nil", func(t *testing.T) {
		var hand *HandLandmarks
		if hand.Normalize() != nil {
			t.Error("expected nil result for nil input")
		}
	})

	t.Run("zero scale returns translated only", func(t *testing.T) {
		hand := HandLandmarks{}

		// Wrist and middle MCP coincide, so there is no usable scale.
		hand.Points[Wrist] = Point3D{X: 10.0, Y: 20.0, Z: 5.0}
		hand.Points[MiddleMCP] = Point3D{X: 10.0, Y: 20.0, Z: 5.0}

		normalized := hand.Normalize()

		if math.Abs(normalized.Points[Wrist].X) > epsilon {
			t.Errorf("expected wrist X to be 0, got %f", normalized.Points[Wrist].X)
		}
	})
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()

		mock.SetHands([]HandLandmarks{
			ThumbsUpLandmarks(),
			OpenPalmLandmarks(),
		})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
	})

	t.Run("drains scripted frames before pinned hands", func(t *testing.T) {
		mock := NewMockDetector()

		mock.SetHands([]HandLandmarks{OpenPalmLandmarks()})
		mock.Enqueue(
			[]HandLandmarks{FistLandmarks()},
			nil,
		)

		hands, _ := mock.Detect(nil)
		if len(hands) != 1 || hands[0].Points[IndexTip] != FistLandmarks().Points[IndexTip] {
			t.Error("first Detect should return the first scripted frame")
		}

		hands, _ = mock.Detect(nil)
		if len(hands) != 0 {
			t.Errorf("second Detect should return the scripted empty frame, got %d hands", len(hands))
		}

		hands, _ = mock.Detect(nil)
		if len(hands) != 1 {
			t.Errorf("after the queue drains Detect should fall back to pinned hands, got %d", len(hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("Close returns nil", func(t *testing.T) {
		mock := NewMockDetector()

		if err := mock.Close(); err != nil {
			t.Errorf("expected Close to return nil, got %v", err)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}

// extended reports whether a non-thumb finger's tip sits above its PIP
// joint, the same test the gesture engine applies.
func extended(h HandLandmarks, tip, pip int) bool {
	return h.Points[tip].Y < h.Points[pip].Y
}

func thumbExtended(h HandLandmarks) bool {
	return h.Points[ThumbTip].X > h.Points[ThumbIP].X
}

func TestPoseFixtures(t *testing.T) {
	tests := []struct {
		name string
		hand HandLandmarks
		want [5]bool // thumb, index, middle, ring, pinky
	}{
		{"fist", FistLandmarks(), [5]bool{false, false, false, false, false}},
		{"open palm", OpenPalmLandmarks(), [5]bool{true, true, true, true, true}},
		{"point", PointLandmarks(), [5]bool{false, true, false, false, false}},
		{"peace", PeaceLandmarks(), [5]bool{false, true, true, false, false}},
		{"thumbs up", ThumbsUpLandmarks(), [5]bool{true, false, false, false, false}},
		{"rock on", RockOnLandmarks(), [5]bool{false, true, false, false, true}},
	}

	fingers := [4]struct{ tip, pip int }{
		{IndexTip, IndexPIP},
		{MiddleTip, MiddlePIP},
		{RingTip, RingPIP},
		{PinkyTip, PinkyPIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.hand.Handedness != "Right" {
				t.Errorf("handedness = %q, want Right", tt.hand.Handedness)
			}
			if got := thumbExtended(tt.hand); got != tt.want[0] {
				t.Errorf("thumb extended = %v, want %v", got, tt.want[0])
			}
			for i, f := range fingers {
				if got := extended(tt.hand, f.tip, f.pip); got != tt.want[i+1] {
					t.Errorf("finger %d extended = %v, want %v", i+1, got, tt.want[i+1])
				}
			}
		})
	}
}

func TestOKSignLandmarks(t *testing.T) {
	h := OKSignLandmarks()

	thumb := h.Points[ThumbTip]
	index := h.Points[IndexTip]
	d := math.Hypot(thumb.X-index.X, thumb.Y-index.Y)
	if d >= 30 {
		t.Errorf("thumb-index distance = %f, want < 30", d)
	}

	for _, f := range [3]struct{ tip, pip int }{
		{MiddleTip, MiddlePIP},
		{RingTip, RingPIP},
		{PinkyTip, PinkyPIP},
	} {
		if !extended(h, f.tip, f.pip) {
			t.Errorf("landmark %d should be extended", f.tip)
		}
	}
}

func TestFixturesAvoidAccidentalPinch(t *testing.T) {
	for _, tt := range []struct {
		name string
		hand HandLandmarks
	}{
		{"fist", FistLandmarks()},
		{"open palm", OpenPalmLandmarks()},
		{"thumbs up", ThumbsUpLandmarks()},
		{"point", PointLandmarks()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			thumb := tt.hand.Points[ThumbTip]
			index := tt.hand.Points[IndexTip]
			if d := math.Hypot(thumb.X-index.X, thumb.Y-index.Y); d < 30 {
				t.Errorf("thumb-index distance = %f, must stay >= 30", d)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	base := OpenPalmLandmarks()
	moved := Translate(base, 25, -10)

	for i := 0; i < NumLandmarks; i++ {
		if moved.Points[i].X != base.Points[i].X+25 {
			t.Fatalf("landmark %d X = %f, want %f", i, moved.Points[i].X, base.Points[i].X+25)
		}
		if moved.Points[i].Y != base.Points[i].Y-10 {
			t.Fatalf("landmark %d Y = %f, want %f", i, moved.Points[i].Y, base.Points[i].Y-10)
		}
	}

	// The original must be untouched.
	if base.Points[Wrist].X != 320 {
		t.Error("Translate must not mutate its input")
	}
}
