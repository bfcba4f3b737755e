package detector

// Synthetic landmark fixtures for tests and demos. Each builder places
// a right hand around the center of a 640x480 frame. The geometry is
// coarse: only the tip/joint relations the gesture engine reads (tip
// above PIP for fingers, tip right of IP for the thumb) and the
// inter-tip distances are meaningful.

// fingerColumn holds the landmark indices of one non-thumb finger.
type fingerColumn struct {
	mcp, pip, dip, tip int
	x                  float64
}

var fingerColumns = [4]fingerColumn{
	{IndexMCP, IndexPIP, IndexDIP, IndexTip, 300},
	{MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip, 325},
	{RingMCP, RingPIP, RingDIP, RingTip, 350},
	{PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip, 375},
}

// makePose builds a right hand with the given fingers extended.
func makePose(thumb, index, middle, ring, pinky bool) HandLandmarks {
	h := HandLandmarks{Handedness: "Right", Score: 0.95}

	h.Points[Wrist] = Point3D{X: 320, Y: 330}

	// Thumb folds sideways. Extended puts the tip to the right of the
	// IP joint, folded tucks it well clear of the index fingertip so a
	// folded hand never reads as a pinch.
	h.Points[ThumbCMC] = Point3D{X: 280, Y: 310}
	h.Points[ThumbMCP] = Point3D{X: 255, Y: 295}
	h.Points[ThumbIP] = Point3D{X: 230, Y: 280}
	if thumb {
		h.Points[ThumbTip] = Point3D{X: 265, Y: 270}
	} else {
		h.Points[ThumbTip] = Point3D{X: 205, Y: 290}
	}

	for i, up := range [4]bool{index, middle, ring, pinky} {
		col := fingerColumns[i]
		h.Points[col.mcp] = Point3D{X: col.x, Y: 270}
		h.Points[col.pip] = Point3D{X: col.x, Y: 240}
		if up {
			h.Points[col.dip] = Point3D{X: col.x, Y: 205}
			h.Points[col.tip] = Point3D{X: col.x, Y: 170}
		} else {
			h.Points[col.dip] = Point3D{X: col.x + 8, Y: 265}
			h.Points[col.tip] = Point3D{X: col.x + 10, Y: 285}
		}
	}

	return h
}

// FistLandmarks returns a hand with every finger folded.
func FistLandmarks() HandLandmarks {
	return makePose(false, false, false, false, false)
}

// OpenPalmLandmarks returns a hand with every finger extended.
func OpenPalmLandmarks() HandLandmarks {
	return makePose(true, true, true, true, true)
}

// PointLandmarks returns a hand with only the index finger extended.
func PointLandmarks() HandLandmarks {
	return makePose(false, true, false, false, false)
}

// PeaceLandmarks returns a hand with index and middle fingers extended.
func PeaceLandmarks() HandLandmarks {
	return makePose(false, true, true, false, false)
}

// ThumbsUpLandmarks returns a hand with only the thumb extended.
func ThumbsUpLandmarks() HandLandmarks {
	return makePose(true, false, false, false, false)
}

// RockOnLandmarks returns a hand with index and pinky extended, middle
// and ring folded.
func RockOnLandmarks() HandLandmarks {
	return makePose(false, true, false, false, true)
}

// OKSignLandmarks returns a hand forming the thumb-index circle with
// the remaining three fingers extended.
func OKSignLandmarks() HandLandmarks {
	h := makePose(true, false, true, true, true)
	h.Points[ThumbTip] = Point3D{X: 283, Y: 264}
	h.Points[IndexTip] = Point3D{X: 288, Y: 268}
	return h
}

// Translate returns a copy of the hand shifted by (dx, dy), for
// scripting swipe and wave motion sequences.
func Translate(h HandLandmarks, dx, dy float64) HandLandmarks {
	out := h
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}
