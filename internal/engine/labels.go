package engine

// Label identifies a gesture in the closed recognition vocabulary.
type Label string

// Static pose labels, classifiable from a single frame's finger states.
const (
	LabelFist     Label = "fist"
	LabelPoint    Label = "point"
	LabelThumbsUp Label = "thumbs_up"
	LabelOne      Label = "one"
	LabelTwo      Label = "two"
	LabelThree    Label = "three"
	LabelFour     Label = "four"
	LabelOpenHand Label = "open_hand"
	LabelPeace    Label = "peace"
	LabelUnknown  Label = "unknown"
)

// Dynamic motion labels, classifiable only from position history.
const (
	LabelPinch      Label = "pinch"
	LabelSpread     Label = "spread"
	LabelSwipeLeft  Label = "swipe_left"
	LabelSwipeRight Label = "swipe_right"
	LabelWave       Label = "wave"
	LabelCircle     Label = "circle"
	LabelOKSign     Label = "ok_sign"
	LabelRockOn     Label = "rock_on"
)

// StaticLabels returns the static pose vocabulary in a fixed order.
func StaticLabels() []Label {
	return []Label{
		LabelFist, LabelPoint, LabelThumbsUp, LabelOne, LabelTwo,
		LabelThree, LabelFour, LabelOpenHand, LabelPeace, LabelUnknown,
	}
}

// DynamicLabels returns the motion gesture vocabulary in a fixed order.
func DynamicLabels() []Label {
	return []Label{
		LabelPinch, LabelSpread, LabelSwipeLeft, LabelSwipeRight,
		LabelWave, LabelCircle, LabelOKSign, LabelRockOn,
	}
}
