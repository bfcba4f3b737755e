package engine

// classifyStatic maps a finger state to a pose label. The precedence is
// fixed: the specific one- and two-finger poses are checked before their
// generic count buckets, so an index-only hand is "point" and never
// "one". Reordering these cases changes classification for ambiguous
// finger combinations.
func classifyStatic(f FingerState) Label {
	switch f.Count() {
	case 0:
		return LabelFist
	case 1:
		switch {
		case f.Index:
			return LabelPoint
		case f.Thumb:
			return LabelThumbsUp
		default:
			return LabelOne
		}
	case 2:
		if f.Index && f.Middle {
			return LabelPeace
		}
		return LabelTwo
	case 3:
		return LabelThree
	case 4:
		return LabelFour
	case 5:
		return LabelOpenHand
	}
	return LabelUnknown
}
