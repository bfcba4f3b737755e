package engine

// actionTags maps each fire-capable pose to the abstract action tag
// handed to the caller. The engine only decides that a gesture fired,
// never what its action does.
var actionTags = map[Label]string{
	LabelFist:     "reset",
	LabelOpenHand: "stop",
	LabelPoint:    "select",
	LabelPeace:    "confirm",
	LabelThumbsUp: "approve",
	LabelOne:      "option_1",
	LabelTwo:      "option_2",
	LabelThree:    "option_3",
	LabelFour:     "option_4",
}

// ActionTag returns the abstract action tag for a gesture label.
// Labels without a mapping (such as "unknown") report ok == false and
// never produce an action.
func ActionTag(l Label) (tag string, ok bool) {
	tag, ok = actionTags[l]
	return tag, ok
}

// ActionTags returns a copy of the full label-to-tag table.
func ActionTags() map[Label]string {
	out := make(map[Label]string, len(actionTags))
	for l, tag := range actionTags {
		out[l] = tag
	}
	return out
}
