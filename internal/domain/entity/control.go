package entity

// Anchor is a named position on a panel border where control buttons sit.
type Anchor int

const (
	AnchorTopStart Anchor = iota
	AnchorTopCenter
	AnchorTopEnd
	AnchorBottomStart
	AnchorBottomCenter
	AnchorBottomEnd
	AnchorCenterStart
	AnchorCenterEnd
)

var anchorNames = [...]string{
	"top_start", "top_center", "top_end",
	"bottom_start", "bottom_center", "bottom_end",
	"center_start", "center_end",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return "unknown"
	}
	return anchorNames[a]
}

// IsTop reports whether the anchor sits on the top edge.
func (a Anchor) IsTop() bool {
	return a == AnchorTopStart || a == AnchorTopCenter || a == AnchorTopEnd
}

// IsBottom reports whether the anchor sits on the bottom edge.
func (a Anchor) IsBottom() bool {
	return a == AnchorBottomStart || a == AnchorBottomCenter || a == AnchorBottomEnd
}

// ControlButton is an on-panel button. StackIndex is assigned when the
// button is added to a layer.
type ControlButton struct {
	Icon       string
	Anchor     Anchor
	StackIndex int
	Action     func()
}
