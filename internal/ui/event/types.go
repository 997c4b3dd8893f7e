// Package event provides the typed notification bus that connects panels,
// the annotation engine, the registry and the host.
package event

import "github.com/bnema/whiteboard/internal/domain/entity"

// Type identifies an event.
type Type int

const (
	PanelAdded Type = iota
	PanelRemoved
	PanelCountChanged
	PanelMoved
	PanelResized
	DrawingStateChanged
	ToolSelected
	Undo
	Clear
	CapacityExceeded
	AnnotationModeChanged
)

var typeNames = [...]string{
	"panel_added",
	"panel_removed",
	"panel_count_changed",
	"panel_moved",
	"panel_resized",
	"drawing_state_changed",
	"tool_selected",
	"undo",
	"clear",
	"capacity_exceeded",
	"annotation_mode_changed",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Event carries a notification. Only the fields relevant to Type are set:
//   - PanelAdded, PanelRemoved: PanelID, Kind
//   - PanelCountChanged: Count
//   - PanelMoved: PanelID, Position
//   - PanelResized: PanelID, Size
//   - DrawingStateChanged: Active
//   - ToolSelected: Tool
//   - CapacityExceeded: Count (the limit)
//   - AnnotationModeChanged: Active
type Event struct {
	Type     Type
	PanelID  entity.PanelID
	Kind     entity.PanelKind
	Position entity.Point
	Size     entity.Size
	Count    int
	Active   bool
	Tool     entity.Tool
}
