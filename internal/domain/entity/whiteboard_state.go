package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WhiteboardStateVersion is the current schema version for saved boards.
// Increment when making breaking changes to the record layout.
const WhiteboardStateVersion = 1

// BoardID names a saved whiteboard.
type BoardID string

// WhiteboardState is a complete snapshot of the panels on a canvas, in
// display order.
type WhiteboardState struct {
	Version int           `json:"version"`
	BoardID BoardID       `json:"board_id"`
	Panels  []PanelRecord `json:"panels"`
	SavedAt time.Time     `json:"saved_at"`
}

// PanelRecord captures the restorable state of one panel.
type PanelRecord struct {
	Kind     PanelKind  `json:"kind"`
	Position Point      `json:"position"`
	Scale    float64    `json:"scale"`
	Size     Size       `json:"size"`
	Data     CustomData `json:"data,omitempty"`
}

// CountByKind tallies panels per kind.
func (s *WhiteboardState) CountByKind() map[PanelKind]int {
	counts := make(map[PanelKind]int)
	if s == nil {
		return counts
	}
	for _, p := range s.Panels {
		counts[p.Kind]++
	}
	return counts
}

// Flat key layout used when a board is written to a key-value namespace.
const (
	keyVersion    = "version"
	keySavedAt    = "saved_at"
	KeyPanelCount = "panel_count"
	keyPanel      = "panel_"
	keyDataInfix  = "_data_"
)

func panelKey(i int, field string) string {
	return keyPanel + strconv.Itoa(i) + "_" + field
}

// Flatten encodes the state into typed flat keys:
// panel_count, panel_<i>_kind, panel_<i>_x, panel_<i>_y, panel_<i>_scale,
// panel_<i>_width, panel_<i>_height and panel_<i>_data_<key>.
func (s *WhiteboardState) Flatten() map[string]CustomValue {
	out := map[string]CustomValue{
		keyVersion:    IntValue(s.Version),
		keySavedAt:    StringValue(s.SavedAt.UTC().Format(time.RFC3339Nano)),
		KeyPanelCount: IntValue(len(s.Panels)),
	}
	for i, p := range s.Panels {
		out[panelKey(i, "kind")] = StringValue(string(p.Kind))
		out[panelKey(i, "x")] = FloatValue(p.Position.X)
		out[panelKey(i, "y")] = FloatValue(p.Position.Y)
		out[panelKey(i, "scale")] = FloatValue(p.Scale)
		out[panelKey(i, "width")] = IntValue(p.Size.Width)
		out[panelKey(i, "height")] = IntValue(p.Size.Height)
		for k, v := range p.Data {
			out[panelKey(i, "data_"+k)] = v
		}
	}
	return out
}

// UnflattenWhiteboardState rebuilds a state from flat keys. Kinds are copied
// verbatim so unknown kinds surface at restore time. Missing numeric fields
// decode as zero.
func UnflattenWhiteboardState(id BoardID, values map[string]CustomValue) (*WhiteboardState, error) {
	countVal, ok := values[KeyPanelCount]
	if !ok {
		return nil, fmt.Errorf("missing %s", KeyPanelCount)
	}
	count, ok := countVal.AsInt()
	if !ok || count < 0 {
		return nil, fmt.Errorf("invalid %s %q", KeyPanelCount, countVal.String())
	}

	state := &WhiteboardState{
		Version: WhiteboardStateVersion,
		BoardID: id,
		Panels:  make([]PanelRecord, count),
	}
	if v, ok := values[keyVersion]; ok {
		if n, ok := v.AsInt(); ok {
			state.Version = n
		}
	}
	if v, ok := values[keySavedAt]; ok {
		if s, ok := v.AsString(); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				state.SavedAt = t
			}
		}
	}

	for key, v := range values {
		if !strings.HasPrefix(key, keyPanel) || key == KeyPanelCount {
			continue
		}
		rest := key[len(keyPanel):]
		sep := strings.IndexByte(rest, '_')
		if sep <= 0 {
			continue
		}
		i, err := strconv.Atoi(rest[:sep])
		if err != nil || i < 0 || i >= count {
			continue
		}
		field := rest[sep+1:]
		rec := &state.Panels[i]
		switch field {
		case "kind":
			s, _ := v.AsString()
			rec.Kind = PanelKind(s)
		case "x":
			rec.Position.X = numeric(v)
		case "y":
			rec.Position.Y = numeric(v)
		case "scale":
			rec.Scale = numeric(v)
		case "width":
			rec.Size.Width = int(numeric(v))
		case "height":
			rec.Size.Height = int(numeric(v))
		default:
			if dataKey, ok := strings.CutPrefix(field, keyDataInfix[1:]); ok && dataKey != "" {
				if rec.Data == nil {
					rec.Data = make(CustomData)
				}
				rec.Data[dataKey] = v
			}
		}
	}
	return state, nil
}

func numeric(v CustomValue) float64 {
	if f, ok := v.AsFloat(); ok {
		return f
	}
	if i, ok := v.AsInt(); ok {
		return float64(i)
	}
	return 0
}
