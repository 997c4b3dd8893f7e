// Package replay runs scripted touch sessions against a whiteboard without
// a terminal, for demos and regression checks.
package replay

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// ErrUnknownAction is returned for a step whose action is not recognized.
var ErrUnknownAction = errors.New("unknown action")

// Script is a replay file.
//
//	board = "demo"
//	save = true
//
//	[[step]]
//	action = "add"
//	kind = "TEXT"
//
//	[[step]]
//	action = "drag"
//	x = 150
//	y = 250
//	to_x = 400
//	to_y = 300
type Script struct {
	// Board is saved to after the last step when Save is set.
	Board string `toml:"board"`
	Save  bool   `toml:"save"`
	Steps []Step `toml:"step"`
}

// Step is one scripted action. Only the fields used by Action are read.
type Step struct {
	Action string `toml:"action"`

	// add
	Kind string `toml:"kind"`

	// touch: raw event with explicit pointers, or a single pointer at X,Y
	Touch    string    `toml:"touch"`
	Pointer  int       `toml:"pointer"`
	Pointers []Pointer `toml:"pointers"`

	// touch, drag, pinch center
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	// drag target
	ToX float64 `toml:"to_x"`
	ToY float64 `toml:"to_y"`
	// pinch finger distance, start and end
	From float64 `toml:"from"`
	To   float64 `toml:"to"`
	// drag and pinch interpolation
	Moves int `toml:"moves"`

	// tick
	Ms int `toml:"ms"`

	// annotate
	On *bool `toml:"on"`
	// tool
	Tool string `toml:"tool"`
	// zoom_all
	Scale float64 `toml:"scale"`
	// remove, front
	Index int `toml:"index"`
}

// Pointer is one contact of a raw touch step.
type Pointer struct {
	ID int     `toml:"id"`
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
}

// Actions lists every supported step action.
func Actions() []string {
	return []string{
		"add", "remove", "front", "touch", "drag", "pinch", "tick",
		"annotate", "tool", "undo", "clear", "grid", "zoom_all",
		"reset_all", "toggle_drag", "toggle_resize",
	}
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	var s Script
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("decode script %s: %w", path, err)
	}
	return validate(&s, md)
}

// Parse decodes and validates a script held in memory.
func Parse(data string) (*Script, error) {
	var s Script
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return validate(&s, md)
}

func validate(s *Script, md toml.MetaData) (*Script, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in script: %s", strings.Join(keys, ", "))
	}
	if s.Save && s.Board == "" {
		return nil, errors.New("script sets save without a board")
	}

	var errs []error
	for i, step := range s.Steps {
		if err := checkStep(step); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

func checkStep(step Step) error {
	switch step.Action {
	case "add":
		if step.Kind == "" {
			return nil
		}
		_, err := ParseKind(step.Kind)
		return err
	case "touch":
		if _, ok := entity.ParseTouchAction(step.Touch); !ok {
			return fmt.Errorf("unknown touch phase %q", step.Touch)
		}
	case "tool":
		if _, err := entity.ParseTool(step.Tool); err != nil {
			return err
		}
	case "pinch":
		if step.From <= 0 || step.To <= 0 {
			return errors.New("pinch needs positive from and to distances")
		}
	case "remove", "front", "drag", "tick", "annotate", "undo", "clear",
		"grid", "zoom_all", "reset_all", "toggle_drag", "toggle_resize":
	default:
		if s := suggest(step.Action, Actions()); s != "" {
			return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownAction, step.Action, s)
		}
		return fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
	}
	return nil
}

// ParseKind parses a panel kind, suggesting the closest known kind on a
// typo.
func ParseKind(name string) (entity.PanelKind, error) {
	kind, err := entity.ParsePanelKind(name)
	if err == nil {
		return kind, nil
	}
	names := make([]string, 0, len(entity.AllPanelKinds()))
	for _, k := range entity.AllPanelKinds() {
		names = append(names, string(k))
	}
	if s := suggest(strings.ToUpper(name), names); s != "" {
		return "", fmt.Errorf("%w, did you mean %q?", err, s)
	}
	return "", err
}

// suggest returns the candidate closest to input when it is near enough to
// be a typo.
func suggest(input string, candidates []string) string {
	type scored struct {
		name string
		dist int
	}
	scores := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		scores = append(scores, scored{c, levenshtein.ComputeDistance(input, c)})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].dist < scores[j].dist })
	if len(scores) == 0 || scores[0].dist > max(2, len(input)/3) {
		return ""
	}
	return scores[0].name
}
