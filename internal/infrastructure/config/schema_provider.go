package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bnema/whiteboard/internal/application/port"
	"github.com/bnema/whiteboard/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionCanvas     = "Canvas"
	SectionPanels     = "Panels"
	SectionGesture    = "Gesture"
	SectionControls   = "Controls"
	SectionAnnotation = "Annotation"
	SectionDatabase   = "Database"
	SectionLogging    = "Logging"
	SectionAutosave   = "Autosave"
)

var keyDescriptions = map[string]string{
	"canvas.width":                   "Canvas width panels are clamped to (0 = unbounded)",
	"canvas.height":                  "Canvas height panels are clamped to (0 = unbounded)",
	"canvas.display_width":           "Display width used for the default maximum panel size",
	"canvas.display_height":          "Display height used for the default maximum panel size",
	"panels.max_panels":              "Maximum number of panels on the canvas",
	"panels.cascade_step":            "Offset between successive new panels",
	"panels.cascade_offset_y":        "Extra vertical offset of the first new panel",
	"panels.grid_columns":            "Columns used by arrange-in-grid",
	"panels.grid_spacing":            "Distance between grid cells",
	"panels.grid_origin_x":           "Left edge of the grid",
	"panels.grid_origin_y":           "Top edge of the grid",
	"panels.default_kind":            "Kind created by the add-panel key",
	"gesture.drag_slop":              "Per-axis travel before a drag starts",
	"gesture.resize_threshold":       "Smallest pinch size change that is applied",
	"gesture.visible_fraction":       "Share of a panel that must stay on the canvas",
	"gesture.animation_ms":           "Duration of animated moves and resizes",
	"gesture.min_size_floor":         "Lowest minimum size a panel may be given",
	"gesture.default_min_size":       "Minimum panel side before custom limits",
	"gesture.default_max_fraction":   "Maximum panel side as a fraction of the smaller display side",
	"gesture.reset_x":                "X position restored by reset",
	"gesture.reset_y":                "Y position restored by reset",
	"controls.button_size":           "Control button side length",
	"controls.gap":                   "Gap between stacked control buttons",
	"controls.touch_padding":         "Extra touch area around each control button",
	"annotation.color":               "Stroke color",
	"annotation.stroke_width":        "Stroke width",
	"annotation.arrow_head_length":   "Arrow barb length",
	"annotation.arrow_head_angle":    "Angle between arrow shaft and barbs, in degrees",
	"annotation.default_tool":        "Tool selected at startup",
	"annotation.start_enabled":       "Start with annotation mode on",
	"database.path":                  "Board database location",
	"logging.level":                  "Log verbosity level",
	"logging.format":                 "Log output format",
	"logging.enable_file_log":        "Also write logs to a rotating file",
	"logging.log_dir":                "Log file directory (default: XDG state dir)",
	"logging.max_size_mb":            "Rotate the log file past this size",
	"logging.max_backups":            "Rotated log files to keep",
	"logging.max_age_days":           "Delete rotated logs older than this",
	"logging.compress":               "Gzip rotated log files",
	"autosave.enabled":               "Save the board automatically after changes",
	"autosave.board":                 "Board id used by autosave and restore_on_start",
	"autosave.debounce_ms":           "Quiet time before an autosave",
	"autosave.restore_on_start":      "Restore the autosave board when play starts",
}

// SchemaProvider implements port.ConfigSchemaProvider by walking Config.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their defaults.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := reflect.ValueOf(DefaultConfig()).Elem()
	t := defaults.Type()

	keys := make([]entity.ConfigKeyInfo, 0, len(keyDescriptions))
	for i := range t.NumField() {
		sectionField := t.Field(i)
		sectionKey := sectionField.Tag.Get("toml")
		sectionVal := defaults.Field(i)
		for j := range sectionField.Type.NumField() {
			f := sectionField.Type.Field(j)
			key := sectionKey + "." + f.Tag.Get("toml")
			info := entity.ConfigKeyInfo{
				Key:         key,
				Type:        f.Type.Kind().String(),
				Default:     fmt.Sprint(sectionVal.Field(j).Interface()),
				Description: keyDescriptions[key],
				Section:     sectionField.Name,
			}
			applySchemaTag(&info, f.Tag.Get("jsonschema"))
			keys = append(keys, info)
		}
	}
	return keys
}

// applySchemaTag copies enum and min/max constraints from a jsonschema tag.
func applySchemaTag(info *entity.ConfigKeyInfo, tag string) {
	var lo, hi string
	for _, part := range strings.Split(tag, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch name {
		case "enum":
			info.Values = append(info.Values, value)
		case "minimum":
			lo = value
		case "maximum":
			hi = value
		}
	}
	switch {
	case lo != "" && hi != "":
		info.Range = lo + "-" + hi
	case lo != "":
		info.Range = ">=" + lo
	case hi != "":
		info.Range = "<=" + hi
	}
}
