package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateCanvas(config)...)
	validationErrors = append(validationErrors, validatePanels(config)...)
	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validateControls(config)...)
	validationErrors = append(validationErrors, validateAnnotation(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAutosave(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateCanvas(config *Config) []string {
	var errs []string
	c := config.Canvas
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, "canvas.width and canvas.height must be non-negative")
	}
	if c.DisplayWidth < 0 || c.DisplayHeight < 0 {
		errs = append(errs, "canvas.display_width and canvas.display_height must be non-negative")
	}
	return errs
}

func validatePanels(config *Config) []string {
	var errs []string
	p := config.Panels
	if p.MaxPanels < 1 || p.MaxPanels > 64 {
		errs = append(errs, "panels.max_panels must be between 1 and 64")
	}
	if p.GridColumns < 1 {
		errs = append(errs, "panels.grid_columns must be at least 1")
	}
	if p.GridSpacing < 0 {
		errs = append(errs, "panels.grid_spacing must be non-negative")
	}
	if _, err := entity.ParsePanelKind(p.DefaultKind); err != nil {
		errs = append(errs, fmt.Sprintf("panels.default_kind: %v", err))
	}
	return errs
}

func validateGesture(config *Config) []string {
	var errs []string
	g := config.Gesture
	if g.DragSlop < 0 || g.DragSlop > 100 {
		errs = append(errs, "gesture.drag_slop must be between 0 and 100")
	}
	if g.ResizeThreshold < 0 {
		errs = append(errs, "gesture.resize_threshold must be non-negative")
	}
	if g.VisibleFraction < 0 || g.VisibleFraction > 1 {
		errs = append(errs, "gesture.visible_fraction must be between 0 and 1")
	}
	if g.AnimationMs < 0 {
		errs = append(errs, "gesture.animation_ms must be non-negative")
	}
	if g.MinSizeFloor < 1 {
		errs = append(errs, "gesture.min_size_floor must be at least 1")
	}
	if g.DefaultMinSize < g.MinSizeFloor {
		errs = append(errs, "gesture.default_min_size must not be below gesture.min_size_floor")
	}
	if g.DefaultMaxFraction <= 0 || g.DefaultMaxFraction > 1 {
		errs = append(errs, "gesture.default_max_fraction must be in (0, 1]")
	}
	return errs
}

func validateControls(config *Config) []string {
	var errs []string
	c := config.Controls
	if c.ButtonSize < 1 {
		errs = append(errs, "controls.button_size must be at least 1")
	}
	if c.Gap < 0 || c.TouchPadding < 0 {
		errs = append(errs, "controls.gap and controls.touch_padding must be non-negative")
	}
	return errs
}

func validateAnnotation(config *Config) []string {
	var errs []string
	a := config.Annotation
	if !hexColor.MatchString(a.Color) {
		errs = append(errs, fmt.Sprintf("annotation.color %q must be #RRGGBB", a.Color))
	}
	if a.StrokeWidth < 0.5 || a.StrokeWidth > 100 {
		errs = append(errs, "annotation.stroke_width must be between 0.5 and 100")
	}
	if a.ArrowHeadLength < 0 {
		errs = append(errs, "annotation.arrow_head_length must be non-negative")
	}
	if a.ArrowHeadAngle < 1 || a.ArrowHeadAngle > 89 {
		errs = append(errs, "annotation.arrow_head_angle must be between 1 and 89 degrees")
	}
	if _, err := entity.ParseTool(a.DefaultTool); err != nil {
		errs = append(errs, fmt.Sprintf("annotation.default_tool: %v", err))
	}
	return errs
}

func validateLogging(config *Config) []string {
	var errs []string
	l := config.Logging
	if _, ok := logging.ParseLevel(l.Level); !ok {
		errs = append(errs, fmt.Sprintf("logging.level %q is not a known level", l.Level))
	}
	if l.Format != "console" && l.Format != "json" {
		errs = append(errs, fmt.Sprintf("logging.format %q must be console or json", l.Format))
	}
	if l.MaxSizeMB < 1 {
		errs = append(errs, "logging.max_size_mb must be at least 1")
	}
	if l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		errs = append(errs, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return errs
}

func validateAutosave(config *Config) []string {
	var errs []string
	a := config.Autosave
	if a.DebounceMs < 0 {
		errs = append(errs, "autosave.debounce_ms must be non-negative")
	}
	if (a.Enabled || a.RestoreOnStart) && a.Board == "" {
		errs = append(errs, "autosave.board is required when autosave or restore_on_start is on")
	}
	return errs
}
