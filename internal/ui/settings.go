package ui

import (
	"math"
	"time"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
	"github.com/bnema/whiteboard/internal/ui/annotation"
	"github.com/bnema/whiteboard/internal/ui/exclusion"
	"github.com/bnema/whiteboard/internal/ui/gesture"
	"github.com/bnema/whiteboard/internal/ui/registry"
)

// RegistryConfig maps the panels, canvas, gesture and controls sections to
// registry settings.
func RegistryConfig(cfg *config.Config) registry.Config {
	return registry.Config{
		MaxPanels:      cfg.Panels.MaxPanels,
		CascadeStep:    cfg.Panels.CascadeStep,
		CascadeOffsetY: cfg.Panels.CascadeOffsetY,
		GridColumns:    cfg.Panels.GridColumns,
		GridSpacing:    cfg.Panels.GridSpacing,
		GridOrigin:     entity.Pt(cfg.Panels.GridOriginX, cfg.Panels.GridOriginY),
		Canvas:         entity.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		Display:        entity.Size{Width: cfg.Canvas.DisplayWidth, Height: cfg.Canvas.DisplayHeight},
		Gesture: gesture.Config{
			DragSlop:           cfg.Gesture.DragSlop,
			ResizeThreshold:    cfg.Gesture.ResizeThreshold,
			VisibleFraction:    cfg.Gesture.VisibleFraction,
			AnimationDuration:  time.Duration(cfg.Gesture.AnimationMs) * time.Millisecond,
			MinSizeFloor:       cfg.Gesture.MinSizeFloor,
			DefaultMinSize:     cfg.Gesture.DefaultMinSize,
			DefaultMaxFraction: cfg.Gesture.DefaultMaxFraction,
			ResetPosition:      entity.Pt(cfg.Gesture.ResetX, cfg.Gesture.ResetY),
		},
		Controls: exclusion.Metrics{
			ButtonSize:   cfg.Controls.ButtonSize,
			Gap:          cfg.Controls.Gap,
			TouchPadding: cfg.Controls.TouchPadding,
		},
	}
}

// AnnotationOptions maps the annotation section to engine options. The bus
// is filled in by the caller.
func AnnotationOptions(cfg *config.Config) annotation.Options {
	paint := annotation.DefaultPaint()
	if cfg.Annotation.Color != "" {
		paint.Color = cfg.Annotation.Color
	}
	if cfg.Annotation.StrokeWidth > 0 {
		paint.Width = cfg.Annotation.StrokeWidth
	}

	tool, err := entity.ParseTool(cfg.Annotation.DefaultTool)
	if err != nil {
		tool = entity.ToolFreeDraw
	}

	return annotation.Options{
		Paint: paint,
		Arrow: annotation.ArrowHead{
			Length: cfg.Annotation.ArrowHeadLength,
			Angle:  cfg.Annotation.ArrowHeadAngle * math.Pi / 180,
		},
		Tool: tool,
	}
}
