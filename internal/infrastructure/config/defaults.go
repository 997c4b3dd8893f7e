package config

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:         1600,
			Height:        1000,
			DisplayWidth:  1920,
			DisplayHeight: 1080,
		},
		Panels: PanelsConfig{
			MaxPanels:      8,
			CascadeStep:    50,
			CascadeOffsetY: 100,
			GridColumns:    2,
			GridSpacing:    320,
			GridOriginX:    50,
			GridOriginY:    100,
			DefaultKind:    "STANDARD",
		},
		Gesture: GestureConfig{
			DragSlop:           10,
			ResizeThreshold:    5,
			VisibleFraction:    0.2,
			AnimationMs:        300,
			MinSizeFloor:       100,
			DefaultMinSize:     150,
			DefaultMaxFraction: 0.9,
			ResetX:             100,
			ResetY:             100,
		},
		Controls: ControlsConfig{
			ButtonSize:   24,
			Gap:          4,
			TouchPadding: 16,
		},
		Annotation: AnnotationConfig{
			Color:           "#FF0000",
			StrokeWidth:     5,
			ArrowHeadLength: 30,
			ArrowHeadAngle:  30,
			DefaultTool:     "free_draw",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Autosave: AutosaveConfig{
			Enabled:        true,
			Board:          "default",
			DebounceMs:     1500,
			RestoreOnStart: true,
		},
	}
}
