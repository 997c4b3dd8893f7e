package config

// Config represents the complete configuration for whiteboard.
type Config struct {
	Canvas     CanvasConfig     `mapstructure:"canvas" toml:"canvas" json:"canvas"`
	Panels     PanelsConfig     `mapstructure:"panels" toml:"panels" json:"panels"`
	Gesture    GestureConfig    `mapstructure:"gesture" toml:"gesture" json:"gesture"`
	Controls   ControlsConfig   `mapstructure:"controls" toml:"controls" json:"controls"`
	Annotation AnnotationConfig `mapstructure:"annotation" toml:"annotation" json:"annotation"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Autosave   AutosaveConfig   `mapstructure:"autosave" toml:"autosave" json:"autosave"`
}

// CanvasConfig sizes the drawing surface and the display it sits on.
type CanvasConfig struct {
	// Width and Height bound panel translation. Zero leaves panels unbounded.
	Width  int `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=0"`
	Height int `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=0"`
	// DisplayWidth and DisplayHeight drive the default maximum panel size.
	DisplayWidth  int `mapstructure:"display_width" toml:"display_width" json:"display_width" jsonschema:"minimum=0"`
	DisplayHeight int `mapstructure:"display_height" toml:"display_height" json:"display_height" jsonschema:"minimum=0"`
}

// PanelsConfig controls panel placement and capacity.
type PanelsConfig struct {
	MaxPanels      int     `mapstructure:"max_panels" toml:"max_panels" json:"max_panels" jsonschema:"minimum=1,maximum=64"`
	CascadeStep    float64 `mapstructure:"cascade_step" toml:"cascade_step" json:"cascade_step"`
	CascadeOffsetY float64 `mapstructure:"cascade_offset_y" toml:"cascade_offset_y" json:"cascade_offset_y"`
	GridColumns    int     `mapstructure:"grid_columns" toml:"grid_columns" json:"grid_columns" jsonschema:"minimum=1"`
	GridSpacing    float64 `mapstructure:"grid_spacing" toml:"grid_spacing" json:"grid_spacing" jsonschema:"minimum=0"`
	GridOriginX    float64 `mapstructure:"grid_origin_x" toml:"grid_origin_x" json:"grid_origin_x"`
	GridOriginY    float64 `mapstructure:"grid_origin_y" toml:"grid_origin_y" json:"grid_origin_y"`
	// DefaultKind is the kind added by the "add panel" key.
	DefaultKind string `mapstructure:"default_kind" toml:"default_kind" json:"default_kind" jsonschema:"enum=TEXT,enum=MODEL_3D,enum=IMAGE,enum=STANDARD,enum=MINIMAL,enum=READ_ONLY"`
}

// GestureConfig tunes the drag and pinch recognizer.
type GestureConfig struct {
	DragSlop           float64 `mapstructure:"drag_slop" toml:"drag_slop" json:"drag_slop" jsonschema:"minimum=0,maximum=100"`
	ResizeThreshold    int     `mapstructure:"resize_threshold" toml:"resize_threshold" json:"resize_threshold" jsonschema:"minimum=0"`
	VisibleFraction    float64 `mapstructure:"visible_fraction" toml:"visible_fraction" json:"visible_fraction" jsonschema:"minimum=0,maximum=1"`
	AnimationMs        int     `mapstructure:"animation_ms" toml:"animation_ms" json:"animation_ms" jsonschema:"minimum=0"`
	MinSizeFloor       int     `mapstructure:"min_size_floor" toml:"min_size_floor" json:"min_size_floor" jsonschema:"minimum=1"`
	DefaultMinSize     int     `mapstructure:"default_min_size" toml:"default_min_size" json:"default_min_size" jsonschema:"minimum=1"`
	DefaultMaxFraction float64 `mapstructure:"default_max_fraction" toml:"default_max_fraction" json:"default_max_fraction" jsonschema:"minimum=0,maximum=1"`
	ResetX             float64 `mapstructure:"reset_x" toml:"reset_x" json:"reset_x"`
	ResetY             float64 `mapstructure:"reset_y" toml:"reset_y" json:"reset_y"`
}

// ControlsConfig sizes the control buttons and their touch exclusion.
type ControlsConfig struct {
	ButtonSize   float64 `mapstructure:"button_size" toml:"button_size" json:"button_size" jsonschema:"minimum=1"`
	Gap          float64 `mapstructure:"gap" toml:"gap" json:"gap" jsonschema:"minimum=0"`
	TouchPadding float64 `mapstructure:"touch_padding" toml:"touch_padding" json:"touch_padding" jsonschema:"minimum=0"`
}

// AnnotationConfig sets the drawing defaults.
type AnnotationConfig struct {
	Color           string  `mapstructure:"color" toml:"color" json:"color" jsonschema:"pattern=^#[0-9A-Fa-f]{6}$"`
	StrokeWidth     float64 `mapstructure:"stroke_width" toml:"stroke_width" json:"stroke_width" jsonschema:"minimum=0.5,maximum=100"`
	ArrowHeadLength float64 `mapstructure:"arrow_head_length" toml:"arrow_head_length" json:"arrow_head_length" jsonschema:"minimum=0"`
	ArrowHeadAngle  float64 `mapstructure:"arrow_head_angle" toml:"arrow_head_angle" json:"arrow_head_angle" jsonschema:"minimum=1,maximum=89"`
	DefaultTool     string  `mapstructure:"default_tool" toml:"default_tool" json:"default_tool" jsonschema:"enum=free_draw,enum=line,enum=rectangle,enum=circle,enum=arrow,enum=selection"`
	// StartEnabled turns annotation mode on at startup.
	StartEnabled bool `mapstructure:"start_enabled" toml:"start_enabled" json:"start_enabled"`
}

// DatabaseConfig locates the board database.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/whiteboard/whiteboard.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// AutosaveConfig controls coalesced saving of the live board.
type AutosaveConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Board is the board id autosave writes to and play restores from.
	Board string `mapstructure:"board" toml:"board" json:"board"`
	// DebounceMs is how long the board must be quiet before a save.
	DebounceMs     int  `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" jsonschema:"minimum=0"`
	RestoreOnStart bool `mapstructure:"restore_on_start" toml:"restore_on_start" json:"restore_on_start"`
}
