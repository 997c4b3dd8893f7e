// Package config loads, validates and watches the whiteboard configuration
// through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	dataDir        string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a manager reading $XDG_CONFIG_HOME/whiteboard/config.toml.
func NewManager() (*Manager, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(filepath.Join(dirs.ConfigHome, configName), dirs.DataHome)
}

// NewManagerWithDir creates a manager keeping both config.toml and the
// default database in dir.
func NewManagerWithDir(dir string) (*Manager, error) {
	return newManager(filepath.Join(dir, configName), dir)
}

func newManager(configFile, dataDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// WHITEBOARD_GESTURE_DRAG_SLOP, WHITEBOARD_DATABASE_PATH, ...
	v.SetEnvPrefix("WHITEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "WHITEBOARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WHITEBOARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WHITEBOARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WHITEBOARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		dataDir:    dataDir,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load reads the config file (writing defaults on first run), applies
// environment overrides, normalizes and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, statErr := os.Stat(m.configFile); errors.Is(statErr, os.ErrNotExist) {
		if createErr := WriteConfigOrdered(DefaultConfig(), m.configFile); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	if config.Database.Path == "" {
		config.Database.Path = filepath.Join(m.dataDir, databaseName)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}

	if kind, err := entity.ParsePanelKind(config.Panels.DefaultKind); err == nil {
		config.Panels.DefaultKind = string(kind)
	}
	if tool, err := entity.ParseTool(config.Annotation.DefaultTool); err == nil {
		config.Annotation.DefaultTool = tool.String()
	}
	config.Annotation.Color = strings.ToUpper(strings.TrimSpace(config.Annotation.Color))

	config.Database.Path = strings.TrimSpace(config.Database.Path)
	config.Autosave.Board = strings.TrimSpace(config.Autosave.Board)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
		saved := *cfg
		m.config = &saved
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the config file path.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setCanvasDefaults(defaults)
	m.setPanelsDefaults(defaults)
	m.setGestureDefaults(defaults)
	m.setControlsDefaults(defaults)
	m.setAnnotationDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAutosaveDefaults(defaults)
	m.viper.SetDefault("database.path", defaults.Database.Path)
}

func (m *Manager) setCanvasDefaults(defaults *Config) {
	m.viper.SetDefault("canvas.width", defaults.Canvas.Width)
	m.viper.SetDefault("canvas.height", defaults.Canvas.Height)
	m.viper.SetDefault("canvas.display_width", defaults.Canvas.DisplayWidth)
	m.viper.SetDefault("canvas.display_height", defaults.Canvas.DisplayHeight)
}

func (m *Manager) setPanelsDefaults(defaults *Config) {
	m.viper.SetDefault("panels.max_panels", defaults.Panels.MaxPanels)
	m.viper.SetDefault("panels.cascade_step", defaults.Panels.CascadeStep)
	m.viper.SetDefault("panels.cascade_offset_y", defaults.Panels.CascadeOffsetY)
	m.viper.SetDefault("panels.grid_columns", defaults.Panels.GridColumns)
	m.viper.SetDefault("panels.grid_spacing", defaults.Panels.GridSpacing)
	m.viper.SetDefault("panels.grid_origin_x", defaults.Panels.GridOriginX)
	m.viper.SetDefault("panels.grid_origin_y", defaults.Panels.GridOriginY)
	m.viper.SetDefault("panels.default_kind", defaults.Panels.DefaultKind)
}

func (m *Manager) setGestureDefaults(defaults *Config) {
	m.viper.SetDefault("gesture.drag_slop", defaults.Gesture.DragSlop)
	m.viper.SetDefault("gesture.resize_threshold", defaults.Gesture.ResizeThreshold)
	m.viper.SetDefault("gesture.visible_fraction", defaults.Gesture.VisibleFraction)
	m.viper.SetDefault("gesture.animation_ms", defaults.Gesture.AnimationMs)
	m.viper.SetDefault("gesture.min_size_floor", defaults.Gesture.MinSizeFloor)
	m.viper.SetDefault("gesture.default_min_size", defaults.Gesture.DefaultMinSize)
	m.viper.SetDefault("gesture.default_max_fraction", defaults.Gesture.DefaultMaxFraction)
	m.viper.SetDefault("gesture.reset_x", defaults.Gesture.ResetX)
	m.viper.SetDefault("gesture.reset_y", defaults.Gesture.ResetY)
}

func (m *Manager) setControlsDefaults(defaults *Config) {
	m.viper.SetDefault("controls.button_size", defaults.Controls.ButtonSize)
	m.viper.SetDefault("controls.gap", defaults.Controls.Gap)
	m.viper.SetDefault("controls.touch_padding", defaults.Controls.TouchPadding)
}

func (m *Manager) setAnnotationDefaults(defaults *Config) {
	m.viper.SetDefault("annotation.color", defaults.Annotation.Color)
	m.viper.SetDefault("annotation.stroke_width", defaults.Annotation.StrokeWidth)
	m.viper.SetDefault("annotation.arrow_head_length", defaults.Annotation.ArrowHeadLength)
	m.viper.SetDefault("annotation.arrow_head_angle", defaults.Annotation.ArrowHeadAngle)
	m.viper.SetDefault("annotation.default_tool", defaults.Annotation.DefaultTool)
	m.viper.SetDefault("annotation.start_enabled", defaults.Annotation.StartEnabled)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setAutosaveDefaults(defaults *Config) {
	m.viper.SetDefault("autosave.enabled", defaults.Autosave.Enabled)
	m.viper.SetDefault("autosave.board", defaults.Autosave.Board)
	m.viper.SetDefault("autosave.debounce_ms", defaults.Autosave.DebounceMs)
	m.viper.SetDefault("autosave.restore_on_start", defaults.Autosave.RestoreOnStart)
}
