// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/cli/styles"
	"github.com/bnema/whiteboard/internal/domain/build"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
	"github.com/bnema/whiteboard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/whiteboard/internal/logging"
)

// Options tune NewApp.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// Quiet keeps logs off the terminal; they only go to the log file.
	// Used by full-screen commands.
	Quiet bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	db    *sqlite.LazyDB
	Store repository.KeyValueStore

	// Use cases
	ListBoardsUC  *usecase.ListWhiteboardsUseCase
	DeleteBoardUC *usecase.DeleteWhiteboardUseCase
	ExportBoardUC *usecase.ExportWhiteboardUseCase
	ConfigSchema  *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads the configuration, sets up logging and opens the board
// store lazily.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigDir != "" {
		mgr, err = config.NewManagerWithDir(opts.ConfigDir)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err = mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	theme := styles.NewTheme(cfg)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		theme = styles.NewPlainTheme()
	}

	logger, closer, err := newLogger(cfg, opts.Quiet)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	store := sqlite.NewLazyKeyValueStore(db)
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("board store configured")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         theme,
		db:            db,
		Store:         store,
		ListBoardsUC:  usecase.NewListWhiteboardsUseCase(store),
		DeleteBoardUC: usecase.NewDeleteWhiteboardUseCase(store),
		ExportBoardUC: usecase.NewExportWhiteboardUseCase(store),
		ConfigSchema:  usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:           ctx,
		logCloser:     closer,
	}, nil
}

// newLogger logs to stderr, mirrored to a rotating file when enabled.
// Quiet commands drop the stderr side.
func newLogger(cfg *config.Config, quiet bool) (logger zerolog.Logger, closer io.Closer, err error) {
	level, _ := logging.ParseLevel(cfg.Logging.Level)
	logCfg := logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: "15:04:05"}
	if quiet {
		logCfg.Output = io.Discard
	}

	if !cfg.Logging.EnableFileLog {
		return logging.New(logCfg), nil, nil
	}

	dir := cfg.Logging.LogDir
	if dir == "" {
		if dir, err = config.GetLogDir(); err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("log dir: %w", err)
		}
	}
	logger, closer, err = logging.NewWithFile(logCfg, logging.FileConfig{
		Dir:        dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("file logging: %w", err)
	}
	return logger, closer, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabasePath returns the board database location.
func (a *App) DatabasePath() string {
	return a.db.Path()
}

// BoardRows converts board summaries for the boards table.
func BoardRows(boards []usecase.BoardSummary) []styles.BoardRow {
	rows := make([]styles.BoardRow, 0, len(boards))
	for _, b := range boards {
		byKind := make(map[string]int, len(b.ByKind))
		for k, n := range b.ByKind {
			byKind[string(k)] = n
		}
		rows = append(rows, styles.BoardRow{
			ID:         string(b.ID),
			PanelCount: b.PanelCount,
			ByKind:     byKind,
			SavedAt:    b.SavedAt,
			Version:    b.Version,
		})
	}
	return rows
}

// Timeout returns a context for one short command.
func (a *App) Timeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(a.ctx, 30*time.Second)
}
