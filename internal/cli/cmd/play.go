package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/cli/model"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui"
)

var (
	playBoard     string
	playNoRestore bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a board in the terminal",
	Long: `Open an interactive board. The mouse acts as a finger: click and drag
to move panels or draw, scroll to pinch-resize the panel under the cursor.
Press ? for every key.

The board id defaults to autosave.board from the config. With autosave
enabled, every panel change is saved after a short quiet period.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVarP(&playBoard, "board", "b", "", "board id to open (defaults to autosave.board)")
	playCmd.Flags().BoolVar(&playNoRestore, "no-restore", false, "start with an empty canvas")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	boardID := playBoard
	if boardID == "" {
		boardID = app.Config.Autosave.Board
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	sink := model.NewFrameSink()
	var board *ui.App
	board, err = ui.New(&ui.Dependencies{
		Ctx:      ctx,
		Config:   app.Config,
		BoardID:  entity.BoardID(boardID),
		Store:    app.Store,
		OnRedraw: func() { sink.Publish(board.Frame()) },
	})
	if err != nil {
		return err
	}
	defer board.Close()

	watchConfig(ctx, app.ConfigManager, board)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return board.Run(gctx)
	})

	if boardID != "" && app.Config.Autosave.RestoreOnStart && !playNoRestore {
		err := board.Exec(gctx, func(a *ui.App) error {
			_, rerr := a.Restore(gctx)
			return rerr
		})
		if err != nil && !errors.Is(err, usecase.ErrBoardNotFound) {
			log.Warn().Err(err).Str("board_id", boardID).Msg("restore on start failed")
		}
	}

	g.Go(func() error {
		defer cancel()
		p := tea.NewProgram(
			model.NewBoardModel(gctx, app.Theme, board, sink),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(gctx),
		)
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("board view: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchConfig reloads paint settings into the live board when the config
// file changes.
func watchConfig(ctx context.Context, mgr *config.Manager, board *ui.App) {
	log := logging.FromContext(ctx)
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
		return
	}
	mgr.OnConfigChange(func(cfg *config.Config) {
		opts := ui.AnnotationOptions(cfg)
		board.Post(func(a *ui.App) {
			a.Annotation().SetPaint(opts.Paint)
			log.Info().Str("color", opts.Paint.Color).Float64("width", opts.Paint.Width).Msg("annotation paint reloaded")
		})
	})
}
