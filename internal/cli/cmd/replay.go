package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/cli/replay"
	"github.com/bnema/whiteboard/internal/cli/styles"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui"
)

var (
	replayBoard   string
	replaySave    bool
	replayRestore bool
	replayCols    int
	replayRows    int
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>",
	Short: "Run a scripted touch session",
	Long: `Run a TOML script of touches, pinches and commands against a fresh board
and print the resulting canvas. Animations run on a synthetic clock, so a
replay is deterministic.

Step actions: ` + strings.Join(replay.Actions(), ", ") + `

Examples:
  whiteboard replay demo.toml
  whiteboard replay demo.toml --board demo --save`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayBoard, "board", "b", "", "board id (overrides the script)")
	replayCmd.Flags().BoolVar(&replaySave, "save", false, "save the board after the last step")
	replayCmd.Flags().BoolVar(&replayRestore, "restore", false, "start from the saved board instead of an empty one")
	replayCmd.Flags().IntVar(&replayCols, "cols", 100, "canvas width in terminal cells")
	replayCmd.Flags().IntVar(&replayRows, "rows", 32, "canvas height in terminal cells")
}

func runReplay(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if replayBoard != "" {
		script.Board = replayBoard
	}
	save := script.Save || replaySave
	if (save || replayRestore) && script.Board == "" {
		return errors.New("--save and --restore need a board id")
	}

	cfg := *app.Config
	// A replay saves once at the end; no autosave while it runs.
	cfg.Autosave.Enabled = false

	ctx := app.Ctx()
	board, err := ui.New(&ui.Dependencies{
		Ctx:     ctx,
		Config:  &cfg,
		BoardID: entity.BoardID(script.Board),
		Store:   app.Store,
	})
	if err != nil {
		return err
	}
	defer board.Close()

	if replayRestore {
		if _, rerr := board.Restore(ctx); rerr != nil && !errors.Is(rerr, usecase.ErrBoardNotFound) {
			return rerr
		}
	}

	report, err := replay.Run(ctx, board, script, time.Now())
	if err != nil {
		return err
	}

	canvas := styles.NewCanvasRenderer(app.Theme)
	fmt.Println(canvas.Render(report.Final, replayCols, replayRows))
	fmt.Println(app.Theme.Subtle.Render(summarizeReport(report)))
	for _, e := range report.Errors {
		fmt.Println(app.Theme.ErrorStyle.Render(e.Error()))
	}

	if save {
		out, serr := board.Save(ctx)
		if serr != nil {
			return serr
		}
		logging.FromContext(ctx).Debug().Int("keys", out.Keys).Msg("replay saved")
		fmt.Println(styles.NewBoardsRenderer(app.Theme).RenderSaved(entity.BoardID(script.Board), len(out.State.Panels), app.DatabasePath()))
	}
	return nil
}

func summarizeReport(r *replay.Report) string {
	parts := make([]string, 0, len(r.Events))
	for t, n := range r.Events {
		parts = append(parts, fmt.Sprintf("%s=%d", t, n))
	}
	sort.Strings(parts)
	return fmt.Sprintf("%d steps, %s · events: %s", r.Steps, r.Final.Status, strings.Join(parts, " "))
}
