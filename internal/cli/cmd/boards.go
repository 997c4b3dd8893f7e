package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/cli"
	"github.com/bnema/whiteboard/internal/cli/styles"
	"github.com/bnema/whiteboard/internal/domain/entity"
)

var (
	boardsYes    bool
	boardsOutput string
)

var boardsCmd = &cobra.Command{
	Use:     "boards",
	Aliases: []string{"board"},
	Short:   "Manage saved boards",
	Long:    `List, inspect, export, import and delete boards saved in the board database.`,
}

var boardsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved boards",
	Args:    cobra.NoArgs,
	RunE:    runBoardsList,
}

var boardsShowCmd = &cobra.Command{
	Use:   "show <board>",
	Short: "Show the panels of a saved board",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardsShow,
}

var boardsExportCmd = &cobra.Command{
	Use:   "export <board>",
	Short: "Write a board as JSON",
	Long: `Write a saved board as a JSON document, to stdout or to a file.

Examples:
  whiteboard boards export retro > retro.json
  whiteboard boards export retro -o retro.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBoardsExport,
}

var boardsImportCmd = &cobra.Command{
	Use:   "import <file> [board]",
	Short: "Load a board from a JSON document",
	Long: `Store a board read from a JSON document ('-' reads stdin). The board id
defaults to the one recorded in the document. An existing board with the
same id is replaced.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBoardsImport,
}

var boardsDeleteCmd = &cobra.Command{
	Use:     "delete <board>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved board",
	Args:    cobra.ExactArgs(1),
	RunE:    runBoardsDelete,
}

func init() {
	rootCmd.AddCommand(boardsCmd)
	boardsCmd.AddCommand(boardsListCmd, boardsShowCmd, boardsExportCmd, boardsImportCmd, boardsDeleteCmd)
	boardsExportCmd.Flags().StringVarP(&boardsOutput, "output", "o", "", "write to this file instead of stdout")
	boardsDeleteCmd.Flags().BoolVarP(&boardsYes, "yes", "y", false, "skip confirmation prompt")
}

func runBoardsList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx, cancel := app.Timeout()
	defer cancel()

	out, err := app.ListBoardsUC.Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewBoardsRenderer(app.Theme).RenderList(cli.BoardRows(out.Boards)))
	return nil
}

func runBoardsShow(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx, cancel := app.Timeout()
	defer cancel()

	state, err := app.ExportBoardUC.Load(ctx, entity.BoardID(args[0]))
	if err != nil {
		return err
	}
	fmt.Println(styles.NewBoardsRenderer(app.Theme).RenderBoard(state))
	return nil
}

func runBoardsExport(_ *cobra.Command, args []string) (err error) {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx, cancel := app.Timeout()
	defer cancel()

	var w io.Writer = os.Stdout
	if boardsOutput != "" {
		f, cerr := os.Create(boardsOutput)
		if cerr != nil {
			return fmt.Errorf("create %s: %w", boardsOutput, cerr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return app.ExportBoardUC.Export(ctx, entity.BoardID(args[0]), w)
}

func runBoardsImport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx, cancel := app.Timeout()
	defer cancel()

	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, oerr := os.Open(args[0])
		if oerr != nil {
			return fmt.Errorf("open %s: %w", args[0], oerr)
		}
		defer f.Close()
		r = bufio.NewReader(f)
	}

	var id entity.BoardID
	if len(args) == 2 {
		id = entity.BoardID(args[1])
	}
	state, err := app.ExportBoardUC.Import(ctx, id, r)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewBoardsRenderer(app.Theme).RenderSaved(state.BoardID, len(state.Panels), app.DatabasePath()))
	return nil
}

func runBoardsDelete(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	id := entity.BoardID(args[0])
	renderer := styles.NewBoardsRenderer(app.Theme)

	if boardsYes {
		ctx, cancel := app.Timeout()
		defer cancel()
		if err := app.DeleteBoardUC.Execute(ctx, usecase.DeleteWhiteboardInput{BoardID: id}); err != nil {
			return err
		}
		fmt.Println(renderer.RenderDeleted(id))
		return nil
	}

	ctx, cancel := app.Timeout()
	state, err := app.ExportBoardUC.Load(ctx, id)
	cancel()
	if err != nil {
		return err
	}

	m := newDeleteModel(app, renderer, state)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if dm, ok := final.(deleteModel); ok && dm.err != nil && !errors.Is(dm.err, context.Canceled) {
		return dm.err
	}
	return nil
}

type deleteState int

const (
	deleteStateConfirm deleteState = iota
	deleteStateRunning
	deleteStateDone
)

// deleteModel asks for confirmation, then deletes with a spinner.
type deleteModel struct {
	app      *cli.App
	renderer *styles.BoardsRenderer
	id       entity.BoardID

	spinner spinner.Model
	confirm styles.DeleteDialog
	state   deleteState

	result   string
	err      error
	quitting bool
}

type deleteResultMsg struct {
	err error
}

func newDeleteModel(app *cli.App, renderer *styles.BoardsRenderer, board *entity.WhiteboardState) deleteModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(app.Theme.Accent)

	return deleteModel{
		app:      app,
		renderer: renderer,
		id:       board.BoardID,
		spinner:  s,
		confirm:  styles.NewDeleteDialog(app.Theme, board, time.Now()),
	}
}

func (m deleteModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m deleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case deleteResultMsg:
		m.state = deleteStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderDeleted(m.id)
		return m, tea.Quit
	}

	if m.state == deleteStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		if m.confirm.Done() {
			if m.confirm.Confirmed() {
				m.state = deleteStateRunning
				return m, m.runDelete()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	}
	return m, nil
}

func (m deleteModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err) + "\n"
	case m.state == deleteStateDone:
		return m.result + "\n"
	case m.state == deleteStateRunning:
		return fmt.Sprintf("%s Deleting %s...\n", m.spinner.View(), m.id)
	}
	return m.confirm.View()
}

func (m deleteModel) runDelete() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.app.Timeout()
		defer cancel()
		err := m.app.DeleteBoardUC.Execute(ctx, usecase.DeleteWhiteboardInput{BoardID: m.id})
		return deleteResultMsg{err: err}
	}
}
