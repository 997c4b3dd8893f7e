package model

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/cli/styles"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui"
)

// zoomStep is the scale applied to every panel by the zoom key.
const zoomStep = 1.25

// footerLines is the height of the status and help rows below the canvas.
const footerLines = 2

// BoardModel is the Bubble Tea model for the interactive board. It never
// touches board state directly: every change is posted to the board loop,
// and frames come back through the sink.
type BoardModel struct {
	// UI components
	help     help.Model
	keys     styles.BoardKeyMap
	renderer *styles.CanvasRenderer

	// State
	frame    ui.Frame
	pointer  pointerTracker
	status   string
	showHelp bool
	width    int
	height   int
	err      error

	// Dependencies
	ctx   context.Context
	board *ui.App
	sink  *FrameSink
	theme *styles.Theme
}

// NewBoardModel creates the interactive board model.
func NewBoardModel(ctx context.Context, theme *styles.Theme, board *ui.App, sink *FrameSink) BoardModel {
	logging.FromContext(ctx).Debug().Msg("creating board model")

	return BoardModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultBoardKeyMap(),
		renderer: styles.NewCanvasRenderer(theme),
		ctx:      ctx,
		board:    board,
		sink:     sink,
		theme:    theme,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	m.post(func(*ui.App) {})
	return m.sink.Next(m.ctx)
}

// boardResultMsg reports a save or restore.
type boardResultMsg struct {
	status string
	err    error
}

// Update implements tea.Model.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = ui.Frame(msg)
		return m, m.sink.Next(m.ctx)

	case boardResultMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
		}
		return m, nil

	case tea.MouseMsg:
		events := m.pointer.touches(msg, m.frame.Canvas, m.canvasCols(), m.canvasRows())
		if len(events) > 0 {
			wheel := isWheel(msg)
			m.post(func(a *ui.App) { dispatch(a, events, wheel) })
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Add):
		m.addPanel("")
	case key.Matches(msg, m.keys.AddKind):
		kinds := entity.AllPanelKinds()
		if i := int(msg.Runes[0] - '1'); i >= 0 && i < len(kinds) {
			m.addPanel(kinds[i])
		}
	case key.Matches(msg, m.keys.Remove):
		m.post(func(a *ui.App) {
			panels := a.Registry().Panels()
			if len(panels) > 0 {
				_ = a.Registry().Remove(a.Context(), panels[len(panels)-1].ID)
			}
		})
	case key.Matches(msg, m.keys.Annotate):
		m.post(func(a *ui.App) { a.Annotation().ToggleMode() })
	case key.Matches(msg, m.keys.Tool):
		m.post(func(a *ui.App) {
			tools := entity.AllTools()
			i := slices.Index(tools, a.Annotation().Tool())
			a.Annotation().SelectTool(tools[(i+1)%len(tools)])
		})
	case key.Matches(msg, m.keys.Undo):
		m.post(func(a *ui.App) { a.Annotation().Undo() })
	case key.Matches(msg, m.keys.Clear):
		m.post(func(a *ui.App) { a.Annotation().Clear() })
	case key.Matches(msg, m.keys.Grid):
		m.post(func(a *ui.App) { a.Registry().ArrangeInGrid() })
	case key.Matches(msg, m.keys.Zoom):
		m.post(func(a *ui.App) { a.Registry().ZoomAll(zoomStep) })
	case key.Matches(msg, m.keys.Reset):
		m.post(func(a *ui.App) { a.Registry().ResetAll() })
	case key.Matches(msg, m.keys.ToggleDrag):
		m.post(func(a *ui.App) { a.Registry().ToggleDraggingForAll() })
	case key.Matches(msg, m.keys.ToggleSize):
		m.post(func(a *ui.App) { a.Registry().ToggleResizingForAll() })
	case key.Matches(msg, m.keys.Save):
		return m, m.save
	case key.Matches(msg, m.keys.Restore):
		return m, m.restore
	}
	return m, nil
}

func (m BoardModel) addPanel(kind entity.PanelKind) {
	m.post(func(a *ui.App) {
		if _, err := a.AddPanel(kind); err != nil {
			logging.FromContext(a.Context()).Debug().Err(err).Msg("add panel refused")
		}
	})
}

// post runs fn on the board loop and publishes the resulting frame.
func (m BoardModel) post(fn func(*ui.App)) {
	sink := m.sink
	ok := m.board.Post(func(a *ui.App) {
		fn(a)
		sink.Publish(a.Frame())
	})
	if !ok {
		logging.FromContext(m.ctx).Warn().Msg("board loop busy, input dropped")
	}
}

func (m BoardModel) save() tea.Msg {
	var out *usecase.SaveOutput
	err := m.board.Exec(m.ctx, func(a *ui.App) error {
		var err error
		out, err = a.Save(m.ctx)
		return err
	})
	if err != nil {
		return boardResultMsg{err: err}
	}
	return boardResultMsg{status: fmt.Sprintf("saved %d panels", len(out.State.Panels))}
}

func (m BoardModel) restore() tea.Msg {
	sink := m.sink
	var out *usecase.RestoreOutput
	err := m.board.Exec(m.ctx, func(a *ui.App) error {
		var err error
		out, err = a.Restore(m.ctx)
		sink.Publish(a.Frame())
		return err
	})
	switch {
	case errors.Is(err, usecase.ErrBoardNotFound):
		return boardResultMsg{status: "nothing saved yet"}
	case err != nil:
		return boardResultMsg{err: err}
	}
	status := fmt.Sprintf("restored %d panels", len(out.State.Panels))
	if out.Skipped != nil {
		status += " (some skipped)"
	}
	return boardResultMsg{status: status}
}

func (m BoardModel) canvasCols() int { return max(m.width, 1) }
func (m BoardModel) canvasRows() int { return max(m.height-footerLines, 1) }

// View implements tea.Model.
func (m BoardModel) View() string {
	canvas := m.renderer.Render(m.frame, m.canvasCols(), m.canvasRows())

	line := m.frame.Status
	if m.frame.Mode {
		line = fmt.Sprintf("%s · %s %s", line, styles.IconPencil, m.frame.Tool)
	}
	if m.status != "" {
		line = fmt.Sprintf("%s · %s", line, m.status)
	}
	statusLine := m.theme.Subtle.Render(line)
	if m.err != nil {
		statusLine = m.theme.ErrorStyle.Render(m.err.Error())
	}

	if m.showHelp {
		return m.help.View(m.keys)
	}
	return canvas + "\n" + statusLine + "\n" + m.help.View(m.keys)
}
