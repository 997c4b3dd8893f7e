package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/ui"
	"github.com/bnema/whiteboard/internal/ui/gesture"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellBorder
	cellBorderActive
	cellLabel
	cellButton
	cellStroke
	cellScratch
)

// fallbackCanvas is used when the canvas is unbounded.
var fallbackCanvas = entity.Size{Width: 1600, Height: 1000}

// CanvasRenderer rasterizes a board frame onto terminal cells.
type CanvasRenderer struct {
	theme *Theme
	runs  *runCache
}

// NewCanvasRenderer creates a new canvas renderer with the given theme.
func NewCanvasRenderer(theme *Theme) *CanvasRenderer {
	return &CanvasRenderer{theme: theme, runs: newRunCache(runCacheSize)}
}

type grid struct {
	cols, rows int
	sx, sy     float64
	runes      [][]rune
	kinds      [][]cellKind
}

func newGrid(canvas entity.Size, cols, rows int) *grid {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = fallbackCanvas
	}
	g := &grid{
		cols:  cols,
		rows:  rows,
		sx:    float64(cols) / float64(canvas.Width),
		sy:    float64(rows) / float64(canvas.Height),
		runes: make([][]rune, rows),
		kinds: make([][]cellKind, rows),
	}
	for r := range rows {
		g.runes[r] = []rune(strings.Repeat(" ", cols))
		g.kinds[r] = make([]cellKind, cols)
	}
	return g
}

func (g *grid) cell(p entity.Point) (int, int) {
	return int(math.Floor(p.X * g.sx)), int(math.Floor(p.Y * g.sy))
}

func (g *grid) set(col, row int, r rune, k cellKind) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.runes[row][col] = r
	g.kinds[row][col] = k
}

func (g *grid) text(col, row int, s string, k cellKind) {
	for i, r := range []rune(s) {
		g.set(col+i, row, r, k)
	}
}

// line draws from a to b in canvas coordinates.
func (g *grid) line(a, b entity.Point, r rune, k cellKind) {
	c0, r0 := g.cell(a)
	c1, r1 := g.cell(b)
	steps := max(abs(c1-c0), abs(r1-r0), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := int(math.Round(float64(c0) + t*float64(c1-c0)))
		rr := int(math.Round(float64(r0) + t*float64(r1-r0)))
		g.set(c, rr, r, k)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CellToCanvas maps a terminal cell to the canvas point at its center.
func CellToCanvas(canvas entity.Size, cols, rows, col, row int) entity.Point {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = fallbackCanvas
	}
	if cols <= 0 || rows <= 0 {
		return entity.Point{}
	}
	return entity.Pt(
		(float64(col)+0.5)*float64(canvas.Width)/float64(cols),
		(float64(row)+0.5)*float64(canvas.Height)/float64(rows),
	)
}

// Render draws panels bottom to top, then strokes and the shape being drawn.
func (r *CanvasRenderer) Render(f ui.Frame, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	g := newGrid(f.Canvas, cols, rows)

	for _, p := range f.Panels {
		r.drawPanel(g, p)
	}
	for _, s := range f.Strokes {
		drawShape(g, s.Shape, cellStroke)
	}
	if f.Scratch != nil {
		drawShape(g, *f.Scratch, cellScratch)
	}

	return r.paint(g)
}

func (r *CanvasRenderer) drawPanel(g *grid, p ui.PanelView) {
	c0, r0 := g.cell(entity.Pt(p.Bounds.Left, p.Bounds.Top))
	c1, r1 := g.cell(entity.Pt(p.Bounds.Right, p.Bounds.Bottom))
	c1 = max(c1-1, c0+1)
	r1 = max(r1-1, r0+1)

	border := cellBorder
	if p.State != gesture.StateIdle {
		border = cellBorderActive
	}

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.set(col, row, ' ', cellEmpty)
		}
	}
	for col := c0 + 1; col < c1; col++ {
		g.set(col, r0, '─', border)
		g.set(col, r1, '─', border)
	}
	for row := r0 + 1; row < r1; row++ {
		g.set(c0, row, '│', border)
		g.set(c1, row, '│', border)
	}
	g.set(c0, r0, '┌', border)
	g.set(c1, r0, '┐', border)
	g.set(c0, r1, '└', border)
	g.set(c1, r1, '┘', border)

	label := string(p.Kind) + " " + p.ID.Short()
	if !p.Drag {
		label += " ⊘"
	}
	if room := c1 - c0 - 1; room > 0 {
		runes := []rune(label)
		if len(runes) > room {
			runes = runes[:room]
		}
		g.text(c0+1, r0+1, string(runes), cellLabel)
	}

	for _, b := range p.Buttons {
		bc, br := g.cell(b.Bounds.Center())
		g.set(bc, br, buttonGlyph(b.Icon), cellButton)
	}
}

func buttonGlyph(icon string) rune {
	switch icon {
	case "close":
		return '×'
	case "rotate":
		return '↻'
	case "filter":
		return '◐'
	case "animation-toggle":
		return '▶'
	case "rendering-toggle":
		return '◉'
	case "animation-next":
		return '»'
	case "text-larger":
		return '+'
	case "text-smaller":
		return '-'
	default:
		return '●'
	}
}

func drawShape(g *grid, s entity.Shape, k cellKind) {
	const ink = '•'
	switch s.Kind {
	case entity.ShapePolyline:
		for i := 1; i < len(s.Points); i++ {
			g.line(s.Points[i-1], s.Points[i], ink, k)
		}
		if len(s.Points) == 1 {
			g.line(s.Points[0], s.Points[0], ink, k)
		}
	case entity.ShapeSegment:
		g.line(s.Start, s.End, ink, k)
	case entity.ShapeRect:
		b := s.Bounds
		tl, tr := entity.Pt(b.Left, b.Top), entity.Pt(b.Right, b.Top)
		bl, br := entity.Pt(b.Left, b.Bottom), entity.Pt(b.Right, b.Bottom)
		g.line(tl, tr, ink, k)
		g.line(tr, br, ink, k)
		g.line(br, bl, ink, k)
		g.line(bl, tl, ink, k)
	case entity.ShapeCircle:
		const segments = 48
		prev := entity.Pt(s.Center.X+s.Radius, s.Center.Y)
		for i := 1; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			next := entity.Pt(s.Center.X+s.Radius*math.Cos(a), s.Center.Y+s.Radius*math.Sin(a))
			g.line(prev, next, ink, k)
			prev = next
		}
	case entity.ShapeArrow:
		g.line(s.Start, s.End, ink, k)
		g.line(s.End, s.Barbs[0], ink, k)
		g.line(s.End, s.Barbs[1], ink, k)
	}
}

func (r *CanvasRenderer) styleFor(k cellKind) lipgloss.Style {
	t := r.theme
	switch k {
	case cellBorder:
		return t.PanelBorder
	case cellBorderActive:
		return t.PanelBorderActive
	case cellLabel:
		return t.PanelLabel
	case cellButton:
		return t.Button
	case cellStroke:
		return t.Stroke
	case cellScratch:
		return t.Scratch
	default:
		return lipgloss.NewStyle()
	}
}

// paint renders runs of same-kind cells with one style call each.
func (r *CanvasRenderer) paint(g *grid) string {
	var out strings.Builder
	for row := range g.rows {
		start := 0
		for col := 1; col <= g.cols; col++ {
			if col < g.cols && g.kinds[row][col] == g.kinds[row][start] {
				continue
			}
			run := string(g.runes[row][start:col])
			if k := g.kinds[row][start]; k == cellEmpty {
				out.WriteString(run)
			} else {
				style := r.styleFor(k)
				out.WriteString(r.runs.render(k, run, func(s string) string { return style.Render(s) }))
			}
			start = col
		}
		if row < g.rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
