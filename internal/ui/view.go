package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/mouse-menu/internal/editor"
	"github.com/atomicstack/mouse-menu/internal/popup"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

type cellStyle int

const (
	cellText cellStyle = iota
	cellGutter
	cellSelection
	cellCursor
	cellEmpty
	cellMenuItem
	cellMenuSelected
)

// cell is one screen column. Wide runes occupy their first cell; the cells
// they cover carry an empty text.
type cell struct {
	text  string
	style cellStyle
}

type grid struct {
	width int
	rows  [][]cell
}

func newGrid(width, height int) *grid {
	g := &grid{width: width, rows: make([][]cell, height)}
	for r := range g.rows {
		row := make([]cell, width)
		for c := range row {
			row[c] = cell{text: " "}
		}
		g.rows[r] = row
	}
	return g
}

// put writes text from (row, col) and returns the column after it. Text
// running past the right edge is dropped.
func (g *grid) put(row, col int, text string, style cellStyle) int {
	if row < 0 || row >= len(g.rows) {
		return col
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > g.width {
			break
		}
		if col >= 0 {
			g.rows[row][col] = cell{text: string(r), style: style}
			for i := 1; i < w; i++ {
				g.rows[row][col+i] = cell{style: style}
			}
		}
		col += w
	}
	return col
}

func (g *grid) restyle(row, col int, style cellStyle) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return
	}
	g.rows[row][col].style = style
}

func (g *grid) render() []string {
	out := make([]string, len(g.rows))
	for r, row := range g.rows {
		var b strings.Builder
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && row[c].style == row[start].style {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:c] {
				run.WriteString(cl.text)
			}
			b.WriteString(styleFor(row[start].style).Render(run.String()))
			start = c
		}
		out[r] = b.String()
	}
	return out
}

func styleFor(s cellStyle) lipgloss.Style {
	var style *lipgloss.Style
	switch s {
	case cellGutter:
		style = styles.Gutter
	case cellSelection:
		style = styles.Selection
	case cellCursor:
		style = styles.Cursor
	case cellEmpty:
		style = styles.Empty
	case cellMenuItem:
		style = styles.MenuItem
	case cellMenuSelected:
		style = styles.MenuSelected
	default:
		style = styles.Text
	}
	if style == nil {
		return lipgloss.NewStyle()
	}
	return *style
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	g := newGrid(m.width, m.editorHeight())
	active := m.editor.Active()
	for _, f := range m.editor.Frames() {
		drawFrame(g, f, f == active)
	}
	for _, d := range m.screen.Present() {
		style := cellMenuItem
		if d.Style == popup.StyleHighlight {
			style = cellMenuSelected
		}
		g.put(d.Row, d.Col, d.Text, style)
	}
	lines := g.render()
	lines = append(lines, m.statusLine())
	return strings.Join(lines, "\n")
}

func drawFrame(g *grid, f *editor.Frame, active bool) {
	if f.Buffer == nil {
		for r := 0; r < f.Height; r++ {
			g.put(f.Top+r, f.Left, "~", cellEmpty)
		}
		return
	}
	gutter := f.Gutter()
	sel, hasSel := f.Selection()
	for r := 0; r < f.Height; r++ {
		row := f.Top + r
		line := f.ScrollRow + r + 1
		if line > f.Buffer.LineCount() {
			g.put(row, f.Left, "~", cellEmpty)
			continue
		}
		number := strconv.Itoa(line)
		g.put(row, f.Left, strings.Repeat(" ", gutter-1-len(number))+number+" ", cellGutter)

		col := f.Left + gutter
		right := f.Left + f.Width
		runes := []rune(f.Buffer.Line(line))
		for i := f.ScrollCol; i < len(runes) && col < right; i++ {
			style := cellText
			pos := editor.Pos{Line: line, Col: i + 1}
			if hasSel && !pos.Before(sel.Start) && pos.Before(sel.End) {
				style = cellSelection
			}
			col = g.put(row, col, string(runes[i]), style)
		}
	}
	if active {
		row, col := f.CursorScreen()
		if row >= f.Top && row < f.Top+f.Height && col >= f.Left+gutter && col < f.Left+f.Width {
			g.restyle(row, col, cellCursor)
		}
	}
}

func (m *Model) statusLine() string {
	text, style := m.statusText()
	if m.width > 0 && lipgloss.Width(text) > m.width {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}
	if pad := m.width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (m *Model) statusText() (string, *lipgloss.Style) {
	if m.errMsg != "" {
		return "error: " + m.errMsg, styles.Error
	}
	if m.backendLastErr != "" {
		return "config: " + m.backendLastErr, styles.Error
	}
	if msg := m.editor.Message(); msg != "" {
		return msg, styles.Info
	}
	if info := m.currentInfo(); info != "" {
		return info, styles.Info
	}
	f := m.editor.Active()
	if f == nil || f.Buffer == nil {
		return fmt.Sprintf("[no buffer] frame %d/%d", m.activeIndex()+1, len(m.editor.Frames())), styles.Status
	}
	return fmt.Sprintf("%s  %d:%d  frame %d/%d", f.Buffer.Name, f.Cursor.Line, f.Cursor.Col, m.activeIndex()+1, len(m.editor.Frames())), styles.Status
}

func (m *Model) activeIndex() int {
	active := m.editor.Active()
	for i, f := range m.editor.Frames() {
		if f == active {
			return i
		}
	}
	return 0
}
