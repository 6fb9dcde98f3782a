package editor

import (
	"strconv"

	"github.com/atomicstack/mouse-menu/internal/popup"
)

// Frame is a rectangular view onto a buffer. Top and Left are screen cells.
type Frame struct {
	Top       int
	Left      int
	Width     int
	Height    int
	ScrollRow int
	ScrollCol int
	Buffer    *Buffer
	Cursor    Pos

	anchor *Pos
}

// NewFrame returns a frame showing buf, which may be nil.
func NewFrame(buf *Buffer) *Frame {
	return &Frame{Buffer: buf, Cursor: Pos{Line: 1, Col: 1}}
}

// Gutter returns the width of the line-number column including its padding.
func (f *Frame) Gutter() int {
	if f.Buffer == nil {
		return 0
	}
	return len(strconv.Itoa(f.Buffer.LineCount())) + 1
}

// Contains reports whether the screen cell lies inside the frame.
func (f *Frame) Contains(row, col int) bool {
	return row >= f.Top && row < f.Top+f.Height && col >= f.Left && col < f.Left+f.Width
}

// HasSelection reports whether a non-empty selection is active.
func (f *Frame) HasSelection() bool {
	r, ok := f.Selection()
	return ok && !r.Empty()
}

// Selection returns the active selection range.
func (f *Frame) Selection() (Range, bool) {
	if f.anchor == nil || f.Buffer == nil {
		return Range{}, false
	}
	return newRange(*f.anchor, f.Cursor), true
}

// StartSelection anchors a selection at the cursor unless one is active.
func (f *Frame) StartSelection() {
	if f.anchor != nil || f.Buffer == nil {
		return
	}
	anchor := f.Cursor
	f.anchor = &anchor
}

// ClearSelection drops the selection.
func (f *Frame) ClearSelection() {
	f.anchor = nil
}

// CursorScreen returns the cursor's screen cell.
func (f *Frame) CursorScreen() (row, col int) {
	row = f.Top + f.Cursor.Line - 1 - f.ScrollRow
	col = f.Left + f.Gutter() + f.Cursor.Col - 1 - f.ScrollCol
	return row, col
}

// ScreenToPos maps a screen cell to a buffer position, clamped onto text.
func (f *Frame) ScreenToPos(row, col int) Pos {
	vp := f.Viewport()
	line, column := vp.ContentPos(row, col)
	p := Pos{Line: line, Col: column}
	if f.Buffer == nil {
		return p
	}
	return f.Buffer.Clamp(p)
}

// SetCursor moves the cursor and scrolls it into view.
func (f *Frame) SetCursor(p Pos) {
	if f.Buffer == nil {
		return
	}
	f.Cursor = f.Buffer.Clamp(p)
	f.scrollToCursor()
}

// MoveCursor moves by the given deltas. When extend is set the selection grows
// with the cursor, otherwise it is cleared.
func (f *Frame) MoveCursor(dLine, dCol int, extend bool) {
	if f.Buffer == nil {
		return
	}
	if extend {
		f.StartSelection()
	} else {
		f.ClearSelection()
	}
	p := f.Cursor
	if dCol != 0 {
		p.Col += dCol
		if p.Col < 1 && p.Line > 1 {
			p.Line--
			p.Col = f.Buffer.LineLen(p.Line) + 1
		} else if p.Col > f.Buffer.LineLen(p.Line)+1 && p.Line < f.Buffer.LineCount() {
			p.Line++
			p.Col = 1
		}
	}
	p.Line += dLine
	f.SetCursor(p)
}

// Scroll shifts the view by delta rows without moving the cursor.
func (f *Frame) Scroll(delta int) {
	if f.Buffer == nil {
		return
	}
	f.ScrollRow += delta
	if limit := f.Buffer.LineCount() - 1; f.ScrollRow > limit {
		f.ScrollRow = limit
	}
	if f.ScrollRow < 0 {
		f.ScrollRow = 0
	}
}

func (f *Frame) scrollToCursor() {
	if f.Height > 0 {
		if f.Cursor.Line-1 < f.ScrollRow {
			f.ScrollRow = f.Cursor.Line - 1
		}
		if f.Cursor.Line-1 >= f.ScrollRow+f.Height {
			f.ScrollRow = f.Cursor.Line - f.Height
		}
	}
	if text := f.Width - f.Gutter(); text > 0 {
		if f.Cursor.Col-1 < f.ScrollCol {
			f.ScrollCol = f.Cursor.Col - 1
		}
		if f.Cursor.Col-1 >= f.ScrollCol+text {
			f.ScrollCol = f.Cursor.Col - text
		}
	}
}

// Viewport snapshots the frame for the popup engine.
func (f *Frame) Viewport() *popup.Viewport {
	row, col := f.CursorScreen()
	vp := &popup.Viewport{
		Top:       f.Top,
		Left:      f.Left,
		Width:     f.Width,
		Height:    f.Height,
		ScrollRow: f.ScrollRow,
		ScrollCol: f.ScrollCol,
		Gutter:    f.Gutter(),
		Selection: f.HasSelection(),
		CursorRow: row,
		CursorCol: col,
	}
	if f.Buffer != nil {
		vp.Content = f.Buffer
	}
	return vp
}

// SetCursorFromScreen moves the cursor to the text under a screen cell.
func (f *Frame) SetCursorFromScreen(row, col int) {
	f.SetCursor(f.ScreenToPos(row, col))
}
