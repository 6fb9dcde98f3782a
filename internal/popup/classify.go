package popup

import "github.com/atomicstack/mouse-menu/internal/menu"

// ContentPos translates a screen cell into 1-based buffer line and column.
func (vp *Viewport) ContentPos(row, col int) (line, column int) {
	line = row - vp.Top + vp.ScrollRow + 1
	column = col - vp.Left + vp.ScrollCol - vp.Gutter + 1
	return line, column
}

// Classify decides which command table applies to a click at (row, col).
// An active selection wins over position; a missing frame or buffer is
// treated as empty space.
func Classify(row, col int, vp *Viewport) menu.Kind {
	if vp == nil || vp.Content == nil {
		return menu.KindEmpty
	}
	if vp.Selection {
		return menu.KindSelection
	}
	line, column := vp.ContentPos(row, col)
	if line < 1 || line > vp.Content.LineCount() {
		return menu.KindEmpty
	}
	if column <= vp.Content.VisualWidth(line)+1 {
		return menu.KindWord
	}
	return menu.KindEmpty
}
