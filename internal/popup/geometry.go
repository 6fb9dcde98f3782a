package popup

// Rect is the screen area covered by an open popup. Items occupy rows
// Top+1 through Bottom.
type Rect struct {
	Top    int
	Bottom int
	Left   int
	Width  int
}

// Contains reports whether (row, col) lies within [Top,Bottom]x[Left,Left+Width].
func (r Rect) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Left+r.Width
}

// ItemAt maps a screen cell to an item index, or -1.
func (r Rect) ItemAt(row, col int) int {
	if !r.Contains(row, col) || row == r.Top {
		return -1
	}
	return row - r.Top - 1
}

// Placement holds the inputs to Place.
type Placement struct {
	AnchorRow  int
	AnchorCol  int
	Items      int
	LabelWidth int
	ViewTop    int
	ViewLeft   int
	ViewHeight int
	ViewWidth  int
}

// LeftSpace reports whether the anchor has a free cell to its left, in which
// case rows get a leading space.
func (p Placement) LeftSpace() bool {
	return p.AnchorCol > p.ViewLeft
}

// Place computes the popup rectangle. The menu opens below the anchor unless
// it would reach the bottom of the viewport, in which case it opens above.
// Horizontally it starts at the anchor column and is shifted left to stay
// inside a viewport of known width.
func Place(p Placement) Rect {
	width := p.LabelWidth + 1
	if p.LeftSpace() {
		width++
	}

	top := p.AnchorRow
	if p.AnchorRow+p.Items >= p.ViewTop+p.ViewHeight {
		top = p.AnchorRow - p.Items - 1
	}

	left := p.AnchorCol
	if p.ViewWidth > 0 {
		if right := p.ViewLeft + p.ViewWidth; left+width > right {
			left = right - width
		}
		if left < p.ViewLeft {
			left = p.ViewLeft
		}
	}

	return Rect{
		Top:    top,
		Bottom: top + p.Items,
		Left:   left,
		Width:  width,
	}
}
