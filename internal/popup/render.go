package popup

import (
	"strings"

	"github.com/atomicstack/mouse-menu/internal/menu"
	"github.com/charmbracelet/x/ansi"
)

// DrawCommand is a single popup row ready to be issued to a Drawer.
type DrawCommand struct {
	Row   int
	Col   int
	Style Style
	Text  string
}

// LabelWidth returns the widest label's display width.
func LabelWidth(items []menu.Item) int {
	width := 0
	for _, item := range items {
		if w := ansi.StringWidth(item.Label); w > width {
			width = w
		}
	}
	return width
}

// Render lays out one row per item below rect.Top. The selected row is
// highlighted.
func Render(items []menu.Item, rect Rect, leftSpace bool, labelWidth, selected int) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(items))
	for i, item := range items {
		style := StyleNormal
		if i == selected {
			style = StyleHighlight
		}
		cmds = append(cmds, DrawCommand{
			Row:   rect.Top + 1 + i,
			Col:   rect.Left,
			Style: style,
			Text:  rowText(item.Label, leftSpace, labelWidth),
		})
	}
	return cmds
}

func rowText(label string, leftSpace bool, labelWidth int) string {
	var b strings.Builder
	if leftSpace {
		b.WriteByte(' ')
	}
	b.WriteString(label)
	if pad := labelWidth - ansi.StringWidth(label); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteByte(' ')
	return b.String()
}
