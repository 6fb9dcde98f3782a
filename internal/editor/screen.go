package editor

import "github.com/atomicstack/mouse-menu/internal/popup"

// Draw is a line issued directly to the screen on top of the frames.
type Draw struct {
	Row   int
	Col   int
	Style popup.Style
	Text  string
	Dirty bool
}

// Screen implements popup.Drawer for the terminal view.
type Screen struct {
	next  popup.Handle
	draws map[popup.Handle]*Draw
	order []popup.Handle
}

func NewScreen() *Screen {
	return &Screen{draws: make(map[popup.Handle]*Draw)}
}

func (s *Screen) Issue(row, col int, style popup.Style, text string) popup.Handle {
	s.next++
	s.draws[s.next] = &Draw{Row: row, Col: col, Style: style, Text: text, Dirty: true}
	s.order = append(s.order, s.next)
	return s.next
}

func (s *Screen) MarkDirty(h popup.Handle) {
	if d, ok := s.draws[h]; ok {
		d.Dirty = true
	}
}

func (s *Screen) Release(h popup.Handle) {
	if _, ok := s.draws[h]; !ok {
		return
	}
	delete(s.draws, h)
	for i, candidate := range s.order {
		if candidate == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Live returns the number of unreleased draws.
func (s *Screen) Live() int {
	return len(s.draws)
}

// Draws returns copies of the live draws in issue order.
func (s *Screen) Draws() []Draw {
	out := make([]Draw, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, *s.draws[h])
	}
	return out
}

// Present returns the live draws and clears their dirty flags.
func (s *Screen) Present() []Draw {
	out := s.Draws()
	for _, d := range s.draws {
		d.Dirty = false
	}
	return out
}

// Pending counts draws waiting to be presented.
func (s *Screen) Pending() int {
	n := 0
	for _, d := range s.draws {
		if d.Dirty {
			n++
		}
	}
	return n
}
