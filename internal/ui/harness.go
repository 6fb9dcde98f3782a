package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands
// except quit, which is recorded on the model's editor instead.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	default:
		h.Send(msg)
	}
}

// Press sends a mouse press of button at a screen cell.
func (h *Harness) Press(button tea.MouseButton, row, col int) {
	h.Send(tea.MouseMsg{X: col, Y: row, Button: button, Action: tea.MouseActionPress})
}

// Release sends a mouse release of button at a screen cell.
func (h *Harness) Release(button tea.MouseButton, row, col int) {
	h.Send(tea.MouseMsg{X: col, Y: row, Button: button, Action: tea.MouseActionRelease})
}

// Hover sends pointer motion with no button held.
func (h *Harness) Hover(row, col int) {
	h.Send(tea.MouseMsg{X: col, Y: row, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion})
}

// Key sends a key of the given type.
func (h *Harness) Key(t tea.KeyType) {
	h.Send(tea.KeyMsg{Type: t})
}

// Type sends text as rune keys.
func (h *Harness) Type(text string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
