package ui

import (
	"github.com/atomicstack/mouse-menu/internal/config"
	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/atomicstack/mouse-menu/internal/popup"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg offers the key to an open popup first; the editor only sees
// keys the popup did not consume.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.engine.Close()
		return tea.Quit
	}
	if m.engine.IsOpen() && m.engine.HandleKey(popupKey(keyMsg)) {
		return nil
	}

	m.errMsg = ""
	m.editor.ClearMessage()
	f := m.editor.Active()
	switch {
	case key.Matches(keyMsg, m.keys.Menu):
		m.openAtCursor()
	case key.Matches(keyMsg, m.keys.FrameNext):
		m.runCommand("frame-next")
	case key.Matches(keyMsg, m.keys.Up):
		f.MoveCursor(-1, 0, false)
	case key.Matches(keyMsg, m.keys.Down):
		f.MoveCursor(1, 0, false)
	case key.Matches(keyMsg, m.keys.Left):
		f.MoveCursor(0, -1, false)
	case key.Matches(keyMsg, m.keys.Right):
		f.MoveCursor(0, 1, false)
	case key.Matches(keyMsg, m.keys.SelectUp):
		f.MoveCursor(-1, 0, true)
	case key.Matches(keyMsg, m.keys.SelectDown):
		f.MoveCursor(1, 0, true)
	case key.Matches(keyMsg, m.keys.SelectLeft):
		f.MoveCursor(0, -1, true)
	case key.Matches(keyMsg, m.keys.SelectRight):
		f.MoveCursor(0, 1, true)
	case key.Matches(keyMsg, m.keys.Backspace):
		m.runCommand("delete-back")
	case key.Matches(keyMsg, m.keys.Cancel):
		m.runCommand("select-off")
	case key.Matches(keyMsg, m.keys.Newline):
		m.insert("\n")
	case keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace:
		m.insert(string(keyMsg.Runes))
	}
	return nil
}

func (m *Model) insert(text string) {
	if text == "" {
		return
	}
	if err := m.editor.InsertText(text); err != nil {
		m.reportError(err)
	}
}

// openAtCursor is the keyboard equivalent of a right click on the cursor.
func (m *Model) openAtCursor() {
	f := m.editor.Active()
	if f == nil {
		return
	}
	row, col := f.CursorScreen()
	m.engine.Trigger(row, col, f.Viewport())
}

// handleMouseMsg offers the event to an open popup first, then applies it to
// the editor. A right button transition matching the trigger opens a popup.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	ev := popupMouse(mouseMsg)
	if m.engine.IsOpen() && m.engine.HandleMouse(ev) {
		return nil
	}

	switch {
	case ev.Button == popup.ButtonRight && ev.Action == m.triggerAction():
		m.rightClick(ev)
	case ev.IsWheel():
		m.wheel(ev)
	case ev.Button == popup.ButtonLeft && ev.Action == popup.MousePress:
		m.leftPress(ev)
	case ev.Action == popup.MouseDrag && m.dragging:
		if f := m.editor.Active(); f != nil {
			f.StartSelection()
			f.SetCursorFromScreen(ev.Row, ev.Col)
		}
	case ev.Action == popup.MouseRelease:
		m.dragging = false
	}
	return nil
}

func (m *Model) triggerAction() popup.MouseAction {
	if m.trigger == config.TriggerRelease {
		return popup.MouseRelease
	}
	return popup.MousePress
}

func (m *Model) rightClick(ev popup.Mouse) {
	events.Editor.Click(ev.Button.String(), ev.Row, ev.Col)
	f := m.editor.FrameAt(ev.Row, ev.Col)
	if f == nil {
		return
	}
	m.editor.Activate(f)
	m.errMsg = ""
	// Without a selection the click also places the cursor, so on-word
	// commands act where the user clicked.
	if f.Buffer != nil && !f.HasSelection() {
		f.SetCursorFromScreen(ev.Row, ev.Col)
	}
	m.engine.Trigger(ev.Row, ev.Col, f.Viewport())
}

func (m *Model) leftPress(ev popup.Mouse) {
	events.Editor.Click(ev.Button.String(), ev.Row, ev.Col)
	f := m.editor.FrameAt(ev.Row, ev.Col)
	if f == nil {
		return
	}
	m.editor.Activate(f)
	f.ClearSelection()
	f.SetCursorFromScreen(ev.Row, ev.Col)
	m.dragging = true
}

func (m *Model) wheel(ev popup.Mouse) {
	f := m.editor.FrameAt(ev.Row, ev.Col)
	if f == nil {
		return
	}
	if ev.Button == popup.ButtonWheelUp {
		f.Scroll(-wheelStep)
	} else {
		f.Scroll(wheelStep)
	}
}
