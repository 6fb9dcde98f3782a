package ui

import (
	"github.com/atomicstack/mouse-menu/internal/popup"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the editor's key bindings.
type keyMap struct {
	Quit        key.Binding
	Menu        key.Binding
	FrameNext   key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	SelectUp    key.Binding
	SelectDown  key.Binding
	SelectLeft  key.Binding
	SelectRight key.Binding
	Backspace   key.Binding
	Newline     key.Binding
	Cancel      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Menu: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "menu at cursor"),
		),
		FrameNext: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next frame"),
		),
		Up:          key.NewBinding(key.WithKeys("up")),
		Down:        key.NewBinding(key.WithKeys("down")),
		Left:        key.NewBinding(key.WithKeys("left")),
		Right:       key.NewBinding(key.WithKeys("right")),
		SelectUp:    key.NewBinding(key.WithKeys("shift+up")),
		SelectDown:  key.NewBinding(key.WithKeys("shift+down")),
		SelectLeft:  key.NewBinding(key.WithKeys("shift+left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right")),
		Backspace:   key.NewBinding(key.WithKeys("backspace")),
		Newline:     key.NewBinding(key.WithKeys("enter")),
		Cancel:      key.NewBinding(key.WithKeys("esc")),
	}
}

// popupKey translates a key press into the popup's key set.
func popupKey(msg tea.KeyMsg) popup.Key {
	switch msg.Type {
	case tea.KeyUp:
		return popup.KeyUp
	case tea.KeyDown:
		return popup.KeyDown
	case tea.KeyTab:
		return popup.KeyTab
	case tea.KeyShiftTab:
		return popup.KeyShiftTab
	case tea.KeyEnter:
		return popup.KeyEnter
	case tea.KeyEsc:
		return popup.KeyEscape
	default:
		return popup.KeyOther
	}
}

// popupMouse translates a terminal mouse event into screen coordinates and
// the popup's button and action sets.
func popupMouse(msg tea.MouseMsg) popup.Mouse {
	ev := popup.Mouse{Row: msg.Y, Col: msg.X}
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = popup.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = popup.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = popup.ButtonRight
	case tea.MouseButtonWheelUp:
		ev.Button = popup.ButtonWheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = popup.ButtonWheelDown
	default:
		ev.Button = popup.ButtonNone
	}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = popup.MousePress
	case tea.MouseActionRelease:
		ev.Action = popup.MouseRelease
	default:
		if ev.Button == popup.ButtonNone {
			ev.Action = popup.MouseMove
		} else {
			ev.Action = popup.MouseDrag
		}
	}
	return ev
}
