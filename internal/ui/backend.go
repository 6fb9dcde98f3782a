package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/mouse-menu/internal/backend"
	"github.com/atomicstack/mouse-menu/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent updates the table variables. An open popup keeps the items
// it was opened with; confirming it re-reads the new table.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		logging.Error(res.Err)
		m.backendLastErr = res.Err.Error()
		return
	}
	m.backendLastErr = ""
	if res.TablesUpdated {
		m.setInfo(fmt.Sprintf("menu tables updated: %s", strings.Join(res.Changed, ", ")))
	}
}
