package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/mouse-menu/internal/backend"
	"github.com/atomicstack/mouse-menu/internal/config"
	"github.com/atomicstack/mouse-menu/internal/editor"
	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/atomicstack/mouse-menu/internal/state"
	"github.com/atomicstack/mouse-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const reloadDebounce = 200 * time.Millisecond

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg config.Config) (err error) {
	defer func() { events.App.Exit(err) }()

	buffers, err := LoadBuffers(cfg.Files)
	if err != nil {
		return err
	}
	watcher := backend.NewWatcher(cfg.App.ConfigPath, cfg.App.Watch, reloadDebounce)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Width:      cfg.App.Width,
		Height:     cfg.App.Height,
		Trigger:    cfg.App.Trigger,
		Buffers:    buffers,
		Vars:       state.NewVarStore(),
		Watcher:    watcher,
		ConfigPath: cfg.App.ConfigPath,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadBuffers opens one buffer per file.
func LoadBuffers(files []string) ([]*editor.Buffer, error) {
	buffers := make([]*editor.Buffer, 0, len(files))
	for _, file := range files {
		buf, err := editor.LoadBuffer(file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file, err)
		}
		buffers = append(buffers, buf)
	}
	return buffers, nil
}
