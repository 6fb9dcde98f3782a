package popup

import (
	"errors"
	"fmt"

	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/atomicstack/mouse-menu/internal/menu"
)

var errNoExecutor = errors.New("no command executor configured")

// Dispatch looks up the command for selection in the current table for kind
// and runs it. The table is read again rather than taken from the open menu so
// a configuration reload between open and confirm is honoured; a selection
// that no longer exists aborts without running anything.
func Dispatch(src *menu.Source, kind menu.Kind, selection int, exec Executor) error {
	command, err := src.Command(kind, selection)
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", kind, err)
	}
	tokens, err := menu.Split(kind.Var(), command)
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", kind, err)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("dispatch %s: item %d has an empty command", kind, selection)
	}
	if exec == nil {
		return errNoExecutor
	}
	events.Command.Queue(tokens)
	err = exec.Execute(tokens)
	events.Command.Result(tokens, err)
	return err
}
