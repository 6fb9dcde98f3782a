package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Command is an editor command invoked with its arguments.
type Command func(e *Editor, args []string) error

var (
	errNoBuffer    = errors.New("active frame has no buffer")
	errNoSelection = errors.New("no active selection")
)

// UnknownCommandError reports a command name that is not registered.
type UnknownCommandError struct {
	Name       string
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

func defaultCommands() map[string]Command {
	return map[string]Command{
		"paste-yank-buffer": pasteYankBuffer,
		"yank-selection":    yankSelection,
		"delete-back":       deleteBack,
		"select-off":        selectOff,
		"frame-new":         frameNew,
		"frame-delete":      frameDelete,
		"frame-next":        frameNext,
		"quit":              quit,
		"echo":              echo,
	}
}

// Register adds or replaces a command.
func (e *Editor) Register(name string, cmd Command) {
	e.commands[name] = cmd
}

// CommandNames lists registered commands in sorted order.
func (e *Editor) CommandNames() []string {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs tokens[0] with the remaining tokens as arguments.
func (e *Editor) Execute(tokens []string) error {
	if len(tokens) == 0 {
		return errors.New("empty command")
	}
	name, args := tokens[0], tokens[1:]
	cmd, ok := e.commands[name]
	if !ok {
		return &UnknownCommandError{Name: name, Suggestion: e.suggest(name)}
	}
	events.Editor.Command(name, args)
	if err := cmd(e, args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (e *Editor) suggest(name string) string {
	ranks := fuzzy.RankFindNormalizedFold(name, e.CommandNames())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func activeBuffer(e *Editor) (*Frame, error) {
	f := e.Active()
	if f == nil || f.Buffer == nil {
		return nil, errNoBuffer
	}
	return f, nil
}

func pasteYankBuffer(e *Editor, _ []string) error {
	f, err := activeBuffer(e)
	if err != nil {
		return err
	}
	if e.yank == "" {
		return nil
	}
	f.ClearSelection()
	f.SetCursor(f.Buffer.Insert(f.Cursor, e.yank))
	return nil
}

func yankSelection(e *Editor, _ []string) error {
	f, err := activeBuffer(e)
	if err != nil {
		return err
	}
	r, ok := f.Selection()
	if !ok || r.Empty() {
		return errNoSelection
	}
	e.yank = f.Buffer.Text(r)
	f.ClearSelection()
	return nil
}

func deleteBack(e *Editor, _ []string) error {
	f, err := activeBuffer(e)
	if err != nil {
		return err
	}
	if r, ok := f.Selection(); ok && !r.Empty() {
		f.ClearSelection()
		f.SetCursor(f.Buffer.Delete(r))
		return nil
	}
	f.ClearSelection()
	start := f.Cursor
	if start.Col > 1 {
		start.Col--
	} else if start.Line > 1 {
		start.Line--
		start.Col = f.Buffer.LineLen(start.Line) + 1
	} else {
		return nil
	}
	f.SetCursor(f.Buffer.Delete(Range{Start: start, End: f.Cursor}))
	return nil
}

func selectOff(e *Editor, _ []string) error {
	if f := e.Active(); f != nil {
		f.ClearSelection()
	}
	return nil
}

func frameNew(e *Editor, _ []string) error {
	e.newFrame(nil)
	return nil
}

func frameDelete(e *Editor, _ []string) error {
	return e.deleteFrame()
}

func frameNext(e *Editor, _ []string) error {
	e.nextFrame()
	return nil
}

func quit(e *Editor, _ []string) error {
	e.quit = true
	return nil
}

func echo(e *Editor, args []string) error {
	e.message = strings.Join(args, " ")
	return nil
}
