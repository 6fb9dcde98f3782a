package editor

import (
	"errors"

	"github.com/atomicstack/mouse-menu/internal/logging/events"
)

var errLastFrame = errors.New("cannot delete the last frame")

// Editor owns the frames shown on screen and the commands that act on them.
type Editor struct {
	frames  []*Frame
	active  int
	width   int
	height  int
	yank    string
	message string
	quit    bool

	commands map[string]Command
}

// New creates an editor with one frame per buffer, or a single empty frame
// when no buffers are given.
func New(width, height int, buffers ...*Buffer) *Editor {
	e := &Editor{width: width, height: height}
	if len(buffers) == 0 {
		buffers = []*Buffer{NewBuffer("*scratch*", "")}
	}
	for _, buf := range buffers {
		e.frames = append(e.frames, NewFrame(buf))
	}
	e.commands = defaultCommands()
	e.layout()
	return e
}

// Resize changes the screen area available to frames.
func (e *Editor) Resize(width, height int) {
	e.width = width
	e.height = height
	e.layout()
}

// layout stacks frames as full-width horizontal bands.
func (e *Editor) layout() {
	n := len(e.frames)
	if n == 0 {
		return
	}
	each := e.height / n
	top := 0
	for i, f := range e.frames {
		h := each
		if i == n-1 {
			h = e.height - top
		}
		f.Top = top
		f.Left = 0
		f.Width = e.width
		f.Height = h
		if f.Buffer != nil {
			f.SetCursor(f.Cursor)
		}
		top += h
	}
}

func (e *Editor) Frames() []*Frame {
	return e.frames
}

func (e *Editor) Active() *Frame {
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[e.active]
}

// FrameAt returns the frame under a screen cell, preferring the active one.
func (e *Editor) FrameAt(row, col int) *Frame {
	if active := e.Active(); active != nil && active.Contains(row, col) {
		return active
	}
	for i := len(e.frames) - 1; i >= 0; i-- {
		if e.frames[i].Contains(row, col) {
			return e.frames[i]
		}
	}
	return nil
}

// Activate makes f the active frame.
func (e *Editor) Activate(f *Frame) {
	for i, candidate := range e.frames {
		if candidate == f {
			e.active = i
			return
		}
	}
}

func (e *Editor) Yank() string {
	return e.yank
}

func (e *Editor) SetYank(text string) {
	e.yank = text
}

// Message returns the last informational message set by a command.
func (e *Editor) Message() string {
	return e.message
}

func (e *Editor) ClearMessage() {
	e.message = ""
}

// Quit reports whether a quit command ran.
func (e *Editor) Quit() bool {
	return e.quit
}

func (e *Editor) newFrame(buf *Buffer) {
	e.frames = append(e.frames, NewFrame(buf))
	e.active = len(e.frames) - 1
	e.layout()
	events.Editor.Frame("new", len(e.frames), e.active)
}

func (e *Editor) deleteFrame() error {
	if len(e.frames) <= 1 {
		return errLastFrame
	}
	e.frames = append(e.frames[:e.active], e.frames[e.active+1:]...)
	if e.active >= len(e.frames) {
		e.active = len(e.frames) - 1
	}
	e.layout()
	events.Editor.Frame("delete", len(e.frames), e.active)
	return nil
}

func (e *Editor) nextFrame() {
	if len(e.frames) == 0 {
		return
	}
	e.active = (e.active + 1) % len(e.frames)
	events.Editor.Frame("next", len(e.frames), e.active)
}

// InsertText types text at the active cursor, replacing any selection.
func (e *Editor) InsertText(text string) error {
	f, err := activeBuffer(e)
	if err != nil {
		return err
	}
	if r, ok := f.Selection(); ok && !r.Empty() {
		f.SetCursor(f.Buffer.Delete(r))
	}
	f.ClearSelection()
	f.SetCursor(f.Buffer.Insert(f.Cursor, text))
	return nil
}
