package popup

import (
	"github.com/atomicstack/mouse-menu/internal/logging"
	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/atomicstack/mouse-menu/internal/menu"
	"github.com/google/uuid"
)

// State describes the open popup.
type State struct {
	ID         string
	Kind       menu.Kind
	AnchorRow  int
	AnchorCol  int
	Items      []menu.Item
	Rect       Rect
	LeftSpace  bool
	LabelWidth int
	Selection  int
}

type instance struct {
	State
	selection Selection
	handles   []Handle
}

// Options wires an Engine to its host.
type Options struct {
	Drawer   Drawer
	Executor Executor
	Reporter Reporter
	Source   *menu.Source
}

// Engine owns at most one popup at a time. It is not safe for concurrent use;
// every method is expected to run on the host's event loop.
type Engine struct {
	drawer   Drawer
	exec     Executor
	reporter Reporter
	source   *menu.Source
	current  *instance
}

// New constructs an engine. A nil Source reads the built-in tables.
func New(opts Options) *Engine {
	src := opts.Source
	if src == nil {
		src = menu.NewSource(nil)
	}
	return &Engine{
		drawer:   opts.Drawer,
		exec:     opts.Executor,
		reporter: opts.Reporter,
		source:   src,
	}
}

// IsOpen reports whether a popup is shown.
func (e *Engine) IsOpen() bool {
	return e.current != nil
}

// State returns a copy of the open popup's state.
func (e *Engine) State() (State, bool) {
	if e.current == nil {
		return State{}, false
	}
	st := e.current.State
	st.Items = menu.CloneItems(st.Items)
	st.Selection = e.current.selection.Index()
	return st, true
}

// Handles returns the number of draw handles currently held.
func (e *Engine) Handles() int {
	if e.current == nil {
		return 0
	}
	return len(e.current.handles)
}

// Trigger classifies a click, resolves the matching table and opens the popup.
// Table errors are reported and leave the popup closed.
func (e *Engine) Trigger(row, col int, vp *Viewport) (menu.Kind, bool) {
	kind := Classify(row, col, vp)
	items, err := e.source.Items(kind)
	if err != nil {
		e.fail("", err)
	}
	anchorRow, anchorCol := row, col
	if kind == menu.KindSelection && vp.cursorVisible() {
		anchorRow, anchorCol = vp.CursorRow, vp.CursorCol
	}
	return kind, e.Open(kind, items, anchorRow, anchorCol, vp)
}

// cursorVisible reports whether the cursor cell lies inside the viewport.
// A frame scrolled away from its cursor anchors selection menus at the click.
func (vp *Viewport) cursorVisible() bool {
	return vp.CursorRow >= vp.Top && vp.CursorRow < vp.Top+vp.Height &&
		vp.CursorCol >= vp.Left && vp.CursorCol < vp.Left+vp.Width
}

// Open shows items anchored at (anchorRow, anchorCol) inside vp. Any popup
// already open is closed first. An empty item list shows nothing.
func (e *Engine) Open(kind menu.Kind, items []menu.Item, anchorRow, anchorCol int, vp *Viewport) bool {
	e.close(events.ReasonReplace)
	if len(items) == 0 {
		events.Popup.Empty(kind.String())
		return false
	}

	p := placement(anchorRow, anchorCol, items, vp)
	inst := &instance{
		State: State{
			ID:         uuid.NewString(),
			Kind:       kind,
			AnchorRow:  anchorRow,
			AnchorCol:  anchorCol,
			Items:      menu.CloneItems(items),
			Rect:       Place(p),
			LeftSpace:  p.LeftSpace(),
			LabelWidth: p.LabelWidth,
		},
		selection: NewSelection(len(items)),
	}
	e.current = inst
	e.draw()
	events.Popup.Open(inst.ID, kind.String(), len(items), inst.Rect.Top, inst.Rect.Left, inst.Rect.Width)
	return true
}

func placement(anchorRow, anchorCol int, items []menu.Item, vp *Viewport) Placement {
	p := Placement{
		AnchorRow:  anchorRow,
		AnchorCol:  anchorCol,
		Items:      len(items),
		LabelWidth: LabelWidth(items),
	}
	if vp == nil {
		p.ViewHeight = anchorRow + len(items) + 1
		return p
	}
	p.ViewTop = vp.Top
	p.ViewLeft = vp.Left
	p.ViewHeight = vp.Height
	p.ViewWidth = vp.Width
	return p
}

// Close dismisses the popup. Calling it while closed does nothing.
func (e *Engine) Close() {
	e.close(events.ReasonHost)
}

func (e *Engine) close(reason events.PopupReason) {
	inst := e.current
	if inst == nil {
		return
	}
	e.releaseHandles(inst)
	e.current = nil
	events.Popup.Close(inst.ID, reason)
}

// Refresh marks every issued row for re-presentation without recomputing
// geometry or content.
func (e *Engine) Refresh() {
	if e.current == nil || e.drawer == nil {
		return
	}
	for _, h := range e.current.handles {
		e.drawer.MarkDirty(h)
	}
}

// HandleKey applies a key to the open popup and reports whether the key was
// consumed.
func (e *Engine) HandleKey(k Key) bool {
	inst := e.current
	if inst == nil {
		return false
	}
	switch k {
	case KeyEscape:
		e.close(events.ReasonEscape)
		return true
	case KeyEnter:
		e.confirm()
		return true
	case KeyUp, KeyShiftTab:
		inst.selection.Prev()
	case KeyDown, KeyTab:
		inst.selection.Next()
	default:
		return false
	}
	events.Popup.Cursor(inst.ID, inst.selection.Index())
	e.draw()
	return true
}

// HandleMouse applies a mouse event to the open popup and reports whether it
// was consumed. A press of any button outside the popup closes it but is left
// for the host to handle.
func (e *Engine) HandleMouse(m Mouse) bool {
	inst := e.current
	if inst == nil {
		return false
	}
	if m.IsWheel() || m.Action == MouseDrag {
		return true
	}
	inside := inst.Rect.Contains(m.Row, m.Col)
	switch m.Action {
	case MouseMove:
		if idx := inst.Rect.ItemAt(m.Row, m.Col); idx >= 0 && inst.selection.Set(idx) {
			events.Popup.Cursor(inst.ID, idx)
			e.draw()
		}
		return inside
	case MouseRelease:
		return inside
	case MousePress:
		if !inside {
			e.close(events.ReasonOutside)
			return false
		}
		if m.Button != ButtonLeft {
			return false
		}
		idx := inst.Rect.ItemAt(m.Row, m.Col)
		if idx < 0 {
			return true
		}
		inst.selection.Set(idx)
		e.draw()
		e.confirm()
		return true
	}
	return false
}

func (e *Engine) confirm() {
	inst := e.current
	if inst == nil {
		return
	}
	selection := inst.selection.Index()
	valid := inst.selection.Valid()
	e.close(events.ReasonConfirm)
	if !valid {
		return
	}
	if err := Dispatch(e.source, inst.Kind, selection, e.exec); err != nil {
		e.fail(inst.ID, err)
	}
}

func (e *Engine) draw() {
	inst := e.current
	if inst == nil {
		return
	}
	e.releaseHandles(inst)
	if e.drawer == nil {
		return
	}
	cmds := Render(inst.Items, inst.Rect, inst.LeftSpace, inst.LabelWidth, inst.selection.Index())
	inst.handles = make([]Handle, 0, len(cmds))
	for _, c := range cmds {
		inst.handles = append(inst.handles, e.drawer.Issue(c.Row, c.Col, c.Style, c.Text))
	}
}

func (e *Engine) releaseHandles(inst *instance) {
	if e.drawer != nil {
		for _, h := range inst.handles {
			e.drawer.Release(h)
		}
	}
	inst.handles = nil
}

func (e *Engine) fail(id string, err error) {
	logging.Error(err)
	events.Popup.Error(id, err)
	if e.reporter != nil {
		e.reporter.Report(err)
	}
}
