package popup

import (
	"errors"
	"testing"

	"github.com/atomicstack/mouse-menu/internal/menu"
)

func TestOpenIssuesOneHandlePerItem(t *testing.T) {
	f := newFixture(t)
	if !f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport()) {
		t.Fatalf("expected popup to open")
	}
	if f.engine.Handles() != 3 || len(f.drawer.live) != 3 {
		t.Fatalf("expected 3 live handles, got %d/%d", f.engine.Handles(), len(f.drawer.live))
	}
	st, ok := f.engine.State()
	if !ok {
		t.Fatalf("expected state while open")
	}
	if st.Selection != NoSelection {
		t.Fatalf("expected no selection after open, got %d", st.Selection)
	}
	if st.Rect.Top != 5 || st.Rect.Bottom != 8 || st.Rect.Left != 10 {
		t.Fatalf("unexpected rect %+v", st.Rect)
	}
	if st.ID == "" {
		t.Fatalf("expected popup id")
	}
}

func TestOpenEmptyDoesNothing(t *testing.T) {
	f := newFixture(t)
	if f.engine.Open(menu.KindWord, nil, 1, 1, screenViewport()) {
		t.Fatalf("expected empty menu to stay closed")
	}
	if f.engine.IsOpen() || len(f.drawer.live) != 0 {
		t.Fatalf("expected nothing drawn")
	}
}

func TestReopenReplacesHandles(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	first, _ := f.engine.State()
	f.engine.Open(menu.KindWord, []menu.Item{{Label: "Paste", Command: "paste-yank-buffer"}}, 2, 2, screenViewport())
	if len(f.drawer.live) != 1 || f.engine.Handles() != 1 {
		t.Fatalf("expected exactly one live handle after reopen, got %d", len(f.drawer.live))
	}
	second, _ := f.engine.State()
	if second.ID == first.ID {
		t.Fatalf("expected a new popup instance")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.engine.Close()
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	f.engine.Close()
	f.engine.Close()
	if f.engine.IsOpen() {
		t.Fatalf("expected closed popup")
	}
	if len(f.drawer.live) != 0 || f.drawer.released != 3 {
		t.Fatalf("expected all 3 handles released once, live=%d released=%d", len(f.drawer.live), f.drawer.released)
	}
}

func TestRefreshMarksDirtyWithoutRebuild(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	f.engine.HandleKey(KeyDown)
	before, _ := f.engine.State()
	issued := f.drawer.next

	f.engine.Refresh()
	f.engine.Refresh()

	after, _ := f.engine.State()
	if after.Rect != before.Rect || after.Selection != before.Selection || len(after.Items) != len(before.Items) {
		t.Fatalf("refresh changed state: %+v -> %+v", before, after)
	}
	if f.drawer.next != issued {
		t.Fatalf("refresh issued new draw commands")
	}
	for h, entry := range f.drawer.live {
		if entry.dirty != 2 {
			t.Fatalf("handle %d: expected 2 dirty marks, got %d", h, entry.dirty)
		}
	}

	f.engine.Close()
	f.engine.Refresh()
}

func TestKeyNavigationRedraws(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	if !f.engine.HandleKey(KeyTab) {
		t.Fatalf("expected tab to be consumed")
	}
	hl := f.drawer.highlighted()
	if len(hl) != 1 || hl[0].Row != 6 {
		t.Fatalf("expected first row highlighted, got %#v", hl)
	}
	f.engine.HandleKey(KeyShiftTab)
	f.engine.HandleKey(KeyUp)
	st, _ := f.engine.State()
	if st.Selection != 1 {
		t.Fatalf("expected selection 1 after wrapping up, got %d", st.Selection)
	}
	if len(f.drawer.live) != 3 {
		t.Fatalf("expected handles replaced on redraw, got %d live", len(f.drawer.live))
	}
	if f.engine.HandleKey(KeyOther) {
		t.Fatalf("expected unrelated keys to pass through")
	}
}

func TestKeysIgnoredWhenClosed(t *testing.T) {
	f := newFixture(t)
	if f.engine.HandleKey(KeyEnter) || f.engine.HandleMouse(Mouse{Button: ButtonWheelUp}) {
		t.Fatalf("expected closed engine to consume nothing")
	}
}

func TestConfirmDispatchesFromTable(t *testing.T) {
	f := newFixture(t)
	f.store.Set(menu.KindSelection.Var(), "Copy yank-selection Delete delete-back Quit quit")
	vp := screenViewport()
	vp.Selection = true
	vp.CursorRow, vp.CursorCol = 3, 4
	kind, opened := f.engine.Trigger(10, 10, vp)
	if kind != menu.KindSelection || !opened {
		t.Fatalf("expected selection popup, got %s opened=%v", kind, opened)
	}
	st, _ := f.engine.State()
	if st.AnchorRow != 3 || st.AnchorCol != 4 {
		t.Fatalf("expected anchor at cursor, got %d/%d", st.AnchorRow, st.AnchorCol)
	}
	f.engine.HandleKey(KeyDown)
	f.engine.HandleKey(KeyDown)
	if !f.engine.HandleKey(KeyEnter) {
		t.Fatalf("expected enter to be consumed")
	}
	if f.engine.IsOpen() {
		t.Fatalf("expected popup closed after confirm")
	}
	if len(f.exec.calls) != 1 || len(f.exec.calls[0]) != 1 || f.exec.calls[0][0] != "delete-back" {
		t.Fatalf("expected delete-back dispatch, got %#v", f.exec.calls)
	}
}

func TestConfirmWithoutSelectionOnlyCloses(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	f.engine.HandleKey(KeyEnter)
	if f.engine.IsOpen() || len(f.exec.calls) != 0 {
		t.Fatalf("expected close without dispatch, calls=%#v", f.exec.calls)
	}
}

func TestEscapeClosesWithoutDispatch(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	f.engine.HandleKey(KeyDown)
	f.engine.HandleKey(KeyEscape)
	if f.engine.IsOpen() || len(f.exec.calls) != 0 || len(f.drawer.live) != 0 {
		t.Fatalf("expected clean cancel")
	}
}

func TestSelectionMenuAnchorsAtClickWhenCursorScrolledAway(t *testing.T) {
	f := newFixture(t)
	vp := &Viewport{Top: 2, Left: 0, Width: 80, Height: 10, ScrollRow: 30, Selection: true, Content: lines{"hello"}}
	vp.CursorRow, vp.CursorCol = -28, 4
	kind, opened := f.engine.Trigger(6, 12, vp)
	if kind != menu.KindSelection || !opened {
		t.Fatalf("expected selection popup, got %s opened=%v", kind, opened)
	}
	st, _ := f.engine.State()
	if st.AnchorRow != 6 || st.AnchorCol != 12 {
		t.Fatalf("expected anchor at the click, got %d/%d", st.AnchorRow, st.AnchorCol)
	}
	if st.Rect.Top < vp.Top || st.Rect.Bottom >= vp.Top+vp.Height {
		t.Fatalf("expected popup inside the frame, got %+v", st.Rect)
	}
}

func TestDispatchTokenisesCommand(t *testing.T) {
	f := newFixture(t)
	f.store.Set(menu.KindEmpty.Var(), "Greet 'echo hello world'")
	f.engine.Trigger(20, 30, screenViewport())
	f.engine.HandleKey(KeyDown)
	f.engine.HandleKey(KeyEnter)
	want := []string{"echo", "hello", "world"}
	if len(f.exec.calls) != 1 || len(f.exec.calls[0]) != len(want) {
		t.Fatalf("unexpected calls %#v", f.exec.calls)
	}
	for i := range want {
		if f.exec.calls[0][i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], f.exec.calls[0][i])
		}
	}
}

func TestConfigChangeBeforeConfirmAborts(t *testing.T) {
	f := newFixture(t)
	f.store.Set(menu.KindEmpty.Var(), "A a B b C c")
	f.engine.Trigger(20, 30, screenViewport())
	f.engine.HandleKey(KeyUp)
	f.store.Set(menu.KindEmpty.Var(), "A a")
	f.engine.HandleKey(KeyEnter)
	if len(f.exec.calls) != 0 {
		t.Fatalf("expected no dispatch, got %#v", f.exec.calls)
	}
	if len(*f.errs) != 1 {
		t.Fatalf("expected one report, got %d", len(*f.errs))
	}
	var rng *menu.IndexOutOfRangeError
	if !errors.As((*f.errs)[0], &rng) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", (*f.errs)[0])
	}
	if f.engine.IsOpen() {
		t.Fatalf("expected popup closed")
	}
}

func TestTriggerWithOddTableReports(t *testing.T) {
	f := newFixture(t)
	f.store.Set(menu.KindEmpty.Var(), "'Frame New' frame-new Quit")
	_, opened := f.engine.Trigger(20, 30, screenViewport())
	if opened || f.engine.IsOpen() {
		t.Fatalf("expected popup to stay closed")
	}
	var shape *menu.ConfigShapeError
	if len(*f.errs) != 1 || !errors.As((*f.errs)[0], &shape) {
		t.Fatalf("expected ConfigShapeError report, got %v", *f.errs)
	}
}

func TestExecutorErrorIsReported(t *testing.T) {
	f := newFixture(t)
	f.exec.err = errors.New("unknown command")
	if kind, _ := f.engine.Trigger(0, 0, screenViewport()); kind != menu.KindWord {
		t.Fatalf("expected word popup, got %s", kind)
	}
	f.engine.HandleKey(KeyDown)
	f.engine.HandleKey(KeyEnter)
	if len(*f.errs) != 1 || (*f.errs)[0].Error() != "unknown command" {
		t.Fatalf("expected executor error report, got %v", *f.errs)
	}
}

func TestClickOutsideDismisses(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	f.engine.HandleKey(KeyDown)
	consumed := f.engine.HandleMouse(Mouse{Button: ButtonLeft, Action: MousePress, Row: 20, Col: 2})
	if consumed {
		t.Fatalf("expected outside click to reach the host")
	}
	if f.engine.IsOpen() || len(f.exec.calls) != 0 || len(f.drawer.live) != 0 {
		t.Fatalf("expected dismissal without dispatch")
	}
}

func TestOtherButtonsOutsideDismiss(t *testing.T) {
	for _, button := range []MouseButton{ButtonMiddle, ButtonRight} {
		f := newFixture(t)
		f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
		if f.engine.HandleMouse(Mouse{Button: button, Action: MousePress, Row: 20, Col: 60}) {
			t.Fatalf("%v: expected outside press to reach the host", button)
		}
		if f.engine.IsOpen() || f.engine.Handles() != 0 || len(f.drawer.live) != 0 {
			t.Fatalf("%v: expected dismissal, open=%v handles=%d", button, f.engine.IsOpen(), f.engine.Handles())
		}
		if len(f.exec.calls) != 0 {
			t.Fatalf("%v: expected no dispatch, got %#v", button, f.exec.calls)
		}
	}
}

func TestClickOnItemConfirms(t *testing.T) {
	f := newFixture(t)
	f.store.Set(menu.KindSelection.Var(), "Copy yank-selection Delete delete-back Quit quit")
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	if !f.engine.HandleMouse(Mouse{Button: ButtonLeft, Action: MousePress, Row: 8, Col: 12}) {
		t.Fatalf("expected click on item to be consumed")
	}
	if len(f.exec.calls) != 1 || f.exec.calls[0][0] != "quit" {
		t.Fatalf("expected quit dispatch, got %#v", f.exec.calls)
	}
	if f.engine.IsOpen() {
		t.Fatalf("expected popup closed")
	}
}

func TestClickOnAnchorRowIsAbsorbed(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	if !f.engine.HandleMouse(Mouse{Button: ButtonLeft, Action: MousePress, Row: 5, Col: 11}) {
		t.Fatalf("expected click inside rect to be consumed")
	}
	if !f.engine.IsOpen() {
		t.Fatalf("expected popup to stay open")
	}
}

func TestHoverMovesSelection(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	if !f.engine.HandleMouse(Mouse{Action: MouseMove, Row: 7, Col: 11}) {
		t.Fatalf("expected hover inside to be consumed")
	}
	st, _ := f.engine.State()
	if st.Selection != 1 {
		t.Fatalf("expected selection 1, got %d", st.Selection)
	}
	if f.engine.HandleMouse(Mouse{Action: MouseMove, Row: 1, Col: 1}) {
		t.Fatalf("expected hover outside to pass through")
	}
	st, _ = f.engine.State()
	if st.Selection != 1 {
		t.Fatalf("expected selection unchanged outside, got %d", st.Selection)
	}
}

func TestDragAndWheelAbsorbed(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	for _, m := range []Mouse{
		{Button: ButtonLeft, Action: MouseDrag, Row: 1, Col: 1},
		{Button: ButtonWheelUp, Action: MousePress, Row: 1, Col: 1},
		{Button: ButtonWheelDown, Action: MousePress, Row: 30, Col: 70},
	} {
		if !f.engine.HandleMouse(m) {
			t.Fatalf("expected %+v to be absorbed", m)
		}
	}
	if !f.engine.IsOpen() {
		t.Fatalf("expected popup to remain open")
	}
}

func TestRightClickWhileOpenPassesThrough(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 5, 10, screenViewport())
	if f.engine.HandleMouse(Mouse{Button: ButtonRight, Action: MousePress, Row: 6, Col: 11}) {
		t.Fatalf("expected right click to be left for the host")
	}
}

func TestPlacementAboveNearBottom(t *testing.T) {
	f := newFixture(t)
	f.engine.Open(menu.KindSelection, threeItems(), 23, 10, screenViewport())
	st, _ := f.engine.State()
	if st.Rect.Top != 19 || st.Rect.Bottom != 22 {
		t.Fatalf("expected popup above the anchor, got %+v", st.Rect)
	}
}
