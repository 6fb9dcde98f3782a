package popup

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/mouse-menu/internal/logging"
	"github.com/atomicstack/mouse-menu/internal/menu"
)

type lines []string

func (l lines) LineCount() int { return len(l) }

func (l lines) VisualWidth(line int) int { return len(l[line-1]) }

type mapStore map[string]string

func (m mapStore) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m mapStore) Set(name, value string) { m[name] = value }

type issued struct {
	DrawCommand
	dirty int
}

type fakeDrawer struct {
	next     Handle
	live     map[Handle]*issued
	released int
}

func newFakeDrawer() *fakeDrawer {
	return &fakeDrawer{live: make(map[Handle]*issued)}
}

func (d *fakeDrawer) Issue(row, col int, style Style, text string) Handle {
	d.next++
	d.live[d.next] = &issued{DrawCommand: DrawCommand{Row: row, Col: col, Style: style, Text: text}}
	return d.next
}

func (d *fakeDrawer) MarkDirty(h Handle) {
	if entry, ok := d.live[h]; ok {
		entry.dirty++
	}
}

func (d *fakeDrawer) Release(h Handle) {
	if _, ok := d.live[h]; ok {
		delete(d.live, h)
		d.released++
	}
}

func (d *fakeDrawer) highlighted() []DrawCommand {
	var out []DrawCommand
	for _, entry := range d.live {
		if entry.Style == StyleHighlight {
			out = append(out, entry.DrawCommand)
		}
	}
	return out
}

type recorder struct {
	calls [][]string
	err   error
}

func (r *recorder) Execute(tokens []string) error {
	r.calls = append(r.calls, append([]string(nil), tokens...))
	return r.err
}

type reports []error

func (r *reports) Report(err error) { *r = append(*r, err) }

type fixture struct {
	engine *Engine
	drawer *fakeDrawer
	exec   *recorder
	store  mapStore
	errs   *reports
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "popup.log"))
	t.Cleanup(func() { logging.Configure("") })
	f := &fixture{
		drawer: newFakeDrawer(),
		exec:   &recorder{},
		store:  mapStore{},
		errs:   &reports{},
	}
	menu.InstallDefaults(f.store)
	f.engine = New(Options{
		Drawer:   f.drawer,
		Executor: f.exec,
		Reporter: f.errs,
		Source:   menu.NewSource(f.store),
	})
	return f
}

func threeItems() []menu.Item {
	return []menu.Item{
		{Label: "Copy", Command: "yank-selection"},
		{Label: "Delete", Command: "delete-back"},
		{Label: "Quit", Command: "quit"},
	}
}

func screenViewport() *Viewport {
	return &Viewport{Top: 0, Left: 0, Width: 80, Height: 24, Content: lines{"hello"}}
}
