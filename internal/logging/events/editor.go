package events

import "github.com/atomicstack/mouse-menu/internal/logging"

type EditorTracer struct{}

var Editor = EditorTracer{}

func (EditorTracer) Command(name string, args []string) {
	logging.Trace("editor.command", map[string]interface{}{"name": name, "args": args})
}

func (EditorTracer) Frame(action string, frames, active int) {
	logging.Trace("editor.frame", map[string]interface{}{"action": action, "frames": frames, "active": active})
}

func (EditorTracer) Click(button string, row, col int) {
	logging.Trace("editor.click", map[string]interface{}{"button": button, "row": row, "col": col})
}
