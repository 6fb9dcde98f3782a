package dispatcher

import (
	"github.com/atomicstack/mouse-menu/internal/backend"
	"github.com/atomicstack/mouse-menu/internal/config"
	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/atomicstack/mouse-menu/internal/state"
)

type Result struct {
	TablesUpdated bool
	Changed       []string
	Err           error
}

type Dispatcher struct {
	vars state.VarStore
	path string
}

func New(vars state.VarStore, path string) *Dispatcher {
	return &Dispatcher{vars: vars, path: path}
}

// Handle applies a backend event to the variable store. Errors leave the
// previous tables in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindTables:
		if tables, ok := evt.Data.(config.Tables); ok {
			res.Changed = tables.Changed(d.vars)
			tables.Apply(d.vars)
			res.TablesUpdated = len(res.Changed) > 0
			if res.TablesUpdated {
				events.Config.Reload(d.path, res.Changed)
			}
		}
	}
	return res
}
