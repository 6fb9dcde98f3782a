package events

import "github.com/atomicstack/mouse-menu/internal/logging"

type ConfigTracer struct{}

var Config = ConfigTracer{}

func (ConfigTracer) Load(path string, tables int) {
	logging.Trace("config.load", map[string]interface{}{"path": path, "tables": tables})
}

func (ConfigTracer) Reload(path string, changed []string) {
	logging.Trace("config.reload", map[string]interface{}{"path": path, "changed": changed})
}

func (ConfigTracer) WatchError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("config.watch-error", map[string]interface{}{"path": path, "error": err.Error()})
}
