package events

import (
	"time"

	"github.com/atomicstack/mouse-menu/internal/logging"
)

type PopupTracer struct{}

type MenuTracer struct{}

type CommandTracer struct{}

type PopupReason string

const (
	ReasonEscape  PopupReason = "escape"
	ReasonConfirm PopupReason = "confirm"
	ReasonOutside PopupReason = "click-outside"
	ReasonReplace PopupReason = "replaced"
	ReasonHost    PopupReason = "host"
)

var (
	Popup   = PopupTracer{}
	Menu    = MenuTracer{}
	Command = CommandTracer{}
)

func (PopupTracer) Open(id, kind string, items, top, left, width int) {
	logging.Trace("popup.open", map[string]interface{}{
		"id":    id,
		"kind":  kind,
		"items": items,
		"top":   top,
		"left":  left,
		"width": width,
	})
}

func (PopupTracer) Close(id string, reason PopupReason) {
	logging.Trace("popup.close", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (PopupTracer) Cursor(id string, selection int) {
	logging.Trace("popup.cursor", map[string]interface{}{"id": id, "selection": selection})
}

func (PopupTracer) Empty(kind string) {
	logging.Trace("popup.empty", map[string]interface{}{"kind": kind})
}

func (PopupTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("popup.error", map[string]interface{}{"id": id, "error": err.Error()})
}

func (MenuTracer) Resolve(kind string, items int) {
	logging.Trace("menu.resolve", map[string]interface{}{"kind": kind, "items": items})
}

func (MenuTracer) ConfigError(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.config-error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (CommandTracer) Queue(tokens []string) {
	logging.Trace("command.queue", map[string]interface{}{"tokens": tokens})
}

func (CommandTracer) Result(tokens []string, err error) {
	payload := map[string]interface{}{"tokens": tokens}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (CommandTracer) Complete(id string, name string, elapsed time.Duration, err error) {
	payload := map[string]interface{}{"id": id, "name": name, "elapsed_ms": elapsed.Milliseconds()}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.complete", payload)
}
