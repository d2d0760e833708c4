package events

import "github.com/atomicstack/termmenu/internal/logging"

type SessionTracer struct{}

// AbortReason names why a session ended without a commit.
type AbortReason string

const (
	AbortEscape   AbortReason = "escape"
	AbortOutside  AbortReason = "outside"
	AbortModifier AbortReason = "modifier"
	AbortEmpty    AbortReason = "empty"
	AbortContext  AbortReason = "context"
)

var Session = SessionTracer{}

func (SessionTracer) Open(menuID string, menubar bool, x, y int) {
	logging.Trace("session.open", map[string]any{"menu": menuID, "menubar": menubar, "x": x, "y": y})
}

func (SessionTracer) State(from, to string) {
	logging.Trace("session.state", map[string]any{"from": from, "to": to})
}

func (SessionTracer) Select(level, index int, itemID string) {
	logging.Trace("session.select", map[string]any{"level": level, "index": index, "item": itemID})
}

func (SessionTracer) Commit(itemID, label string, stayOpen bool) {
	logging.Trace("session.commit", map[string]any{"item": itemID, "label": label, "stay_open": stayOpen})
}

func (SessionTracer) Abort(reason AbortReason) {
	logging.Trace("session.abort", map[string]any{"reason": string(reason)})
}
