package events

import "github.com/atomicstack/termmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]any) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(committed bool, value string) {
	logging.Trace("app.exit", map[string]any{"committed": committed, "value": value})
}
