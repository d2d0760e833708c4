package events

import "github.com/atomicstack/termmenu/internal/logging"

type CommandTracer struct{}

type ScreenTracer struct{}

var (
	Command = CommandTracer{}
	Screen  = ScreenTracer{}
)

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]any{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]any{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]any{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (ScreenTracer) Grab(surfaces int) {
	logging.Trace("screen.grab", map[string]any{"surfaces": surfaces})
}

func (ScreenTracer) Release(surfaces int) {
	logging.Trace("screen.release", map[string]any{"surfaces": surfaces})
}
