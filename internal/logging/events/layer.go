package events

import "github.com/atomicstack/termmenu/internal/logging"

type LayerTracer struct{}

var Layer = LayerTracer{}

func (LayerTracer) Create(level int, menuID string, x, y, w, h int) {
	logging.Trace("layer.create", map[string]any{"level": level, "menu": menuID, "x": x, "y": y, "w": w, "h": h})
}

func (LayerTracer) Destroy(level int, menuID string) {
	logging.Trace("layer.destroy", map[string]any{"level": level, "menu": menuID})
}

func (LayerTracer) Scroll(level, item, dy int) {
	logging.Trace("layer.scroll", map[string]any{"level": level, "item": item, "dy": dy})
}
