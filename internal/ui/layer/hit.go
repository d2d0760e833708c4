package layer

import (
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/screen"
)

// HitTest maps the cell (x, y) to an item index. Bars accumulate button
// widths left to right; popups accumulate item heights top to bottom with
// border rows mapping to the nearest item. Returns None outside the layer.
func (l *Layer) HitTest(x, y int) int {
	if !l.rect.Contains(x, y) || len(l.items) == 0 {
		return menu.None
	}
	if l.bar {
		cx := x - l.rect.X
		for i := range l.items {
			if cx < l.offsets[i]+l.widths[i] {
				return i
			}
		}
		return menu.None
	}
	ry := y - l.rect.Y
	for i := range l.items {
		if ry < l.offsets[i]+l.heights[i]+l.leading {
			return i
		}
	}
	return len(l.items) - 1
}

// ItemRect returns the screen rectangle covered by item i.
func (l *Layer) ItemRect(i int) screen.Rect {
	if i < 0 || i >= len(l.items) {
		return screen.Rect{}
	}
	if l.bar {
		return screen.Rect{X: l.TitleX(i), Y: l.rect.Y, W: l.widths[i], H: 1}
	}
	return screen.Rect{X: l.rect.X, Y: l.rect.Y + l.offsets[i], W: l.rect.W, H: l.heights[i]}
}

// TitleX returns the screen column of bar button i, the left edge of the
// dropdown it opens.
func (l *Layer) TitleX(i int) int {
	if !l.bar || i < 0 || i >= len(l.items) {
		return l.rect.X
	}
	return l.rect.X + l.offsets[i]
}

// Reposition moves the layer and its attached title.
func (l *Layer) Reposition(x, y int) {
	dx, dy := x-l.rect.X, y-l.rect.Y
	l.rect.X, l.rect.Y = x, y
	if l.sf != nil {
		l.sf.Move(x, y)
	}
	if l.title != nil {
		b := l.title.Bounds()
		l.title.Reposition(b.X+dx, b.Y+dy)
	}
}

// Autoscroll moves the whole layer by the minimal amount that brings row i
// fully on screen. It reports whether the layer moved.
func (l *Layer) Autoscroll(i int) bool {
	if l.bar || i < 0 || i >= len(l.items) {
		return false
	}
	bounds := l.scr.Bounds()
	top := l.rect.Y + l.offsets[i]
	bottom := top + l.heights[i]
	var dy int
	switch {
	case top < 0:
		dy = -top
	case bottom > bounds.H:
		dy = bounds.H - bottom
	default:
		return false
	}
	l.Reposition(l.rect.X, l.rect.Y+dy)
	events.Layer.Scroll(l.level, i, dy)
	return true
}
