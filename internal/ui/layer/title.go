package layer

import (
	"strings"

	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/screen"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Title is a one-row overlay: either a popup caption or the pressed look of
// a menu-bar button whose dropdown is open.
type Title struct {
	scr     *screen.Screen
	sf      *screen.Surface
	rect    screen.Rect
	label   string
	pressed bool
	styles  *theme.Styles
}

// NewTitle shows label at p. A width of zero sizes the title to the label.
func NewTitle(scr *screen.Screen, p screen.Point, width int, label string, pressed bool, styles *theme.Styles) *Title {
	if styles == nil {
		styles = theme.Default()
	}
	if width <= 0 {
		width = lipgloss.Width(label) + 2*padding
	}
	t := &Title{
		scr:     scr,
		rect:    screen.Rect{X: p.X, Y: p.Y, W: width, H: 1},
		label:   label,
		pressed: pressed,
		styles:  styles,
	}
	t.sf = scr.Create(t.rect)
	t.Draw()
	t.sf.Show()
	return t
}

// PressedTitle mirrors bar button i of bar in the pressed style.
func PressedTitle(scr *screen.Screen, bar *Layer, i int, styles *theme.Styles) *Title {
	it := bar.Item(i)
	if it == nil {
		return nil
	}
	r := bar.ItemRect(i)
	return NewTitle(scr, screen.Point{X: r.X, Y: r.Y}, r.W, it.Lines()[0], true, styles)
}

func (t *Title) sealed() {}

// Label returns the text shown by the title.
func (t *Title) Label() string { return t.label }

// Pressed reports whether the title mirrors a pressed bar button.
func (t *Title) Pressed() bool { return t.pressed }

// Draw renders the title row. It always renders exactly one row.
func (t *Title) Draw() int {
	if t.sf == nil {
		return 0
	}
	st := t.styles.Caption
	if t.pressed {
		st = t.styles.Pressed
	}
	inner := max(t.rect.W-2*padding, 0)
	label := t.label
	if lipgloss.Width(label) > inner {
		label = truncate.StringWithTail(label, uint(inner), "…")
	}
	fill := strings.Repeat(" ", max(inner-lipgloss.Width(label), 0))
	pad := strings.Repeat(" ", padding)
	t.sf.SetLine(0, st.Render(pad+label+fill+pad))
	return 1
}

// HitTest returns 0 when (x, y) lies on the title and None otherwise.
func (t *Title) HitTest(x, y int) int {
	if t.rect.Contains(x, y) {
		return 0
	}
	return menu.None
}

// Reposition moves the title.
func (t *Title) Reposition(x, y int) {
	t.rect.X, t.rect.Y = x, y
	if t.sf != nil {
		t.sf.Move(x, y)
	}
}

// Bounds returns the title rectangle.
func (t *Title) Bounds() screen.Rect { return t.rect }

// Destroy removes the title from the screen.
func (t *Title) Destroy() {
	if t == nil || t.sf == nil {
		return
	}
	t.scr.Destroy(t.sf)
	t.sf = nil
}
