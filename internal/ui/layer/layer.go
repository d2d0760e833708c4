// Package layer renders one nesting level of an open menu: a bordered
// vertical popup or the flat menu-bar row, plus the one-row title overlays
// shown above them.
package layer

import (
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/screen"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Placement selects how a layer is positioned relative to its anchor.
type Placement int

const (
	// PlaceAt opens a free floating popup at the anchor's origin.
	PlaceAt Placement = iota
	// PlaceBelow opens a dropdown under the anchor.
	PlaceBelow
	// PlaceBeside opens a submenu to the right of the anchor row.
	PlaceBeside
	// PlaceBar lays the items out as a single horizontal row.
	PlaceBar
)

const (
	checkWidth  = 4
	arrowWidth  = 2
	shortcutGap = 2
	padding     = 1
	border      = 1
)

// Surface is implemented by the drawable parts of an open menu.
type Surface interface {
	Draw() int
	HitTest(x, y int) int
	Reposition(x, y int)
	Bounds() screen.Rect
	sealed()
}

var (
	_ Surface = (*Layer)(nil)
	_ Surface = (*Title)(nil)
)

// Options configure a new Layer.
type Options struct {
	Level     int
	Menu      *menu.Menu
	Parent    *menu.Item
	Anchor    screen.Rect
	Placement Placement
	MinWidth  int
	Selected  int
	Title     string
	Leading   int
	Styles    *theme.Styles
}

// Layer is one visible nesting level.
type Layer struct {
	level   int
	menu    *menu.Menu
	items   []*menu.Item
	parent  *menu.Item
	bar     bool
	leading int
	styles  *theme.Styles

	scr   *screen.Screen
	sf    *screen.Surface
	rect  screen.Rect
	title *Title

	// offsets holds the first row of each item for vertical layers and the
	// first column of each button for bars, relative to the layer origin.
	offsets []int
	heights []int
	widths  []int

	checkW    int
	labelW    int
	shortcutW int
	arrowW    int

	selected int
	drawn    int
	preview  int
	damaged  []int
	full     bool
}

// New sizes and positions a layer for opts.Menu and shows it on scr.
func New(scr *screen.Screen, opts Options) *Layer {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	l := &Layer{
		level:    opts.Level,
		menu:     opts.Menu,
		parent:   opts.Parent,
		bar:      opts.Placement == PlaceBar,
		leading:  max(opts.Leading, 0),
		styles:   styles,
		scr:      scr,
		selected: menu.None,
		drawn:    menu.None,
		preview:  menu.None,
		full:     true,
	}
	if opts.Menu != nil {
		l.items = opts.Menu.Visible()
	}
	if l.bar {
		l.layoutBar(opts)
	} else {
		l.layoutPopup(opts)
	}
	if opts.Selected >= 0 && opts.Selected < len(l.items) {
		l.selected = opts.Selected
	}
	l.sf = scr.Create(l.rect)
	if opts.Title != "" && !l.bar {
		l.title = NewTitle(scr, screen.Point{X: l.rect.X, Y: l.rect.Y - 1}, l.rect.W, opts.Title, false, styles)
	}
	l.Draw()
	l.sf.Show()
	events.Layer.Create(l.level, l.menuID(), l.rect.X, l.rect.Y, l.rect.W, l.rect.H)
	return l
}

func (l *Layer) layoutBar(opts Options) {
	x := padding
	l.offsets = make([]int, len(l.items))
	l.widths = make([]int, len(l.items))
	l.heights = make([]int, len(l.items))
	for i, it := range l.items {
		w, _ := it.Size()
		if it.Kind == menu.KindSeparator {
			w = 0
		}
		l.offsets[i] = x
		l.widths[i] = w + 2*padding
		l.heights[i] = 1
		x += l.widths[i]
	}
	bounds := l.scr.Bounds()
	w := opts.Anchor.W
	if w <= 0 {
		w = bounds.W - opts.Anchor.X
	}
	l.rect = screen.Rect{X: opts.Anchor.X, Y: opts.Anchor.Y, W: max(w, x+padding, opts.MinWidth), H: 1}
}

func (l *Layer) layoutPopup(opts Options) {
	hasSubmenu := false
	l.offsets = make([]int, len(l.items))
	l.heights = make([]int, len(l.items))
	row := border
	for i, it := range l.items {
		w, h := it.Size()
		l.labelW = max(l.labelW, w)
		if it.Kind == menu.KindToggle || it.Kind == menu.KindRadio {
			l.checkW = checkWidth
		}
		if sc := it.ShortcutLabel(); sc != "" {
			l.shortcutW = max(l.shortcutW, lipgloss.Width(sc))
		}
		if it.IsSubmenu() {
			hasSubmenu = true
		}
		if i > 0 {
			row += l.leading
		}
		l.offsets[i] = row
		l.heights[i] = h
		row += h
	}
	if hasSubmenu {
		l.arrowW = arrowWidth
	}
	height := row + border

	bounds := l.scr.Bounds()
	width := l.contentWidth() + 2*padding + 2*border
	width = max(width, opts.MinWidth, lipgloss.Width(opts.Title)+2*padding)
	if bounds.W > 0 && width > bounds.W {
		width = bounds.W
		l.fitLabels(width)
	}

	x, y := l.place(opts, width, height, bounds)
	l.rect = screen.Rect{X: x, Y: y, W: width, H: height}
}

func (l *Layer) contentWidth() int {
	w := l.checkW + l.labelW + l.arrowW
	if l.shortcutW > 0 {
		w += shortcutGap + l.shortcutW
	}
	return w
}

// fitLabels shrinks the label column so the layer fits in width cells.
func (l *Layer) fitLabels(width int) {
	avail := width - 2*padding - 2*border - (l.contentWidth() - l.labelW)
	if avail < 1 {
		l.shortcutW = 0
		avail = width - 2*padding - 2*border - l.checkW - l.arrowW
	}
	l.labelW = max(avail, 1)
}

func (l *Layer) place(opts Options, w, h int, bounds screen.Rect) (int, int) {
	a := opts.Anchor
	var x, y, flipped int
	switch opts.Placement {
	case PlaceBelow:
		x, y = a.X, a.Bottom()
		flipped = a.Y - h
	case PlaceBeside:
		x, y = a.Right(), a.Y-border
		flipped = a.Y + border - h + 1
	default:
		x, y = a.X, a.Y
		flipped = a.Y - h
	}
	if opts.Title != "" && opts.Placement == PlaceAt {
		y++
	}

	if opts.Selected >= 0 && opts.Selected < len(l.items) {
		y = a.Y - l.offsets[opts.Selected]
		if opts.Placement == PlaceAt {
			x -= w / 2
		}
		if h <= bounds.H {
			y = min(max(y, 0), bounds.H-h)
		}
	} else if y+h > bounds.H {
		switch {
		case flipped >= 0:
			y = flipped
		case h <= bounds.H:
			y = bounds.H - h
		}
	}

	if x+w > bounds.W {
		if opts.Placement == PlaceBeside && a.X-w >= 0 {
			x = a.X - w
		} else {
			x = bounds.W - w
		}
	}
	if opts.Title != "" && y < 1 && h < bounds.H {
		y = 1
	}
	return max(x, 0), y
}

func (l *Layer) menuID() string {
	if l.menu == nil {
		return ""
	}
	return l.menu.ID
}

func (l *Layer) sealed() {}

// Level returns the nesting level rendered by the layer.
func (l *Layer) Level() int { return l.level }

// Menu returns the container shown by the layer.
func (l *Layer) Menu() *menu.Menu { return l.menu }

// Parent returns the item that opened the layer, nil for the root.
func (l *Layer) Parent() *menu.Item { return l.parent }

// IsBar reports whether the layer is a horizontal menu-bar row.
func (l *Layer) IsBar() bool { return l.bar }

// Count returns the number of index-addressable items.
func (l *Layer) Count() int { return len(l.items) }

// Item returns item i, or nil.
func (l *Layer) Item(i int) *menu.Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns the snapshot of items taken when the layer was built.
func (l *Layer) Items() []*menu.Item { return l.items }

// Selected returns the highlighted index.
func (l *Layer) Selected() int { return l.selected }

// Select highlights item i. Out of range values clear the highlight.
func (l *Layer) Select(i int) {
	if i < 0 || i >= len(l.items) {
		i = menu.None
	}
	l.selected = i
}

// Title returns the attached title overlay, if any.
func (l *Layer) Title() *Title { return l.title }

// SetTitle attaches t so it is moved and destroyed with the layer.
func (l *Layer) SetTitle(t *Title) {
	if l.title != nil && l.title != t {
		l.title.Destroy()
	}
	l.title = t
}

// Bounds returns the layer rectangle in screen cells.
func (l *Layer) Bounds() screen.Rect { return l.rect }

// Destroy removes the layer and its title from the screen.
func (l *Layer) Destroy() {
	if l.sf == nil {
		return
	}
	l.scr.Destroy(l.sf)
	l.sf = nil
	if l.title != nil {
		l.title.Destroy()
		l.title = nil
	}
	events.Layer.Destroy(l.level, l.menuID())
}
