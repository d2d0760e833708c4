package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind distinguishes the behaviour of a menu entry.
type Kind int

const (
	KindNormal Kind = iota
	KindToggle
	KindRadio
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindToggle:
		return "toggle"
	case KindRadio:
		return "radio"
	case KindSeparator:
		return "separator"
	default:
		return "normal"
	}
}

// None marks the absence of a chosen entry.
const None = -1

// ErrEmptyMenu is returned when a menu has no visible entries to show.
var ErrEmptyMenu = errors.New("menu has no visible items")

// Action runs the behaviour bound to an item.
type Action func(ctx context.Context, item *Item) error

// Item represents one entry of a menu container.
type Item struct {
	ID        string
	Label     string
	Shortcut  string
	Kind      Kind
	Checked   bool
	Disabled  bool
	Hidden    bool
	StaysOpen bool
	Submenu   *Menu
	Action    Action
	Value     string
}

// Menu is an ordered container of items making up one nesting level.
type Menu struct {
	ID         string
	Title      string
	Items      []*Item
	LastChosen int
}

// New builds a menu with no remembered choice.
func New(id, title string, items ...*Item) *Menu {
	return &Menu{ID: id, Title: title, Items: items, LastChosen: None}
}

// Visible returns the index-addressable entries shown for this menu.
func (m *Menu) Visible() []*Item {
	if m == nil {
		return nil
	}
	out := make([]*Item, 0, len(m.Items))
	for _, it := range m.Items {
		if it == nil || it.Hidden {
			continue
		}
		out = append(out, it)
	}
	return out
}

// At returns the visible entry at index, or nil when out of range.
func (m *Menu) At(index int) *Item {
	visible := m.Visible()
	if index < 0 || index >= len(visible) {
		return nil
	}
	return visible[index]
}

// Chosen returns the remembered entry index if it still points at an active item.
func (m *Menu) Chosen() int {
	if m == nil {
		return None
	}
	it := m.At(m.LastChosen)
	if it == nil || !it.Active() {
		return None
	}
	return m.LastChosen
}

// HasChecks reports whether any visible entry draws a check column.
func (m *Menu) HasChecks() bool {
	for _, it := range m.Visible() {
		if it.Kind == KindToggle || it.Kind == KindRadio {
			return true
		}
	}
	return false
}

// Pick applies toggle and radio semantics for a committed item.
func (m *Menu) Pick(item *Item) {
	if item == nil {
		return
	}
	switch item.Kind {
	case KindToggle:
		item.Checked = !item.Checked
	case KindRadio:
		if m != nil {
			m.setOnly(item)
		} else {
			item.Checked = true
		}
	}
}

// setOnly turns on item and clears every other member of its radio group.
// A group is a run of adjacent radio items.
func (m *Menu) setOnly(item *Item) {
	pos := -1
	for i, it := range m.Items {
		if it == item {
			pos = i
			break
		}
	}
	if pos < 0 {
		item.Checked = true
		return
	}
	for i := pos - 1; i >= 0 && m.Items[i].Kind == KindRadio; i-- {
		m.Items[i].Checked = false
	}
	for i := pos + 1; i < len(m.Items) && m.Items[i].Kind == KindRadio; i++ {
		m.Items[i].Checked = false
	}
	item.Checked = true
}

// FindShortcut locates the first visible entry answering to key.
func (m *Menu) FindShortcut(key string, bar bool) (int, *Item) {
	for i, it := range m.Visible() {
		if it.MatchesKey(key, bar) {
			return i, it
		}
	}
	return None, nil
}

// Active reports whether the item accepts events.
func (it *Item) Active() bool {
	return it != nil && !it.Disabled && !it.Hidden && it.Kind != KindSeparator
}

// IsSubmenu reports whether the item opens a nested menu.
func (it *Item) IsSubmenu() bool {
	return it != nil && it.Submenu != nil
}

// HasAction reports whether the item has a bound action.
func (it *Item) HasAction() bool {
	return it != nil && it.Action != nil
}

// Execute runs the item's action.
func (it *Item) Execute(ctx context.Context) error {
	if it == nil || it.Action == nil {
		return nil
	}
	return it.Action(ctx, it)
}

// Lines returns the display label split into rows.
func (it *Item) Lines() []string {
	if it.Kind == KindSeparator {
		return []string{""}
	}
	return strings.Split(it.DisplayLabel(), "\n")
}

// Size returns the natural width and height of the label in cells.
func (it *Item) Size() (int, int) {
	lines := it.Lines()
	w := 0
	for _, line := range lines {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w, len(lines)
}
