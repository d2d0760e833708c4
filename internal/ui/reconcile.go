package ui

import (
	"time"

	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/ui/layer"
	"github.com/atomicstack/termmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type scrollTickMsg struct {
	gen int
}

// push appends l as the deepest live layer.
func (s *Session) push(l *layer.Layer) {
	if s.nummenus >= state.MaxLevels {
		l.Destroy()
		return
	}
	s.layers[s.nummenus] = l
	s.nummenus++
}

// truncate destroys every layer at level n or deeper.
func (s *Session) truncate(n int) {
	if n < 0 {
		n = 0
	}
	for s.nummenus > n {
		s.nummenus--
		s.layers[s.nummenus].Destroy()
		s.layers[s.nummenus] = nil
	}
}

// reconcile brings the live layers in line with the selection path. It does
// nothing unless the current (level, index) changed since the last pass.
func (s *Session) reconcile() tea.Cmd {
	s.syncSelection()
	cur := s.path.Current()
	if cur == s.last {
		s.draw()
		return nil
	}
	s.last = cur

	var cmd tea.Cmd
	s.cancelScroll()
	if l := s.Layer(cur.Level); l != nil && cur.Index >= 0 {
		if l.Autoscroll(cur.Index) && s.trigger == triggerMove {
			cmd = s.armScroll()
		}
	}
	s.dropFakemenu()

	it := s.currentItem()
	if it != nil {
		events.Session.Select(cur.Level, cur.Index, it.ID)
	}
	switch {
	case it == nil || !it.Active():
		s.truncate(cur.Level + 1)
	case it.IsSubmenu():
		s.openSubmenus(cur, it)
	default:
		s.truncate(cur.Level + 1)
		if s.menubar && cur.Level == 0 {
			s.fakemenu = layer.PressedTitle(s.scr, s.layers[0], cur.Index, s.styles)
		}
	}
	s.restoring = false
	s.syncSelection()
	s.last = s.path.Current()
	s.draw()
	return cmd
}

// openSubmenus makes sure the submenu of it is shown one level below cur.
// While restoring a previous pick it keeps descending through the last
// chosen entries.
func (s *Session) openSubmenus(cur state.Cursor, it *menu.Item) {
	for {
		next := cur.Level + 1
		if next >= state.MaxLevels {
			s.truncate(next)
			return
		}
		s.truncate(next + 1)
		if l := s.Layer(next); l != nil && l.Menu() == it.Submenu && l.Parent() == it {
			return
		}
		s.truncate(next)

		parent := s.layers[cur.Level]
		opts := layer.Options{
			Level:     next,
			Menu:      it.Submenu,
			Parent:    it,
			Anchor:    parent.ItemRect(cur.Index),
			Placement: layer.PlaceBeside,
			MinWidth:  s.opts.MinWidth,
			Selected:  menu.None,
			Leading:   s.opts.Leading,
			Styles:    s.styles,
		}
		if parent.IsBar() {
			opts.Placement = layer.PlaceBelow
		}
		pick := menu.None
		if s.restoring && !parent.IsBar() {
			pick = it.Submenu.Chosen()
			opts.Selected = pick
		}
		l := layer.New(s.scr, opts)
		if parent.IsBar() {
			l.SetTitle(layer.PressedTitle(s.scr, parent, cur.Index, s.styles))
		}
		s.push(l)
		if pick < 0 {
			return
		}

		s.alignChain(l, opts.Anchor.Y, pick)
		s.path.Set(next, pick)
		cur = s.path.Current()
		it = l.Item(pick)
		if !it.Active() || !it.IsSubmenu() {
			return
		}
	}
}

// alignChain shifts the shallower layers so the parent row stays level with
// the restored row of the newly opened layer l.
func (s *Session) alignChain(l *layer.Layer, parentRow, pick int) {
	dy := l.ItemRect(pick).Y - parentRow
	if dy == 0 {
		return
	}
	for d := 0; d < s.nummenus-1; d++ {
		b := s.layers[d].Bounds()
		if b.Y+dy < 0 {
			dy = -b.Y
		}
	}
	for d := 0; d < s.nummenus-1; d++ {
		b := s.layers[d].Bounds()
		s.layers[d].Reposition(b.X, b.Y+dy)
	}
}

// syncSelection copies damaged path levels into the matching layers.
func (s *Session) syncSelection() {
	for _, d := range s.path.TakeDirty() {
		if l := s.Layer(d); l != nil {
			l.Select(s.path.Index(d))
		}
	}
	for d := 0; d < s.nummenus; d++ {
		if want := s.path.Index(d); s.layers[d].Selected() != want {
			s.layers[d].Select(want)
		}
	}
}

func (s *Session) draw() {
	for d := 0; d < s.nummenus; d++ {
		s.layers[d].Draw()
	}
}

func (s *Session) dropFakemenu() {
	if s.fakemenu != nil {
		s.fakemenu.Destroy()
		s.fakemenu = nil
	}
}

// armScroll schedules a synthetic pointer move so autoscroll keeps going
// while the pointer rests on the screen edge.
func (s *Session) armScroll() tea.Cmd {
	s.scrollGen++
	gen := s.scrollGen
	return s.tick(s.opts.ScrollInterval, func(time.Time) tea.Msg {
		return scrollTickMsg{gen: gen}
	})
}

func (s *Session) cancelScroll() {
	s.scrollGen++
}

func (s *Session) handleScrollTickMsg(msg tea.Msg) tea.Cmd {
	tick := msg.(scrollTickMsg)
	if tick.gen != s.scrollGen || s.terminal() {
		return nil
	}
	s.trigger = triggerMove
	s.pointerMoved(s.pointer.x, s.pointer.y, s.pointer.down)
	return nil
}
