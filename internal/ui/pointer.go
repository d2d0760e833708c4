package ui

import (
	"time"

	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

type pointerState struct {
	x, y     int
	pressX   int
	pressY   int
	pressed  time.Time
	down     bool
	dragged  bool
	seen     bool
	external bool
}

func (s *Session) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if s.terminal() {
		return nil
	}
	s.modifier.armed = false
	switch mouse.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if mouse.Action != tea.MouseActionPress {
			return nil
		}
		dir := 1
		if mouse.Button == tea.MouseButtonWheelUp {
			dir = -1
		}
		s.trigger = triggerKey
		level := min(s.path.Level, s.nummenus-1)
		s.path.Advance(s, level, dir, false)
		return nil
	}

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		s.trigger = triggerPress
		return s.pointerPressed(mouse.X, mouse.Y)
	case tea.MouseActionMotion:
		s.trigger = triggerMove
		s.pointerMoved(mouse.X, mouse.Y, mouse.Button == tea.MouseButtonLeft)
	case tea.MouseActionRelease:
		s.trigger = triggerRelease
		return s.pointerReleased(mouse.X, mouse.Y)
	}
	return nil
}

// hit finds the deepest layer under (x, y). It returns the level and item
// index, or None for both when the pointer is outside every layer.
func (s *Session) hit(x, y int) (int, int) {
	for d := s.nummenus - 1; d >= 0; d-- {
		l := s.layers[d]
		if !l.Bounds().Contains(x, y) {
			continue
		}
		return d, l.HitTest(x, y)
	}
	return menu.None, menu.None
}

func (s *Session) pointerPressed(x, y int) tea.Cmd {
	p := &s.pointer
	p.x, p.y = x, y
	p.pressX, p.pressY = x, y
	p.pressed = s.now()
	p.down = true
	p.dragged = false
	p.seen = true
	p.external = false

	level, idx := s.hit(x, y)
	if level < 0 {
		s.abort(events.AbortOutside)
		return nil
	}
	// The title is already open when its submenu is live one level down,
	// whether or not the pointer has moved into it.
	already := idx >= 0 && s.path.Index(level) == idx && level < s.nummenus-1
	s.path.Set(level, idx)
	it := s.layers[level].Item(idx)
	if it != nil && it.Active() && it.IsSubmenu() && !already {
		s.setState(StateInitial)
	} else {
		s.setState(StatePushed)
	}
	if it.Active() {
		s.layers[level].SetPreview(idx)
	}
	return nil
}

// pointerMoved follows the pointer. A drag whose press happened before the
// session opened, on whatever opened the menu, counts as pushed once it
// reaches a layer so the release commits.
func (s *Session) pointerMoved(x, y int, held bool) {
	p := &s.pointer
	if held && !p.down {
		p.down, p.seen, p.dragged = true, true, true
		p.pressX, p.pressY = x, y
		p.pressed = s.now()
		p.external = true
	}
	if p.down && (x != p.pressX || y != p.pressY) {
		p.dragged = true
	}
	p.x, p.y = x, y

	level, idx := s.hit(x, y)
	if level >= 0 && p.external && s.state == StateInitial {
		s.setState(StatePushed)
	}
	if level < 0 {
		if s.menubar && s.nummenus == 1 {
			if it := s.currentItem(); it == nil || !it.IsSubmenu() {
				s.path.Set(0, menu.None)
			}
			return
		}
		s.path.Set(s.nummenus-1, menu.None)
		return
	}

	l := s.layers[level]
	if !l.IsBar() && idx >= 0 {
		switch {
		case y <= 0 && idx > 0:
			idx--
		case y >= s.scr.Bounds().H-1 && idx < l.Count()-1:
			idx++
		}
	}
	s.path.Set(level, idx)
	if p.down {
		s.updatePreview(level, idx)
	}
}

func (s *Session) pointerReleased(x, y int) tea.Cmd {
	p := &s.pointer
	click := !p.seen ||
		(!p.dragged && x == p.pressX && y == p.pressY && s.now().Sub(p.pressed) <= s.opts.ClickTimeout)
	p.x, p.y = x, y
	p.down = false
	p.dragged = false
	p.external = false
	s.clearPreviews()

	level, idx := s.hit(x, y)
	if level >= 0 {
		s.path.Set(level, idx)
	}
	it := s.currentItem()
	if !click || s.state == StatePushed || (s.menubar && it != nil && !it.IsSubmenu()) {
		return s.commit()
	}
	return nil
}

// updatePreview shows the would-be check mark of the pressed toggle or radio
// item and clears it everywhere else.
func (s *Session) updatePreview(level, idx int) {
	for d := 0; d < s.nummenus; d++ {
		if d == level {
			s.layers[d].SetPreview(idx)
			continue
		}
		s.layers[d].SetPreview(menu.None)
	}
}

func (s *Session) clearPreviews() {
	for d := 0; d < s.nummenus; d++ {
		s.layers[d].SetPreview(menu.None)
	}
}
