package ui

import (
	"time"

	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the navigation keys understood by a session.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Right  key.Binding
	Left   key.Binding
	Commit key.Binding
	Cancel key.Binding
	Rubout key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous item"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next item"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next item, wrapping"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous item, wrapping"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "enter submenu"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "leave submenu"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close menu"),
		),
		Rubout: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase search or previous item"),
		),
	}
}

// ModifierMsg reports a bare modifier key going down or up. Terminals do not
// report these on their own, so hosts that can observe them deliver the
// message themselves. Pressing and releasing the same modifier within the
// click timeout closes a menubar session.
type ModifierMsg struct {
	Key      string
	Released bool
}

type modifierState struct {
	key   string
	at    time.Time
	armed bool
}

type typeAheadExpiredMsg struct {
	gen int
}

func (s *Session) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if s.terminal() {
		return nil
	}
	s.modifier.armed = false
	s.trigger = triggerKey
	keys := s.keys
	level := s.path.Level
	if level >= s.nummenus {
		level = s.nummenus - 1
	}

	switch {
	case key.Matches(keyMsg, keys.Cancel):
		s.abort(events.AbortEscape)
		return nil
	case key.Matches(keyMsg, keys.Commit):
		return s.commit()
	case key.Matches(keyMsg, keys.Up):
		s.typeahead.Reset()
		if s.menubar && level <= 0 {
			return nil
		}
		if !s.path.Advance(s, level, -1, false) && s.menubar && level == 1 {
			s.path.Set(0, s.path.Index(0))
		}
		return nil
	case key.Matches(keyMsg, keys.Down):
		s.typeahead.Reset()
		s.down(level, false)
		return nil
	case key.Matches(keyMsg, keys.Next):
		s.typeahead.Reset()
		s.down(level, true)
		return nil
	case key.Matches(keyMsg, keys.Prev):
		s.typeahead.Reset()
		s.up(level)
		return nil
	case key.Matches(keyMsg, keys.Rubout):
		if s.typeahead.DeleteBackward() {
			return s.matchTypeAhead()
		}
		s.up(level)
		return nil
	case key.Matches(keyMsg, keys.Right):
		s.typeahead.Reset()
		if s.menubar && (level <= 0 || (level == 1 && s.nummenus == 2)) {
			s.path.Advance(s, 0, 1, true)
		} else if level < s.nummenus-1 {
			s.enter(level + 1)
		}
		return nil
	case key.Matches(keyMsg, keys.Left):
		s.typeahead.Reset()
		if s.menubar && level <= 1 {
			s.path.Advance(s, 0, -1, true)
		} else if level > 0 {
			s.path.Set(level-1, s.path.Index(level-1))
		}
		return nil
	}

	if cmd, ok := s.shortcut(keyMsg.String()); ok {
		return cmd
	}
	if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt {
		s.typeahead.Insert(string(keyMsg.Runes))
		return s.matchTypeAhead()
	}
	return nil
}

// down moves to the next item at level. At the top of a menubar it drops
// into the open dropdown instead.
func (s *Session) down(level int, wrap bool) {
	if level > 0 || !s.menubar {
		s.path.Advance(s, level, 1, wrap)
		return
	}
	if s.nummenus > 1 {
		s.enter(1)
	}
}

// enter selects the first selectable item of the open menu at level.
func (s *Session) enter(level int) {
	if i := state.First(s, level); i != state.None {
		s.path.Set(level, i)
	}
}

func (s *Session) up(level int) {
	if s.menubar && level <= 0 {
		return
	}
	s.path.Advance(s, level, -1, true)
}

// shortcut looks for an item bound to k, deepest layer first. A submenu title
// is opened; anything else goes through the commit step.
func (s *Session) shortcut(k string) (tea.Cmd, bool) {
	for d := s.nummenus - 1; d >= 0; d-- {
		l := s.layers[d]
		i, it := l.Menu().FindShortcut(k, l.IsBar())
		if it == nil || l.Item(i) != it {
			continue
		}
		s.typeahead.Reset()
		s.path.Set(d, i)
		if it.IsSubmenu() {
			return nil, true
		}
		return s.commit(), true
	}
	return nil, false
}

// matchTypeAhead selects the best match for the typed text in the deepest
// layer and restarts the timer that clears the buffer.
func (s *Session) matchTypeAhead() tea.Cmd {
	d := s.nummenus - 1
	l := s.layers[d]
	query := s.typeahead.Query()
	if query != "" {
		labels := make([]string, l.Count())
		for i, it := range l.Items() {
			if it.Active() {
				labels[i] = it.DisplayLabel()
			}
		}
		if i := state.BestMatch(labels, query); i >= 0 {
			s.path.Set(d, i)
		}
	}
	s.typeGen++
	gen := s.typeGen
	return s.tick(s.opts.TypeAheadTimeout, func(time.Time) tea.Msg {
		return typeAheadExpiredMsg{gen: gen}
	})
}

func (s *Session) handleTypeAheadExpiredMsg(msg tea.Msg) tea.Cmd {
	if msg.(typeAheadExpiredMsg).gen == s.typeGen {
		s.typeahead.Reset()
	}
	return nil
}

func (s *Session) handleModifierMsg(msg tea.Msg) tea.Cmd {
	mod := msg.(ModifierMsg)
	if s.terminal() {
		return nil
	}
	if !mod.Released {
		s.modifier = modifierState{key: mod.Key, at: s.now(), armed: true}
		return nil
	}
	armed := s.modifier.armed && s.modifier.key == mod.Key
	s.modifier.armed = false
	if armed && s.menubar && s.now().Sub(s.modifier.at) <= s.opts.ClickTimeout {
		s.abort(events.AbortModifier)
	}
	return nil
}
