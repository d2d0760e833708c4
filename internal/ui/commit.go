package ui

import (
	"strings"

	"github.com/atomicstack/termmenu/internal/logging"
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// commit chooses the current item. Stays-open items run in place and leave
// the session going. Inactive items and bare submenu titles are ignored.
func (s *Session) commit() tea.Cmd {
	cur := s.path.Current()
	it := s.currentItem()
	if it == nil {
		s.abort(events.AbortEmpty)
		return nil
	}
	if !it.Active() || (it.IsSubmenu() && !it.HasAction()) {
		return nil
	}
	if it.StaysOpen && !(s.menubar && cur.Level == 0) {
		l := s.layers[cur.Level]
		l.Menu().Pick(it)
		l.Invalidate()
		l.Draw()
		ids, _ := s.selectedPath()
		events.Session.Commit(it.ID, it.DisplayLabel(), true)
		return s.bus.Execute(s.ctx, command.Request{
			ID:    strings.Join(ids, ":"),
			Label: it.DisplayLabel(),
			Item:  it,
		})
	}
	s.setState(StateDone)
	return nil
}

func (s *Session) abort(reason events.AbortReason) {
	if s.terminal() {
		return
	}
	events.Session.Abort(reason)
	s.setState(StateAborted)
}

// finish records the outcome once the session reached a terminal state and
// returns the command that ends it.
func (s *Session) finish() tea.Cmd {
	switch s.state {
	case StateDone:
		if s.result.Committed {
			return nil
		}
		cur := s.path.Current()
		ids, items := s.selectedPath()
		for d := 0; d < len(items) && d < s.nummenus; d++ {
			s.layers[d].Menu().LastChosen = s.path.Index(d)
		}
		it := s.currentItem()
		s.layers[cur.Level].Menu().Pick(it)
		s.result = Result{Committed: true, Item: it, Path: ids}
		events.Session.Commit(it.ID, it.DisplayLabel(), false)
		return s.bus.Execute(s.ctx, command.Request{
			ID:    s.result.ID(),
			Label: it.DisplayLabel(),
			Item:  it,
		})
	case StateAborted:
		if s.torn {
			return nil
		}
		s.teardown()
		return tea.Quit
	}
	return nil
}

func (s *Session) handleResultMsg(msg tea.Msg) tea.Cmd {
	res := msg.(command.ResultMsg)
	if s.state == StateDone {
		if s.torn {
			return nil
		}
		s.actionErr = res.Err
		s.teardown()
		return tea.Quit
	}
	if res.Err != nil {
		logging.Error(res.Err)
	}
	return nil
}

// teardown cancels pending timers, destroys every layer and releases the
// screen grab. It runs at most once.
func (s *Session) teardown() {
	if s.torn {
		return
	}
	s.torn = true
	s.cancelScroll()
	s.typeGen++
	s.dropFakemenu()
	s.truncate(0)
	if s.grabbed {
		s.grabbed = false
		if err := s.scr.Release(); err != nil {
			logging.Error(err)
		}
	}
}

// Close tears the session down. It is safe to call more than once and after
// the session finished on its own.
func (s *Session) Close() {
	if !s.terminal() {
		s.abort(events.AbortContext)
	}
	s.teardown()
}
