package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View renders the composed screen: the background with every visible
// layer and title stacked on top.
func (s *Session) View() string {
	if s.torn {
		return ""
	}
	return s.scr.Render()
}

func (s *Session) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if size.Width <= 0 || size.Height <= 0 || s.torn {
		return nil
	}
	s.opts.Width, s.opts.Height = size.Width, size.Height
	s.scr.Resize(size.Width, size.Height)
	for d := 0; d < s.nummenus; d++ {
		s.layers[d].Invalidate()
	}
	cur := s.path.Current()
	if l := s.Layer(cur.Level); l != nil && cur.Index >= 0 {
		l.Autoscroll(cur.Index)
	}
	if s.fakemenu != nil {
		s.fakemenu.Draw()
	}
	return nil
}
