package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pendingTimer is what a timer command yields under the harness. The harness
// parks it instead of delivering it so tests decide when time passes.
type pendingTimer struct {
	after time.Duration
	msg   tea.Msg
}

// Harness drives a session programmatically for tests. Commands run
// synchronously and timers only fire through FireTimer.
type Harness struct {
	session *Session
	timers  []pendingTimer
	quit    bool
	clock   time.Time
}

// NewHarness wraps session. It replaces the session's timer and clock so
// timing-dependent behaviour is deterministic.
func NewHarness(session *Session) *Harness {
	h := &Harness{session: session, clock: time.Unix(0, 0)}
	if session != nil {
		session.tick = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
			return func() tea.Msg {
				return pendingTimer{after: d, msg: fn(h.clock.Add(d))}
			}
		}
		session.now = func() time.Time { return h.clock }
	}
	return h
}

// Send routes a message through the session and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.session == nil {
		return
	}
	_, cmd := h.session.Update(msg)
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		h.quit = true
	case pendingTimer:
		h.timers = append(h.timers, msg)
	default:
		h.Send(msg)
	}
}

// Advance moves the harness clock forward.
func (h *Harness) Advance(d time.Duration) {
	h.clock = h.clock.Add(d)
}

// FireTimer delivers the oldest pending timer. It reports whether one was
// pending.
func (h *Harness) FireTimer() bool {
	if len(h.timers) == 0 {
		return false
	}
	next := h.timers[0]
	h.timers = h.timers[1:]
	h.clock = h.clock.Add(next.after)
	h.Send(next.msg)
	return true
}

// Timers reports how many timers are pending.
func (h *Harness) Timers() int {
	return len(h.timers)
}

// Quit reports whether the session asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.session == nil {
		return ""
	}
	return h.session.View()
}

// Session exposes the underlying session.
func (h *Harness) Session() *Session {
	return h.session
}
