// Package screen models the terminal as a stack of rectangular surfaces
// composited over a blank cell grid, plus the exclusive input grab held by a
// menu session.
package screen

import (
	"errors"

	"github.com/atomicstack/termmenu/internal/logging/events"
)

var (
	// ErrGrabbed is returned by Grab while another session holds the input.
	ErrGrabbed = errors.New("screen: input already grabbed")
	// ErrNotGrabbed is returned by Release when nothing holds the input.
	ErrNotGrabbed = errors.New("screen: input not grabbed")
)

// Screen owns the surfaces shown on the terminal, bottom to top.
type Screen struct {
	width      int
	height     int
	background []string
	surfaces   []*Surface
	nextID     int
	grabbed    bool
	grabs      int
	releases   int
}

// New returns an empty screen of the given size.
func New(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Resize changes the screen size. Surfaces keep their positions.
func (s *Screen) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
}

// Bounds returns the screen rectangle anchored at the origin.
func (s *Screen) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// SetBackground sets the content drawn beneath every surface.
func (s *Screen) SetBackground(lines []string) {
	s.background = append(s.background[:0], lines...)
}

// Create adds a hidden surface above every existing one.
func (s *Screen) Create(r Rect) *Surface {
	s.nextID++
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	sf := &Surface{id: s.nextID, screen: s, rect: r, lines: make([]string, r.H)}
	s.surfaces = append(s.surfaces, sf)
	return sf
}

// Destroy removes sf from the screen. Destroying twice is a no-op.
func (s *Screen) Destroy(sf *Surface) {
	if sf == nil || sf.screen != s {
		return
	}
	for i, cur := range s.surfaces {
		if cur == sf {
			s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
			break
		}
	}
	sf.screen = nil
	sf.visible = false
}

// Live returns the number of surfaces that have not been destroyed.
func (s *Screen) Live() int {
	return len(s.surfaces)
}

// Grab takes exclusive ownership of input.
func (s *Screen) Grab() error {
	if s.grabbed {
		return ErrGrabbed
	}
	s.grabbed = true
	s.grabs++
	events.Screen.Grab(len(s.surfaces))
	return nil
}

// Release gives up the input grab.
func (s *Screen) Release() error {
	if !s.grabbed {
		return ErrNotGrabbed
	}
	s.grabbed = false
	s.releases++
	events.Screen.Release(len(s.surfaces))
	return nil
}

// Grabbed reports whether input is currently grabbed.
func (s *Screen) Grabbed() bool { return s.grabbed }

// GrabCount returns how many times the grab was taken and released.
func (s *Screen) GrabCount() (grabs, releases int) {
	return s.grabs, s.releases
}

// Surface is an opaque rectangle of styled rows.
type Surface struct {
	id      int
	screen  *Screen
	rect    Rect
	lines   []string
	visible bool
}

// ID returns the surface identifier, unique within its screen.
func (sf *Surface) ID() int { return sf.id }

// Rect returns the surface geometry.
func (sf *Surface) Rect() Rect { return sf.rect }

// Show makes the surface visible.
func (sf *Surface) Show() { sf.visible = sf.screen != nil }

// Visible reports whether the surface is drawn.
func (sf *Surface) Visible() bool { return sf.visible }

// Move repositions the surface.
func (sf *Surface) Move(x, y int) {
	sf.rect.X, sf.rect.Y = x, y
}

// SetLine replaces row. Rows outside the surface are ignored.
func (sf *Surface) SetLine(row int, content string) {
	if row < 0 || row >= len(sf.lines) {
		return
	}
	sf.lines[row] = content
}

// Line returns the content of row.
func (sf *Surface) Line(row int) string {
	if row < 0 || row >= len(sf.lines) {
		return ""
	}
	return sf.lines[row]
}
