package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Render composites the visible surfaces over the background, bottom to top,
// and returns the screen as newline separated rows.
func (s *Screen) Render() string {
	if s.width == 0 || s.height == 0 {
		return ""
	}
	rows := make([]string, s.height)
	for y := range rows {
		line := ""
		if y < len(s.background) {
			line = ansi.Truncate(s.background[y], s.width, "")
		}
		rows[y] = pad(line, s.width)
	}
	for _, sf := range s.surfaces {
		if !sf.visible {
			continue
		}
		r := sf.rect
		for i := 0; i < r.H; i++ {
			y := r.Y + i
			if y < 0 || y >= s.height {
				continue
			}
			rows[y] = overlay(rows[y], pad(sf.lines[i], r.W), r.X, r.W, s.width)
		}
	}
	return strings.Join(rows, "\n")
}

// overlay splices the w-cell segment seg into base at column x, clipping it to
// [0, width).
func overlay(base, seg string, x, w, width int) string {
	left, right := x, x+w
	if left < 0 {
		seg = ansi.Cut(seg, -left, w)
		left = 0
	}
	if right > width {
		seg = ansi.Truncate(seg, width-left, "")
		right = width
	}
	if left >= right {
		return base
	}
	return ansi.Cut(base, 0, left) + seg + ansi.Cut(base, right, width)
}

// pad extends s with spaces to exactly w cells, truncating when wider.
func pad(s string, w int) string {
	n := ansi.StringWidth(s)
	if n > w {
		return ansi.Truncate(s, w, "")
	}
	if n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
