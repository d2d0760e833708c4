package layer

import (
	"strings"

	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Draw brings the surface up to date and returns the number of item rows it
// rendered. A full redraw renders every row. Otherwise only the previously
// and newly selected items and rows touched by a check preview are redrawn.
func (l *Layer) Draw() int {
	if l.sf == nil {
		return 0
	}
	if l.bar {
		return l.drawBar()
	}
	if l.full {
		l.drawFrame()
		for i := range l.items {
			l.drawItem(i)
		}
		l.full = false
		l.drawn = l.selected
		l.damaged = l.damaged[:0]
		return len(l.items)
	}
	rows := l.damaged
	if l.drawn != l.selected {
		rows = append(rows, l.drawn, l.selected)
		l.drawn = l.selected
	}
	n := 0
	seen := make(map[int]bool, len(rows))
	for _, i := range rows {
		if i < 0 || i >= len(l.items) || seen[i] {
			continue
		}
		seen[i] = true
		l.drawItem(i)
		n++
	}
	l.damaged = l.damaged[:0]
	return n
}

// Invalidate forces the next Draw to render every row.
func (l *Layer) Invalidate() { l.full = true }

// SetPreview shows item i with the check state it would take if committed.
// None clears the preview.
func (l *Layer) SetPreview(i int) {
	if it := l.Item(i); it == nil || (it.Kind != menu.KindToggle && it.Kind != menu.KindRadio) {
		i = menu.None
	}
	if i == l.preview {
		return
	}
	l.damaged = append(l.damaged, l.preview, i)
	l.preview = i
}

// Preview returns the index showing a check preview, or None.
func (l *Layer) Preview() int { return l.preview }

func (l *Layer) drawFrame() {
	b := lipgloss.RoundedBorder()
	st := l.styles.Border
	inner := max(l.rect.W-2*border, 0)
	l.sf.SetLine(0, st.Render(b.TopLeft+strings.Repeat(b.Top, inner)+b.TopRight))
	for row := 1; row < l.rect.H-1; row++ {
		l.sf.SetLine(row, st.Render(b.Left)+l.styles.Item.Render(strings.Repeat(" ", inner))+st.Render(b.Right))
	}
	l.sf.SetLine(l.rect.H-1, st.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
}

func (l *Layer) drawItem(i int) {
	it := l.items[i]
	b := lipgloss.RoundedBorder()
	st := l.styles.Border
	inner := max(l.rect.W-2*border, 0)
	row := l.offsets[i]
	if it.Kind == menu.KindSeparator {
		l.sf.SetLine(row, st.Render(b.MiddleLeft+strings.Repeat(b.Top, inner)+b.MiddleRight))
		return
	}
	base := l.styles.Item
	switch {
	case !it.Active():
		base = l.styles.DisabledItem
	case i == l.selected:
		base = l.styles.SelectedItem
	}
	for j, line := range it.Lines() {
		l.sf.SetLine(row+j, st.Render(b.Left)+l.renderRow(it, i, j, line, *base)+st.Render(b.Right))
	}
}

func (l *Layer) renderRow(it *menu.Item, i, j int, line string, base lipgloss.Style) string {
	inner := max(l.rect.W-2*border, 0)
	shortcutCol := 0
	if l.shortcutW > 0 {
		shortcutCol = shortcutGap + l.shortcutW
	}
	labelCol := max(inner-2*padding-l.checkW-l.arrowW-shortcutCol, 0)

	var b strings.Builder
	b.WriteString(base.Render(strings.Repeat(" ", padding)))
	if l.checkW > 0 {
		if j == 0 {
			b.WriteString(l.styles.Check.Inherit(base).Render(l.checkGlyph(it, i)))
		} else {
			b.WriteString(base.Render(strings.Repeat(" ", l.checkW)))
		}
	}
	mnemonic := -1
	if j == 0 {
		mnemonic = it.MnemonicIndex()
	}
	b.WriteString(l.renderLabel(line, mnemonic, labelCol, base))
	if shortcutCol > 0 {
		sc := ""
		if j == 0 {
			sc = it.ShortcutLabel()
		}
		scStyle := l.styles.Shortcut.Inherit(base)
		if i == l.selected && it.Active() {
			scStyle = l.styles.SelectedShortcut.Inherit(base)
		}
		fill := max(shortcutCol-lipgloss.Width(sc), 0)
		b.WriteString(base.Render(strings.Repeat(" ", fill)))
		if sc != "" {
			b.WriteString(scStyle.Render(sc))
		}
	}
	if l.arrowW > 0 {
		if j == 0 && it.IsSubmenu() {
			b.WriteString(l.styles.Arrow.Inherit(base).Render(" ▸"))
		} else {
			b.WriteString(base.Render(strings.Repeat(" ", l.arrowW)))
		}
	}
	b.WriteString(base.Render(strings.Repeat(" ", padding)))
	return b.String()
}

// renderLabel pads or truncates line to width cells, underlining the
// mnemonic rune at index when it is still visible.
func (l *Layer) renderLabel(line string, index, width int, base lipgloss.Style) string {
	if lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(width), "…")
		index = -1
	}
	fill := strings.Repeat(" ", max(width-lipgloss.Width(line), 0))
	runes := []rune(line)
	if index < 0 || index >= len(runes) {
		return base.Render(line + fill)
	}
	return base.Render(string(runes[:index])) +
		l.styles.Mnemonic.Inherit(base).Render(string(runes[index])) +
		base.Render(string(runes[index+1:])+fill)
}

func (l *Layer) checkGlyph(it *menu.Item, i int) string {
	checked := it.Checked
	if i == l.preview {
		checked = it.Kind == menu.KindRadio || !it.Checked
	}
	switch it.Kind {
	case menu.KindToggle:
		if checked {
			return "[x] "
		}
		return "[ ] "
	case menu.KindRadio:
		if checked {
			return "(•) "
		}
		return "( ) "
	}
	return strings.Repeat(" ", l.checkW)
}

// drawBar renders the whole bar row. Highlighting is left to the pressed
// title overlay, so a selection change alone renders nothing.
func (l *Layer) drawBar() int {
	if !l.full {
		l.drawn = l.selected
		return 0
	}
	bar := *l.styles.Bar
	var b strings.Builder
	b.WriteString(bar.Render(strings.Repeat(" ", padding)))
	used := padding
	for i, it := range l.items {
		if it.Kind == menu.KindSeparator {
			b.WriteString(bar.Render(strings.Repeat(" ", l.widths[i])))
			used += l.widths[i]
			continue
		}
		st := bar
		if !it.Active() {
			st = l.styles.DisabledItem.Inherit(bar)
		}
		line := it.Lines()[0]
		b.WriteString(st.Render(" "))
		b.WriteString(l.renderLabel(line, it.MnemonicIndex(), l.widths[i]-2*padding, st))
		b.WriteString(st.Render(" "))
		used += l.widths[i]
	}
	if rest := l.rect.W - used; rest > 0 {
		b.WriteString(bar.Render(strings.Repeat(" ", rest)))
	}
	l.sf.SetLine(0, b.String())
	l.full = false
	l.drawn = l.selected
	return len(l.items)
}
