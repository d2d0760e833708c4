package menu

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisplayLabel strips mnemonic markers from the label. "&&" renders a literal '&'.
func (it *Item) DisplayLabel() string {
	label, _, _ := parseMnemonic(it.Label)
	return label
}

// Mnemonic returns the lower-cased rune marked with '&' in the label, or 0.
func (it *Item) Mnemonic() rune {
	_, r, _ := parseMnemonic(it.Label)
	return r
}

// MnemonicIndex returns the rune offset of the mnemonic in DisplayLabel, or -1.
func (it *Item) MnemonicIndex() int {
	_, _, idx := parseMnemonic(it.Label)
	return idx
}

func parseMnemonic(label string) (string, rune, int) {
	if !strings.Contains(label, "&") {
		return label, 0, -1
	}
	var b strings.Builder
	runes := []rune(label)
	var mnemonic rune
	idx := -1
	out := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '&' && i+1 < len(runes) {
			next := runes[i+1]
			if next == '&' {
				b.WriteRune('&')
				out++
				i++
				continue
			}
			if mnemonic == 0 && !unicode.IsSpace(next) {
				mnemonic = unicode.ToLower(next)
				idx = out
			}
			continue
		}
		b.WriteRune(r)
		out++
	}
	return b.String(), mnemonic, idx
}

// NormalizeKey lower-cases modifier and named key parts of a key string so
// "Ctrl+S" compares equal to the "ctrl+s" reported by the terminal. A single
// trailing character keeps its case unless ctrl is held, since terminals
// cannot report shifted control keys.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if key == "+" {
		return key
	}
	parts := strings.Split(key, "+")
	if strings.HasSuffix(key, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	ctrl := false
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == len(parts)-1 && utf8.RuneCountInString(part) == 1 {
			if ctrl {
				part = strings.ToLower(part)
			}
			parts[i] = part
			continue
		}
		part = strings.ToLower(part)
		switch part {
		case "control":
			part = "ctrl"
		case "escape":
			part = "esc"
		case "return":
			part = "enter"
		case "option", "meta":
			part = "alt"
		}
		if part == "ctrl" {
			ctrl = true
		}
		parts[i] = part
	}
	return strings.Join(parts, "+")
}

// ShortcutLabel renders the item's shortcut for display, e.g. "Ctrl+S".
func (it *Item) ShortcutLabel() string {
	key := NormalizeKey(it.Shortcut)
	if key == "" {
		return ""
	}
	parts := strings.Split(key, "+")
	if strings.HasSuffix(key, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	for i, part := range parts {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, "+")
}

// MatchesKey reports whether a key press selects this item. Explicit shortcuts
// match everywhere; mnemonics match with alt anywhere and bare inside popups.
func (it *Item) MatchesKey(key string, bar bool) bool {
	if !it.Active() || key == "" {
		return false
	}
	if it.Shortcut != "" && NormalizeKey(it.Shortcut) == key {
		return true
	}
	r := it.Mnemonic()
	if r == 0 {
		return false
	}
	if strings.EqualFold(key, "alt+"+string(r)) {
		return true
	}
	if bar {
		return false
	}
	return utf8.RuneCountInString(key) == 1 && strings.EqualFold(key, string(r))
}
