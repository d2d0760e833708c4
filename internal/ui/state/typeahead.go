package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TypeAhead accumulates printable runes typed while a menu is open.
type TypeAhead struct {
	query []rune
}

// Insert appends text and returns the updated query. Non-printable runes are
// dropped.
func (t *TypeAhead) Insert(text string) string {
	for _, r := range text {
		if unicode.IsPrint(r) {
			t.query = append(t.query, r)
		}
	}
	return t.Query()
}

// DeleteBackward removes the last rune. It reports whether anything was
// removed.
func (t *TypeAhead) DeleteBackward() bool {
	if len(t.query) == 0 {
		return false
	}
	t.query = t.query[:len(t.query)-1]
	return true
}

// Query returns the accumulated text.
func (t *TypeAhead) Query() string {
	return string(t.query)
}

// Reset clears the accumulated text.
func (t *TypeAhead) Reset() {
	t.query = t.query[:0]
}

// Empty reports whether nothing has been typed.
func (t *TypeAhead) Empty() bool {
	return len(t.query) == 0
}

// BestMatch returns the index of the label that best matches query, or None.
// Empty labels never match. Exact matches win over prefixes, prefixes over
// substrings, and substrings over fuzzy matches.
func BestMatch(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return None
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if label != "" && strings.EqualFold(label, trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if label != "" && strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if label != "" && strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	best := None
	bestDistance := 0
	for _, rank := range ranks {
		if rank.OriginalIndex < 0 || rank.OriginalIndex >= len(labels) || labels[rank.OriginalIndex] == "" {
			continue
		}
		if best == None || rank.Distance < bestDistance ||
			(rank.Distance == bestDistance && rank.OriginalIndex < best) {
			best = rank.OriginalIndex
			bestDistance = rank.Distance
		}
	}
	return best
}
