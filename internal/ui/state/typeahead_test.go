package state

import "testing"

func TestBestMatchPrefersExactThenPrefix(t *testing.T) {
	labels := []string{"Open recent", "Open", "Close", ""}
	if got := BestMatch(labels, "open"); got != 1 {
		t.Fatalf("expected exact match 1, got %d", got)
	}
	if got := BestMatch(labels, "op"); got != 0 {
		t.Fatalf("expected first prefix match 0, got %d", got)
	}
	if got := BestMatch(labels, "los"); got != 2 {
		t.Fatalf("expected substring match 2, got %d", got)
	}
	if got := BestMatch(labels, "cls"); got != 2 {
		t.Fatalf("expected fuzzy match 2, got %d", got)
	}
	if got := BestMatch(labels, "zzz"); got != None {
		t.Fatalf("expected no match, got %d", got)
	}
	if got := BestMatch(labels, "  "); got != None {
		t.Fatalf("expected blank query to match nothing, got %d", got)
	}
}

func TestTypeAheadBuffer(t *testing.T) {
	var ta TypeAhead
	if !ta.Empty() {
		t.Fatalf("expected empty buffer")
	}
	if got := ta.Insert("co\x01p"); got != "cop" {
		t.Fatalf("expected control rune dropped, got %q", got)
	}
	if !ta.DeleteBackward() || ta.Query() != "co" {
		t.Fatalf("unexpected query %q", ta.Query())
	}
	ta.Reset()
	if !ta.Empty() || ta.DeleteBackward() {
		t.Fatalf("expected reset buffer")
	}
}
