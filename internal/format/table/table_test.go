package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"file", "1", "Autosave"},
		{"root", "-1"},
		{"file:recent", "12", "two.txt"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"file          1  Autosave",
		"root         -1",
		"file:recent  12  two.txt",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatMeasuresDisplayWidth(t *testing.T) {
	got := Format([][]string{{"▸", "x"}, {"ab", "y"}}, nil)
	want := []string{"▸   x", "ab  y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
