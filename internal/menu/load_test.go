package menu

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleYAML = `
title: Editor
items:
  - label: "&File"
    items:
      - label: "&Open"
        shortcut: Ctrl+O
        value: open
      - ---
      - label: Recent
        title: Recent files
        items: [one.txt, two.txt]
  - label: "&View"
    items:
      - label: Word wrap
        type: toggle
        checked: true
        stay-open: true
      - label: Left
        type: radio
      - label: Right
        type: radio
  - label: Disabled thing
    disabled: true
  - Quit
`

func TestLoadBuildsTree(t *testing.T) {
	root, err := Load(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if root.Title != "Editor" || root.LastChosen != None {
		t.Fatalf("unexpected root %#v", root)
	}
	var ids []string
	for _, it := range root.Items {
		ids = append(ids, it.ID)
	}
	if diff := cmp.Diff([]string{"file", "view", "disabled-thing", "quit"}, ids); diff != "" {
		t.Fatalf("root ids mismatch (-want +got):\n%s", diff)
	}

	file := root.Items[0]
	if !file.IsSubmenu() || file.Mnemonic() != 'f' {
		t.Fatalf("expected File submenu with mnemonic f")
	}
	open := file.Submenu.Items[0]
	if open.Shortcut != "ctrl+o" || open.Value != "open" {
		t.Fatalf("unexpected open item %#v", open)
	}
	if file.Submenu.Items[1].Kind != KindSeparator {
		t.Fatalf("expected bare --- to be a separator")
	}
	recent := file.Submenu.Items[2]
	if recent.Submenu == nil || recent.Submenu.Title != "Recent files" || len(recent.Submenu.Items) != 2 {
		t.Fatalf("unexpected recent submenu %#v", recent.Submenu)
	}
	if recent.Submenu.Items[0].ID != "one-txt" {
		t.Fatalf("expected slug id, got %q", recent.Submenu.Items[0].ID)
	}

	wrap := root.Items[1].Submenu.Items[0]
	if wrap.Kind != KindToggle || !wrap.Checked || !wrap.StaysOpen {
		t.Fatalf("unexpected toggle item %#v", wrap)
	}
	if !root.Items[2].Disabled {
		t.Fatalf("expected disabled flag to load")
	}
}

func TestLoadRejectsInvalidDefinitions(t *testing.T) {
	cases := map[string]string{
		"unknown type":      "items:\n  - label: x\n    type: slider\n",
		"missing label":     "items:\n  - id: x\n",
		"toggle submenu":    "items:\n  - label: x\n    type: toggle\n    items: [a]\n",
		"separator w/items": "items:\n  - type: separator\n    items: [a]\n",
		"unknown field":     "items:\n  - label: x\n    colour: red\n",
	}
	for name, doc := range cases {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadEmptyMenu(t *testing.T) {
	if _, err := Load(strings.NewReader("")); !errors.Is(err, ErrEmptyMenu) {
		t.Fatalf("expected ErrEmptyMenu for empty input, got %v", err)
	}
	if _, err := Load(strings.NewReader("items:\n  - label: x\n    hidden: true\n")); !errors.Is(err, ErrEmptyMenu) {
		t.Fatalf("expected ErrEmptyMenu when nothing is visible, got %v", err)
	}
}

func TestLoadDeduplicatesIDs(t *testing.T) {
	root, err := Load(strings.NewReader("items: [Same, Same, Same]\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got := []string{root.Items[0].ID, root.Items[1].ID, root.Items[2].ID}
	if diff := cmp.Diff([]string{"same", "same-2", "same-3"}, got); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileWrapsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	if err := os.WriteFile(path, []byte("items: [- broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error mentioning %s, got %v", path, err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
