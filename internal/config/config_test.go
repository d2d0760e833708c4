package config

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/termmenu/internal/app"
	"github.com/google/go-cmp/cmp"
)

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-file", "menu.yaml",
		"-x", "4", "-y", "2",
		"-title", "Actions",
		"-root", "file:recent",
		"-open", "file:recent:a",
		"-restore",
		"-width", "100", "-height", "30",
		"-leading", "1",
		"-scroll-interval", "20ms",
		"-click-timeout", "250ms",
		"-print-state",
		"-trace",
		"-log-file", "trace.log",
	}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.Config{
		File:           "menu.yaml",
		X:              4,
		Y:              2,
		Title:          "Actions",
		RootMenu:       "file:recent",
		Open:           "file:recent:a",
		Restore:        true,
		Width:          100,
		Height:         30,
		Leading:        1,
		ScrollInterval: 20 * time.Millisecond,
		ClickTimeout:   250 * time.Millisecond,
		PrintState:     true,
	}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("app config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "trace.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["scrollInterval"] != "20ms" || cfg.Flags["root"] != "file:recent" || cfg.Flags["open"] != "file:recent:a" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if len(cfg.Args) != 27 {
		t.Fatalf("expected args recorded, got %d", len(cfg.Args))
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	cfg, err := LoadArgs([]string{"-height", "12"}, []string{
		"TERMMENU_FILE=env.yaml",
		"TERMMENU_BAR=true",
		"TERMMENU_WIDTH=90",
		"TERMMENU_HEIGHT=40",
		"TERMMENU_CLICK_TIMEOUT=1s",
		"TERMMENU_SCROLL_INTERVAL=bogus",
		"TERMMENU_TRACE=1",
		"UNRELATED",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.File != "env.yaml" || !cfg.App.Menubar || cfg.App.Width != 90 {
		t.Fatalf("expected environment values, got %#v", cfg.App)
	}
	if cfg.App.Height != 12 {
		t.Fatalf("expected flag to win over environment, got %d", cfg.App.Height)
	}
	if cfg.App.ClickTimeout != time.Second || cfg.App.ScrollInterval != 0 {
		t.Fatalf("unexpected durations %s %s", cfg.App.ClickTimeout, cfg.App.ScrollInterval)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
}

func TestLoadArgsRejectsNegativeValues(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "-1"},
		{"-leading", "-2"},
		{"-y", "-3"},
		{"-click-timeout", "-1s"},
	} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Config{}); !errors.Is(err, ErrNoMenuFile) {
		t.Fatalf("expected ErrNoMenuFile, got %v", err)
	}
	if err := Validate(Config{App: app.Config{File: "m.yaml", Menubar: true, Title: "x"}}); err == nil {
		t.Fatalf("expected title with bar to be rejected")
	}
	if err := Validate(Config{App: app.Config{File: "m.yaml"}}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
