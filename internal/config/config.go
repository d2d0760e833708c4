package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/termmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFile           = "TERMMENU_FILE"
	envBar            = "TERMMENU_BAR"
	envRoot           = "TERMMENU_ROOT"
	envRestore        = "TERMMENU_RESTORE"
	envWidth          = "TERMMENU_WIDTH"
	envHeight         = "TERMMENU_HEIGHT"
	envLeading        = "TERMMENU_LEADING"
	envScrollInterval = "TERMMENU_SCROLL_INTERVAL"
	envClickTimeout   = "TERMMENU_CLICK_TIMEOUT"
	envTrace          = "TERMMENU_TRACE"
	envLogFile        = "TERMMENU_LOG_FILE"
)

// ErrNoMenuFile is returned by Validate when no menu definition was given.
var ErrNoMenuFile = errors.New("no menu file given (use -file or TERMMENU_FILE)")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	file := fs.String("file", envOrDefault(env, envFile, ""), "path to the YAML menu definition")
	bar := fs.Bool("bar", envOrBool(env, envBar, false), "open the root menu as a horizontal menu bar")
	x := fs.Int("x", 0, "column of the popup origin")
	y := fs.Int("y", 0, "row of the popup origin")
	title := fs.String("title", "", "caption shown above the popup")
	root := fs.String("root", envOrDefault(env, envRoot, ""), "open the submenu with this colon-joined id instead of the root")
	open := fs.String("open", "", "colon-joined id of a top-level entry to start selected (menu bars open its dropdown)")
	restore := fs.Bool("restore", envOrBool(env, envRestore, false), "reopen the menu at the previously chosen item")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "screen width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "screen height in rows (0 uses terminal height)")
	leading := fs.Int("leading", envOrInt(env, envLeading, 0), "blank rows between popup items")
	scroll := fs.Duration("scroll-interval", envOrDuration(env, envScrollInterval, 0), "autoscroll repeat interval (0 uses the default)")
	click := fs.Duration("click-timeout", envOrDuration(env, envClickTimeout, 0), "maximum press-to-release time of a click (0 uses the default)")
	printState := fs.Bool("print-state", false, "print the remembered choice of every menu after the session")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	for _, check := range []struct {
		name  string
		value int
	}{
		{"width", *width},
		{"height", *height},
		{"leading", *leading},
		{"x", *x},
		{"y", *y},
	} {
		if check.value < 0 {
			return Config{}, fmt.Errorf("%s must be >= 0 (got %d)", check.name, check.value)
		}
	}
	if *scroll < 0 {
		return Config{}, fmt.Errorf("scroll-interval must be >= 0 (got %s)", *scroll)
	}
	if *click < 0 {
		return Config{}, fmt.Errorf("click-timeout must be >= 0 (got %s)", *click)
	}

	cfg := Config{
		App: app.Config{
			File:           *file,
			Menubar:        *bar,
			X:              *x,
			Y:              *y,
			Title:          *title,
			RootMenu:       *root,
			Open:           *open,
			Restore:        *restore,
			Width:          *width,
			Height:         *height,
			Leading:        *leading,
			ScrollInterval: *scroll,
			ClickTimeout:   *click,
			PrintState:     *printState,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"file":           *file,
			"bar":            strconv.FormatBool(*bar),
			"x":              strconv.Itoa(*x),
			"y":              strconv.Itoa(*y),
			"title":          *title,
			"root":           *root,
			"open":           *open,
			"restore":        strconv.FormatBool(*restore),
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"leading":        strconv.Itoa(*leading),
			"scrollInterval": scroll.String(),
			"clickTimeout":   click.String(),
			"printState":     strconv.FormatBool(*printState),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.File) == "" {
		return ErrNoMenuFile
	}
	if cfg.App.Menubar && cfg.App.Title != "" {
		return fmt.Errorf("-title is not supported with -bar")
	}
	return nil
}
