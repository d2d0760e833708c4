package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/atomicstack/termmenu/internal/format/table"
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/screen"
	"github.com/atomicstack/termmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrDismissed is returned by Run when the menu closed without a choice.
var ErrDismissed = errors.New("menu dismissed")

// Config describes user-provided application options.
type Config struct {
	File           string
	Menubar        bool
	X              int
	Y              int
	Title          string
	RootMenu       string
	Open           string
	Restore        bool
	Width          int
	Height         int
	Leading        int
	ScrollInterval time.Duration
	ClickTimeout   time.Duration
	PrintState     bool
}

// Run loads the menu file, opens the menu and writes the chosen item's value
// (or its identifier) to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	reg, root, err := loadMenu(cfg)
	if err != nil {
		return err
	}
	sink := &outputSink{}
	bindActions(reg, sink)

	opener, err := resolveOpener(reg, root, cfg.Open)
	if err != nil {
		return err
	}

	width, height := screenSize(cfg)
	opts := ui.Options{
		Width:          width,
		Height:         height,
		Leading:        cfg.Leading,
		Restore:        cfg.Restore,
		ScrollInterval: cfg.ScrollInterval,
		ClickTimeout:   cfg.ClickTimeout,
		Opener:         opener,
		// stdout carries the result, so the menu draws on stderr.
		ProgramOptions: []tea.ProgramOption{tea.WithOutput(os.Stderr)},
	}

	var res ui.Result
	if cfg.Menubar {
		res, err = ui.Pulldown(ctx, root, screen.Rect{X: cfg.X, Y: cfg.Y, H: 1}, true, opts)
	} else {
		res, err = ui.Popup(ctx, root, screen.Point{X: cfg.X, Y: cfg.Y}, cfg.Title, opts)
	}
	sink.flush(out)
	if cfg.PrintState {
		writeState(out, reg)
	}
	if err != nil {
		return err
	}
	value := outputFor(reg, res.Item)
	events.App.Exit(res.Committed, value)
	if !res.Committed {
		return ErrDismissed
	}
	fmt.Fprintln(out, value)
	return nil
}

func loadMenu(cfg Config) (*menu.Registry, *menu.Menu, error) {
	root, err := menu.LoadFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	reg := menu.BuildRegistry(root)
	if cfg.RootMenu == "" {
		return reg, root, nil
	}
	sub, ok := reg.Menu(cfg.RootMenu)
	if !ok {
		return nil, nil, fmt.Errorf("unknown menu %q in %s", cfg.RootMenu, cfg.File)
	}
	return reg, sub, nil
}

// resolveOpener finds the item named by id among the entries of root.
func resolveOpener(reg *menu.Registry, root *menu.Menu, id string) (*menu.Item, error) {
	if id == "" {
		return nil, nil
	}
	if it, ok := reg.Find(id); ok {
		for _, candidate := range root.Visible() {
			if candidate == it {
				return it, nil
			}
		}
	}
	return nil, fmt.Errorf("-open %q is not an entry of menu %q", id, root.ID)
}

// outputSink collects the output of stays-open items, which run while the
// menu still owns the terminal.
type outputSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *outputSink) add(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

func (s *outputSink) flush(out io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.lines {
		fmt.Fprintln(out, line)
	}
	s.lines = nil
}

// bindActions gives every stays-open leaf an action that records its output.
// Other leaves are reported once the session ends.
func bindActions(reg *menu.Registry, sink *outputSink) {
	reg.Items(func(id string, it *menu.Item) {
		if it.Submenu != nil || !it.StaysOpen || it.Action != nil {
			return
		}
		it.Action = func(context.Context, *menu.Item) error {
			sink.add(outputFor(reg, it))
			return nil
		}
	})
}

func outputFor(reg *menu.Registry, it *menu.Item) string {
	if it == nil {
		return ""
	}
	if it.Value != "" {
		return it.Value
	}
	if id := reg.IDOf(it); id != "" {
		return id
	}
	return it.ID
}

// writeState prints the remembered choice of every menu as an aligned
// id/index table, sorted by id.
func writeState(out io.Writer, reg *menu.Registry) {
	type entry struct {
		id     string
		chosen int
	}
	entries := []entry{{id: "root", chosen: reg.Root().LastChosen}}
	reg.Items(func(id string, it *menu.Item) {
		if it.Submenu != nil {
			entries = append(entries, entry{id: id, chosen: it.Submenu.LastChosen})
		}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.id, strconv.Itoa(e.chosen)}
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		fmt.Fprintln(out, line)
	}
}

// screenSize resolves the screen size from the configuration, falling back
// to the controlling terminal.
func screenSize(cfg Config) (int, int) {
	width, height := cfg.Width, cfg.Height
	if width > 0 && height > 0 {
		return width, height
	}
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		w, h, err := term.GetSize(fd)
		if err != nil {
			continue
		}
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
		break
	}
	return width, height
}
