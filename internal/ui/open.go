package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/screen"
	"github.com/atomicstack/termmenu/internal/ui/layer"
	tea "github.com/charmbracelet/bubbletea"
)

// Pulldown opens root as a dropdown below anchor, or as a horizontal menu bar
// covering anchor when menubar is set, and blocks until the session ends.
func Pulldown(ctx context.Context, root *menu.Menu, anchor screen.Rect, menubar bool, opts Options) (Result, error) {
	return run(ctx, Request{
		Root:      root,
		Anchor:    anchor,
		Menubar:   menubar,
		Placement: layer.PlaceBelow,
	}, opts)
}

// Popup opens root at the given cell with an optional caption and blocks
// until the session ends.
func Popup(ctx context.Context, root *menu.Menu, at screen.Point, title string, opts Options) (Result, error) {
	return run(ctx, Request{
		Root:      root,
		Anchor:    screen.Rect{X: at.X, Y: at.Y},
		Placement: layer.PlaceAt,
		Title:     title,
	}, opts)
}

func run(ctx context.Context, req Request, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := NewSession(ctx, req, opts)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	}, s.opts.ProgramOptions...)
	program := tea.NewProgram(s, programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			s.abort(events.AbortContext)
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("run menu %q: %w", req.Root.ID, err)
	}
	res := s.Result()
	if err := s.Err(); err != nil {
		return res, fmt.Errorf("run %s: %w", res.ID(), err)
	}
	return res, nil
}
