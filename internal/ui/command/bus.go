package command

import (
	"context"

	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID    string
	Label string
	Item  *menu.Item
}

// ResultMsg reports the outcome of an executed request.
type ResultMsg struct {
	ID    string
	Label string
	Item  *menu.Item
	Err   error
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an item's action into a Bubble Tea command while emitting
// trace logs. The command always yields a ResultMsg, even when the item has
// no action bound.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		result := ResultMsg{ID: req.ID, Label: req.Label, Item: req.Item}
		if !req.Item.HasAction() {
			events.Command.Skip(req.ID, req.Label)
			return result
		}
		result.Err = req.Item.Execute(ctx)
		events.Command.Result(req.ID, req.Label, result.Err)
		return result
	}
}
