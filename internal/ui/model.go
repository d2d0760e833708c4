package ui

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/screen"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/atomicstack/termmenu/internal/ui/command"
	"github.com/atomicstack/termmenu/internal/ui/layer"
	"github.com/atomicstack/termmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// State is the phase of a menu session.
type State int

const (
	// StateInitial means nothing has been pressed yet, or a press opened a
	// submenu and the matching release should not commit.
	StateInitial State = iota
	// StatePushed means an item has been pressed.
	StatePushed
	// StateDone means the selected item is committed.
	StateDone
	// StateAborted ends the session without running anything.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StatePushed:
		return "pushed"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	defaultWidth            = 80
	defaultHeight           = 24
	defaultScrollInterval   = 50 * time.Millisecond
	defaultClickTimeout     = 400 * time.Millisecond
	defaultTypeAheadTimeout = time.Second
)

// Options tune a session. Zero values pick sensible defaults.
type Options struct {
	Width            int
	Height           int
	MinWidth         int
	Leading          int
	Restore          bool
	ScrollInterval   time.Duration
	ClickTimeout     time.Duration
	TypeAheadTimeout time.Duration
	Background       []string
	Styles           *theme.Styles
	// Opener is the root item whose press opened the session, such as the
	// clicked menu bar button. It starts out selected and takes precedence
	// over Restore.
	Opener *menu.Item
	// Screen lets several sessions share one screen and its grab. When nil
	// the session owns a private screen sized Width x Height.
	Screen *screen.Screen
	// ProgramOptions are appended to the options used by Popup and Pulldown.
	ProgramOptions []tea.ProgramOption
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.ScrollInterval <= 0 {
		o.ScrollInterval = defaultScrollInterval
	}
	if o.ClickTimeout <= 0 {
		o.ClickTimeout = defaultClickTimeout
	}
	if o.TypeAheadTimeout <= 0 {
		o.TypeAheadTimeout = defaultTypeAheadTimeout
	}
	if o.Styles == nil {
		o.Styles = theme.Default()
	}
	return o
}

// Request describes the menu to open and where.
type Request struct {
	Root      *menu.Menu
	Anchor    screen.Rect
	Menubar   bool
	Placement layer.Placement
	Title     string
}

// Result reports how a session ended.
type Result struct {
	Committed bool
	Item      *menu.Item
	// Path lists the item identifiers from the root to the committed item.
	Path []string
}

// ID joins Path with ':' into the identifier used by menu.Registry.
func (r Result) ID() string {
	return strings.Join(r.Path, ":")
}

type msgHandler func(tea.Msg) tea.Cmd

type trigger int

const (
	triggerNone trigger = iota
	triggerKey
	triggerPress
	triggerMove
	triggerRelease
)

// Session is the Bubble Tea model driving one open menu: it owns the
// selection path and the live layers, interprets input, and reconciles the
// two after every message.
type Session struct {
	ctx     context.Context
	opts    Options
	req     Request
	scr     *screen.Screen
	styles  *theme.Styles
	bus     *command.Bus
	menubar bool

	path     *state.Path
	layers   [state.MaxLevels]*layer.Layer
	nummenus int
	fakemenu *layer.Title
	state    State
	last     state.Cursor

	restoring bool
	trigger   trigger

	keys      keyMap
	typeahead state.TypeAhead
	typeGen   int
	modifier  modifierState
	pointer   pointerState
	scrollGen int

	handlers map[reflect.Type]msgHandler
	tick     func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	now      func() time.Time

	result    Result
	actionErr error
	grabbed   bool
	torn      bool
}

// NewSession grabs the screen, builds the root layer for req and returns
// the session model. Callers must eventually let the session finish or call
// Close so the grab is released.
func NewSession(ctx context.Context, req Request, opts Options) (*Session, error) {
	if req.Root == nil || len(req.Root.Visible()) == 0 {
		return nil, menu.ErrEmptyMenu
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts = opts.withDefaults()
	scr := opts.Screen
	if scr == nil {
		scr = screen.New(opts.Width, opts.Height)
	}
	if opts.Background != nil {
		scr.SetBackground(opts.Background)
	}
	if err := scr.Grab(); err != nil {
		return nil, fmt.Errorf("open menu %q: %w", req.Root.ID, err)
	}
	if req.Menubar {
		req.Placement = layer.PlaceBar
	}
	s := &Session{
		ctx:     ctx,
		opts:    opts,
		req:     req,
		scr:     scr,
		styles:  opts.Styles,
		bus:     command.New(),
		menubar: req.Menubar,
		path:    state.NewPath(),
		state:   StateInitial,
		keys:    defaultKeyMap(),
		tick:    tea.Tick,
		now:     time.Now,
		grabbed: true,
	}
	s.last = s.path.Current()
	s.registerHandlers()
	s.openRoot()
	events.Session.Open(req.Root.ID, req.Menubar, req.Anchor.X, req.Anchor.Y)
	s.trigger = triggerKey
	s.reconcile()
	return s, nil
}

func (s *Session) openRoot() {
	pick := menu.None
	if s.opts.Restore && !s.menubar && s.opts.Opener == nil {
		pick = s.req.Root.Chosen()
	}
	minWidth := s.opts.MinWidth
	if s.req.Placement == layer.PlaceBelow {
		minWidth = max(minWidth, s.req.Anchor.W)
	}
	root := layer.New(s.scr, layer.Options{
		Level:     0,
		Menu:      s.req.Root,
		Anchor:    s.req.Anchor,
		Placement: s.req.Placement,
		MinWidth:  minWidth,
		Selected:  pick,
		Title:     s.req.Title,
		Leading:   s.opts.Leading,
		Styles:    s.styles,
	})
	s.push(root)
	if pick >= 0 {
		s.path.Set(0, pick)
		s.restoring = true
		return
	}
	if s.opts.Opener == nil {
		return
	}
	for i, it := range root.Items() {
		if it == s.opts.Opener && it.Active() {
			s.path.Set(0, i)
			return
		}
	}
}

// Init is part of the tea.Model interface.
func (s *Session) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	s.trigger = triggerNone
	if handler := s.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return s, s.finishUpdate(cmds)
}

func (s *Session) registerHandlers() {
	s.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          s.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        s.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   s.handleWindowSizeMsg,
		reflect.TypeOf(ModifierMsg{}):         s.handleModifierMsg,
		reflect.TypeOf(scrollTickMsg{}):       s.handleScrollTickMsg,
		reflect.TypeOf(typeAheadExpiredMsg{}): s.handleTypeAheadExpiredMsg,
		reflect.TypeOf(command.ResultMsg{}):   s.handleResultMsg,
	}
}

func (s *Session) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || s.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := s.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := s.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate reconciles the layers with the path and, once the session
// reached a terminal state, ends it.
func (s *Session) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if !s.terminal() {
		if cmd := s.reconcile(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := s.finish(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (s *Session) setState(to State) {
	if s.state == to {
		return
	}
	events.Session.State(s.state.String(), to.String())
	s.state = to
}

func (s *Session) terminal() bool {
	return s.state == StateDone || s.state == StateAborted
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Path returns the selection path.
func (s *Session) Path() *state.Path { return s.path }

// Depth returns the number of live layers.
func (s *Session) Depth() int { return s.nummenus }

// Layer returns the live layer at level, or nil.
func (s *Session) Layer(level int) *layer.Layer {
	if level < 0 || level >= s.nummenus {
		return nil
	}
	return s.layers[level]
}

// Screen returns the screen the session draws on.
func (s *Session) Screen() *screen.Screen { return s.scr }

// Result returns the outcome recorded so far.
func (s *Session) Result() Result { return s.result }

// Err returns the error reported by the committed action, if any.
func (s *Session) Err() error { return s.actionErr }

// Closed reports whether teardown has run.
func (s *Session) Closed() bool { return s.torn }

// Count reports the number of items at level for the navigation engine.
func (s *Session) Count(level int) int {
	if l := s.Layer(level); l != nil {
		return l.Count()
	}
	return 0
}

// Selectable reports whether item index at level accepts the selection.
func (s *Session) Selectable(level, index int) bool {
	if l := s.Layer(level); l != nil {
		return l.Item(index).Active()
	}
	return false
}

func (s *Session) currentItem() *menu.Item {
	cur := s.path.Current()
	if l := s.Layer(cur.Level); l != nil {
		return l.Item(cur.Index)
	}
	return nil
}

func (s *Session) selectedPath() ([]string, []*menu.Item) {
	cur := s.path.Current()
	ids := make([]string, 0, cur.Level+1)
	items := make([]*menu.Item, 0, cur.Level+1)
	for d := 0; d <= cur.Level; d++ {
		l := s.Layer(d)
		if l == nil {
			break
		}
		it := l.Item(s.path.Index(d))
		if it == nil {
			break
		}
		ids = append(ids, it.ID)
		items = append(items, it)
	}
	return ids, items
}
