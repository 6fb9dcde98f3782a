package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/mouse-menu/internal/backend"
	"github.com/atomicstack/mouse-menu/internal/config"
	"github.com/atomicstack/mouse-menu/internal/data/dispatcher"
	"github.com/atomicstack/mouse-menu/internal/editor"
	"github.com/atomicstack/mouse-menu/internal/logging"
	"github.com/atomicstack/mouse-menu/internal/menu"
	"github.com/atomicstack/mouse-menu/internal/popup"
	"github.com/atomicstack/mouse-menu/internal/state"
	"github.com/atomicstack/mouse-menu/internal/theme"
	"github.com/atomicstack/mouse-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusRows    = 1
	wheelStep     = 3
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	Trigger    config.Trigger
	Buffers    []*editor.Buffer
	Vars       state.VarStore
	Watcher    *backend.Watcher
	ConfigPath string
}

// Model implements the Bubble Tea model for the editor and its popup menu.
type Model struct {
	editor   *editor.Editor
	screen   *editor.Screen
	engine   *popup.Engine
	vars     state.VarStore
	source   *menu.Source
	bus      *command.Bus
	keys     keyMap
	trigger  config.Trigger
	dragging bool

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	backend        *backend.Watcher
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the editor, the popup engine and the configuration store.
func NewModel(opts Options) *Model {
	vars := opts.Vars
	if vars == nil {
		vars = state.NewVarStore()
	}
	menu.InstallDefaults(vars)

	m := &Model{
		vars:       vars,
		source:     menu.NewSource(vars),
		screen:     editor.NewScreen(),
		keys:       defaultKeyMap(),
		trigger:    opts.Trigger,
		backend:    opts.Watcher,
		dispatcher: dispatcher.New(vars, opts.ConfigPath),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	if m.trigger == "" {
		m.trigger = config.TriggerPress
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.editor = editor.New(m.width, m.editorHeight(), opts.Buffers...)
	m.bus = command.New(m.editor)
	m.engine = popup.New(popup.Options{
		Drawer:   m.screen,
		Executor: m.bus,
		Reporter: popup.ReporterFunc(m.reportError),
		Source:   m.source,
	})
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate runs after every message, before the next frame is drawn.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.engine.Refresh()
	if m.editor.Quit() {
		m.engine.Close()
		cmds = append(cmds, tea.Quit)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) editorHeight() int {
	h := m.height - statusRows
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	// Geometry is computed at open time only, so a resize dismisses the popup.
	m.engine.Close()
	m.editor.Resize(m.width, m.editorHeight())
	return nil
}

func (m *Model) reportError(err error) {
	if err == nil {
		return
	}
	m.errMsg = err.Error()
}

// runCommand executes a host command through the bus and surfaces failures.
func (m *Model) runCommand(tokens ...string) {
	if err := m.bus.Execute(tokens); err != nil {
		logging.Error(err)
		m.reportError(err)
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// Editor exposes the host editor.
func (m *Model) Editor() *editor.Editor {
	return m.editor
}

// Engine exposes the popup engine.
func (m *Model) Engine() *popup.Engine {
	return m.engine
}
