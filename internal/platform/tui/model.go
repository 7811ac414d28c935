package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/session"
)

// helpHeight is the number of rows reserved below the screen for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model wrapping the session controller.
// Keys and ticks are turned into frames; each message advances the
// controller at most once and is followed by one redraw.
type Model struct {
	ctrl     *session.Controller
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    core.Clock
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// Option customizes a Model.
type Option func(*Model)

// WithClock sets the clock used to stamp key presses.
func WithClock(c core.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithLogger sets the logger for platform events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a new Bubble Tea model for the controller.
func NewModel(ctrl *session.Controller, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		ctrl:   ctrl,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config: cfg,
		clock:  core.SystemClock{},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey stamps the key with the clock at arrival and steps the controller.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.ctrl.Step(core.KeyFrame(m.clock.Now(), m.keys.Event(msg)))
	if m.ctrl.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The active game keeps its state; it draws into the resized buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	m.ctrl.Resize(msg.Width, msg.Height-helpHeight)
	return m, nil
}

// handleTick advances timers and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.ctrl.Step(core.TickFrame(now))
	if m.ctrl.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.ctrl.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".humanbench", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.ctrl.Phase(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Render(m.screen)

	gameID := ""
	if g := m.ctrl.Game(); g != nil {
		gameID = g.ID()
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.HelpFor(m.ctrl.Phase(), gameID, len(m.ctrl.Items())))
}

// Run starts the Bubble Tea program for the controller.
func Run(ctrl *session.Controller, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(ctrl, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
