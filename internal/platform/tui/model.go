package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coretilus/internal/config"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
)

// Model is the Bubble Tea model driving one scene.
type Model struct {
	name     string
	engine   *engine.Engine
	tick     time.Duration
	logger   *log.Logger
	style    lipgloss.Style
	result   engine.Result
	finished bool
}

// NewModel starts e at its fallback size; the first window size message
// resizes it to the real terminal.
func NewModel(name string, e *engine.Engine, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := e.Start(e.Config().FallbackSize); err != nil {
		return Model{}, err
	}
	return Model{
		name:   name,
		engine: e,
		tick:   e.Config().TickDuration,
		logger: logger,
		style:  lipgloss.NewStyle(),
	}, nil
}

// WithStyle sets the style frames are painted with.
func (m Model) WithStyle(style lipgloss.Style) Model {
	m.style = style
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.engine.Resize(core.NewSize(msg.Width, msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards keyboard input to the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	ev, ok := MapKey(msg)
	if !ok {
		return m, nil
	}
	m.engine.HandleKey(ev)
	return m.checkFinished()
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	m.engine.Tick()
	if model, cmd := m.checkFinished(); cmd != nil {
		return model, cmd
	}
	return m, tickCmd(m.tick)
}

func (m Model) checkFinished() (Model, tea.Cmd) {
	reason, done := m.engine.Finished()
	if !done {
		return m, nil
	}
	m.finished = true
	m.result = engine.Result{Reason: reason, Ticks: m.engine.Ticks()}
	m.logger.Debug("run finished", "scene", m.name, "reason", reason, "ticks", m.result.Ticks)
	return m, tea.Quit
}

// saveScreenshot writes the current frame to the screenshots directory.
func (m Model) saveScreenshot() {
	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.name, timestamp))
	if err := os.WriteFile(path, []byte(m.engine.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame.
func (m Model) View() string {
	if m.finished {
		return ""
	}
	return RenderScreen(m.engine.Screen(), m.style)
}

// Result returns how the run ended. It is only meaningful after Run.
func (m Model) Result() engine.Result {
	return m.result
}

// Run plays a scene in a Bubble Tea program on the alternate screen.
// Cancelling ctx ends the run with engine.ReasonCancelled.
func Run(ctx context.Context, name string, e *engine.Engine, style lipgloss.Style, logger *log.Logger) (engine.Result, error) {
	model, err := NewModel(name, e, logger)
	if err != nil {
		return engine.Result{}, err
	}
	model = model.WithStyle(style)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return engine.Result{Reason: engine.ReasonCancelled, Ticks: e.Ticks()}, nil
	}
	if err != nil {
		return engine.Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.finished {
		return engine.Result{Reason: engine.ReasonCancelled, Ticks: e.Ticks()}, nil
	}
	return m.Result(), nil
}
