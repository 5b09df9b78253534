package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/pipes"
)

// Model is the Bubble Tea model that hosts the screensaver.
// Keys are queued as they arrive and consumed by the driver at the start of
// the next frame, so all engine work happens on tick messages.
type Model struct {
	driver   *pipes.Driver
	screen   *core.Screen
	input    *core.InputQueue
	keys     *KeyMapper
	logger   *log.Logger
	cfg      config.Config
	started  time.Time
	shotDir  string
	quitting bool
}

// Options configures a Model beyond the screensaver config.
type Options struct {
	Width, Height int
	Logger        *log.Logger
	Rand          pipes.Rand // nil seeds from the config
	ScreenshotDir string     // defaults to ~/.pipes/screenshots
}

// NewModel creates a new Bubble Tea model. Invalid configuration is reported
// here, before the terminal is taken over.
func NewModel(cfg config.Config, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Width, opts.Height)
	input := core.NewInputQueue()

	driver, err := pipes.NewDriver(cfg, pipes.Options{
		Input:    input,
		Sink:     screen,
		Viewport: screen,
		Rand:     opts.Rand,
		Logger:   logger,
	})
	if err != nil {
		return Model{}, err
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".pipes", "screenshots")
	}

	return Model{
		driver:  driver,
		screen:  screen,
		input:   input,
		keys:    NewKeyMapper(),
		logger:  logger,
		cfg:     cfg,
		started: time.Now(),
		shotDir: shotDir,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionScreenshot {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.input.Push(action)
	return m, nil
}

// handleResize processes window resize events. Pipes keep flying; the
// driver reads the new extent on its next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.driver.Step() {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.cfg.FrameRate)
}

// saveScreenshot writes the current trails to a text file.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("pipes_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Stats returns the driver's counters.
func (m Model) Stats() pipes.Stats {
	return m.driver.Stats()
}

// Elapsed returns how long the model has been running.
func (m Model) Elapsed() time.Duration {
	return time.Since(m.started)
}

// Result summarises a finished run.
type Result struct {
	Stats    pipes.Stats
	Duration time.Duration
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(cfg config.Config, opts Options) (Result, error) {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	final, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Stats: final.Stats(), Duration: final.Elapsed()}, nil
}
