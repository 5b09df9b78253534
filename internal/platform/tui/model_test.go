package tui

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
)

func newTestModel(t *testing.T, mutate func(*config.Config)) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewModel(cfg, Options{
		Width:         40,
		Height:        12,
		Rand:          rand.New(rand.NewSource(cfg.Seed)),
		ScreenshotDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.FrameRate = 0
	if _, err := NewModel(cfg, Options{Width: 10, Height: 10}); err == nil {
		t.Error("NewModel() should reject a zero frame rate")
	}
}

func TestModelTicksDraw(t *testing.T) {
	m := newTestModel(t, nil)

	for i := 0; i < 20; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			t.Fatalf("tick %d should schedule the next tick", i)
		}
	}

	if m.Stats().Frames != 20 {
		t.Errorf("Frames = %d, expected 20", m.Stats().Frames)
	}
	if strings.TrimSpace(m.screen.String()) == "" {
		t.Error("screen should contain pipe glyphs after ticking")
	}
	if m.View() == "" {
		t.Error("View() should render while running")
	}
}

func TestModelQuitKeyStopsOnNextTick(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t, nil)
			m, _ = update(t, m, TickMsg{})

			m, cmd := update(t, m, msg)
			if cmd != nil {
				t.Error("key handling should only queue input")
			}

			before := m.screen.String()
			m, cmd = update(t, m, TickMsg{})
			if !isQuit(cmd) {
				t.Fatal("tick after quit key should quit")
			}
			if m.screen.String() != before {
				t.Error("nothing should be drawn on the quit tick")
			}
			if m.View() != "" {
				t.Error("View() should be empty once quitting")
			}
		})
	}
}

func TestModelAnyKeyDismisses(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, keyRunes("x"))
	_, cmd := update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Error("any key should dismiss when clear-on-keypress is off")
	}
}

func TestModelClearOnKeypress(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.ClearOnKeypress = true })
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, keyRunes("x"))
	m, cmd := update(t, m, TickMsg{})
	if isQuit(cmd) {
		t.Fatal("a non-quit key should not quit with clear-on-keypress")
	}
	if strings.TrimSpace(m.screen.String()) != "" {
		t.Error("screen should be blank after a clear tick")
	}
	if m.Stats().Clears != 1 {
		t.Errorf("Clears = %d, expected 1", m.Stats().Clears)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if vp := m.screen.Extent(); vp != (core.Viewport{Rows: 30, Cols: 100}) {
		t.Errorf("Extent() after resize = %+v, expected 30x100", vp)
	}
	m, _ = update(t, m, TickMsg{})
	if m.Stats().Frames != 1 {
		t.Error("model should keep ticking after a resize")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not emit a command")
	}
	if m.input.Len() != 0 {
		t.Error("screenshot key should not reach the driver")
	}

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "pipes_") {
		t.Fatalf("expected one pipes_*.txt screenshot, got %v", entries)
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{keyRunes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{keyRunes("a"), core.ActionKey},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionKey},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionKey},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestRenderScreenPlainWhenUncolored(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.Set(0, 0, 'a', core.ColorDefault)

	if got := RenderScreen(s); got != "a  \n   " {
		t.Errorf("RenderScreen() = %q, expected plain text", got)
	}

	s.Set(1, 1, '│', core.ColorRed)
	if got := RenderScreen(s); !strings.Contains(got, "│") {
		t.Errorf("RenderScreen() lost a colored glyph: %q", got)
	}
}
