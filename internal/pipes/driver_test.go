package pipes

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.FrameRate = 1000
	return cfg
}

func newTestDriver(t *testing.T, cfg config.Config, in InputSource, sink RenderSink) *Driver {
	t.Helper()
	d, err := NewDriver(cfg, Options{
		Input:    in,
		Sink:     sink,
		Viewport: fixedViewport{Rows: 24, Cols: 80},
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
	})
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}
	return d
}

func TestNewDriverRejectsInvalidConfig(t *testing.T) {
	opts := Options{
		Input:    &scriptedInput{},
		Sink:     &recordingSink{},
		Viewport: fixedViewport{Rows: 24, Cols: 80},
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"zero frame rate", func(c *config.Config) { c.FrameRate = 0 }, config.ErrInvalidFrameRate},
		{"turn chance out of range", func(c *config.Config) { c.TurnChance = 150 }, config.ErrInvalidTurnChance},
		{"unknown style", func(c *config.Config) { c.Style = "wavy" }, config.ErrUnknownStyle},
		{"negative threshold", func(c *config.Config) { c.ClearThreshold = -5 }, config.ErrInvalidClearThreshold},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			_, err := NewDriver(cfg, opts)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewDriver() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestNewDriverRequiresCollaborators(t *testing.T) {
	_, err := NewDriver(testConfig(), Options{Sink: &recordingSink{}, Viewport: fixedViewport{}})
	if !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("missing input: error = %v, expected ErrMissingCollaborator", err)
	}
	_, err = NewDriver(testConfig(), Options{Input: &scriptedInput{}, Viewport: fixedViewport{}})
	if !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("missing sink: error = %v, expected ErrMissingCollaborator", err)
	}
}

func TestDriverSpawnsBeforeFirstTick(t *testing.T) {
	sink := &recordingSink{}
	d := newTestDriver(t, testConfig(), &scriptedInput{}, sink)

	if d.Manager().Active() != 1 {
		t.Fatalf("expected one pipe before the first tick, got %d", d.Manager().Active())
	}
	if len(sink.writes) != 0 {
		t.Error("nothing should be drawn before the first tick")
	}

	if !d.Step() {
		t.Fatal("Step() should continue without input")
	}
	if len(sink.writes) != 1 {
		t.Errorf("first tick should draw one glyph, drew %d", len(sink.writes))
	}
}

func TestDriverQuitStopsRendering(t *testing.T) {
	sink := &recordingSink{}
	writesAtQuit := -1
	in := &scriptedInput{
		polls: []core.Action{core.ActionNone, core.ActionNone, core.ActionQuit},
	}
	in.onPoll = func(n int) {
		if n == 3 {
			writesAtQuit = len(sink.writes)
		}
	}
	d := newTestDriver(t, testConfig(), in, sink)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil after quit", err)
	}

	if writesAtQuit != 2 {
		t.Fatalf("expected 2 writes before the quit poll, got %d", writesAtQuit)
	}
	if len(sink.writes) != writesAtQuit {
		t.Errorf("rendering continued after quit: %d writes, expected %d", len(sink.writes), writesAtQuit)
	}
	if d.Step() {
		t.Error("Step() after quit should keep reporting stopped")
	}
	if len(sink.writes) != writesAtQuit {
		t.Error("Step() after quit should not draw")
	}
	if d.Stats().Frames != 2 {
		t.Errorf("Frames = %d, expected 2", d.Stats().Frames)
	}
}

func TestDriverKeyDismissesWithoutClearOnKeypress(t *testing.T) {
	sink := &recordingSink{}
	in := &scriptedInput{polls: []core.Action{core.ActionKey}}
	d := newTestDriver(t, testConfig(), in, sink)

	if d.Step() {
		t.Error("any key should dismiss when clear-on-keypress is off")
	}
	if len(sink.writes) != 0 || sink.clears != 0 {
		t.Error("dismissal should not draw or clear")
	}
}

func TestDriverKeyClearsWithClearOnKeypress(t *testing.T) {
	cfg := testConfig()
	cfg.ClearOnKeypress = true
	sink := &recordingSink{}
	in := &scriptedInput{polls: []core.Action{core.ActionNone, core.ActionKey, core.ActionNone}}
	d := newTestDriver(t, cfg, in, sink)

	d.Step() // draws one glyph
	if !d.Step() {
		t.Fatal("a non-quit key should not stop the driver")
	}
	if sink.clears != 1 {
		t.Fatalf("expected one clear, got %d", sink.clears)
	}
	if len(sink.writes) != 1 {
		t.Errorf("clear tick should not advance, writes = %d", len(sink.writes))
	}
	if d.Manager().Active() != 0 || d.Manager().SpawnCount() != 0 {
		t.Error("clear should discard the pipe and reset the spawn count")
	}

	d.Step()
	if d.Manager().Active() != 1 || d.Manager().SpawnCount() != 1 {
		t.Errorf("next tick should respawn: active %d, spawn_count %d",
			d.Manager().Active(), d.Manager().SpawnCount())
	}
	if d.Stats().Clears != 1 {
		t.Errorf("Stats().Clears = %d, expected 1", d.Stats().Clears)
	}
}

func TestDriverRunHonoursContext(t *testing.T) {
	d := newTestDriver(t, testConfig(), &scriptedInput{}, &recordingSink{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := d.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, expected deadline exceeded", err)
	}
	if d.Stats().Frames == 0 {
		t.Error("Run() should have completed some frames")
	}
}

func TestDriverInterval(t *testing.T) {
	cfg := testConfig()
	cfg.FrameRate = 60
	d := newTestDriver(t, cfg, &scriptedInput{}, &recordingSink{})

	if got := d.Interval(); got != time.Second/60 {
		t.Errorf("Interval() = %v, expected %v", got, time.Second/60)
	}
}

func TestDriverDeterministicWithSeed(t *testing.T) {
	run := func() []write {
		sink := &recordingSink{}
		cfg := testConfig()
		cfg.Seed = 12345
		cfg.TurnChance = 20
		d, err := NewDriver(cfg, Options{
			Input:    &scriptedInput{},
			Sink:     sink,
			Viewport: fixedViewport{Rows: 24, Cols: 80},
		})
		if err != nil {
			t.Fatalf("NewDriver() failed: %v", err)
		}
		for i := 0; i < 300; i++ {
			d.Step()
		}
		return sink.writes
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("write counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("write %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
