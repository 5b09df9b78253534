package pipes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

// InputSource yields pending input without blocking.
// core.InputQueue implements it.
type InputSource interface {
	Poll() (core.Action, bool)
}

// ViewportQuery reports the current drawable extent.
// core.Screen implements it.
type ViewportQuery interface {
	Extent() core.Viewport
}

// Options wires a Driver to its collaborators. Input, Sink and Viewport are
// required; Rand defaults to a source seeded from the config (or the clock
// when the seed is 0) and Logger defaults to a discarding logger.
type Options struct {
	Input    InputSource
	Sink     RenderSink
	Viewport ViewportQuery
	Rand     Rand
	Logger   *log.Logger
}

// ErrMissingCollaborator is returned by NewDriver when a required option is nil.
var ErrMissingCollaborator = errors.New("pipes: missing collaborator")

// Stats summarises a run.
type Stats struct {
	Frames  int // Completed ticks
	Spawned int
	Retired int
	Clears  int
}

// Driver runs the screensaver one frame at a time: poll input, refill,
// advance, repeat at the configured frame rate.
type Driver struct {
	cfg      config.Config
	input    InputSource
	sink     RenderSink
	viewport ViewportQuery
	logger   *log.Logger
	manager  *Manager
	frames   int
	stopped  bool
}

// NewDriver validates cfg and builds a driver. Invalid configuration is
// rejected rather than clamped.
func NewDriver(cfg config.Config, opts Options) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipes: %w", err)
	}

	glyphs, err := registry.Lookup(string(cfg.Style))
	if err != nil {
		return nil, fmt.Errorf("pipes: %w", err)
	}

	switch {
	case opts.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingCollaborator)
	case opts.Sink == nil:
		return nil, fmt.Errorf("%w: sink", ErrMissingCollaborator)
	case opts.Viewport == nil:
		return nil, fmt.Errorf("%w: viewport", ErrMissingCollaborator)
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Driver{
		cfg:      cfg,
		input:    opts.Input,
		sink:     opts.Sink,
		viewport: opts.Viewport,
		logger:   logger,
		manager:  NewManager(glyphs, cfg.TurnChance, cfg.ClearThreshold, cfg.Pipes, rng),
	}

	// First pipes go in before the first tick.
	d.spawn(d.viewport.Extent())

	return d, nil
}

// Step runs one frame without sleeping. It returns false once the user has
// dismissed the screensaver; nothing is drawn on that frame or after it.
func (d *Driver) Step() bool {
	if d.stopped {
		return false
	}

	if action, ok := d.input.Poll(); ok {
		switch {
		case action == core.ActionQuit:
			d.stop("quit key")
			return false
		case d.cfg.ClearOnKeypress:
			d.manager.Clear(d.sink)
			d.logger.Debug("screen cleared", "reason", "keypress")
			return true
		default:
			d.stop("keypress")
			return false
		}
	}

	vp := d.viewport.Extent()
	if d.manager.HasEmpty() {
		d.spawn(vp)
	}

	res := d.manager.Tick(d.sink, vp)
	for _, p := range res.Retired {
		d.logger.Debug("pipe retired",
			"row", p.Current.Pos.Row,
			"col", p.Current.Pos.Col,
			"color", p.Color,
		)
	}

	d.frames++
	return true
}

// Run calls Step until the user quits or ctx is cancelled, sleeping
// Interval between frames.
func (d *Driver) Run(ctx context.Context) error {
	interval := d.Interval()
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		if !d.Step() {
			return nil
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Interval returns the pause between frames.
func (d *Driver) Interval() time.Duration {
	return time.Second / time.Duration(d.cfg.FrameRate)
}

// Stats returns counters for the run so far.
func (d *Driver) Stats() Stats {
	spawned, retired, clears := d.manager.Totals()
	return Stats{
		Frames:  d.frames,
		Spawned: spawned,
		Retired: retired,
		Clears:  clears,
	}
}

// Manager exposes the population for inspection.
func (d *Driver) Manager() *Manager {
	return d.manager
}

// Config returns the configuration the driver was built with.
func (d *Driver) Config() config.Config {
	return d.cfg
}

func (d *Driver) spawn(vp core.Viewport) {
	if _, cleared := d.manager.Spawn(d.sink, vp); cleared {
		d.logger.Debug("screen cleared", "reason", "threshold", "threshold", d.cfg.ClearThreshold)
	}
}

func (d *Driver) stop(reason string) {
	d.stopped = true
	d.logger.Debug("driver stopped", "reason", reason, "frames", d.frames)
}
