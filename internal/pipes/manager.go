package pipes

import (
	"github.com/vovakirdan/tui-pipes/internal/core"
)

// RenderSink receives the engine's drawing. core.Screen implements it.
type RenderSink interface {
	WriteGlyph(p core.Position, r rune, c core.Color)
	ClearAll()
}

// SlotState is whether a population slot holds a pipe in flight.
type SlotState int

const (
	SlotEmpty SlotState = iota
	SlotActive
)

// slot is one place in the population. pipe is meaningful only when Active.
type slot struct {
	state SlotState
	pipe  Pipe
}

// TickResult reports what one Tick did.
type TickResult struct {
	Drawn   int    // Glyphs written to the sink
	Retired []Pipe // Pipes that left the viewport this tick
}

// Manager owns the live pipes. It refills empty slots, advances active
// ones, retires pipes that leave the viewport and wipes the screen once more
// than clearThreshold pipes have been spawned since the last wipe.
type Manager struct {
	glyphs         core.GlyphSet
	turnChance     int
	clearThreshold int
	rng            Rand
	slots          []slot
	spawnCount     int // Spawns since the last clear

	// Lifetime totals
	spawned int
	retired int
	clears  int
}

// NewManager creates a manager with n empty slots.
func NewManager(glyphs core.GlyphSet, turnChance, clearThreshold, n int, rng Rand) *Manager {
	return &Manager{
		glyphs:         glyphs,
		turnChance:     turnChance,
		clearThreshold: clearThreshold,
		rng:            rng,
		slots:          make([]slot, n),
	}
}

// Spawn fills every empty slot with a new pipe. Each spawn bumps the spawn
// counter; when the counter passes the threshold the sink is cleared and the
// counter reset before the pipe is placed. Returns how many pipes were
// spawned and whether a clear fired.
func (m *Manager) Spawn(sink RenderSink, vp core.Viewport) (spawned int, cleared bool) {
	for i := range m.slots {
		if m.slots[i].state == SlotActive {
			continue
		}

		m.spawnCount++
		if m.spawnCount > m.clearThreshold {
			sink.ClearAll()
			m.spawnCount = 0
			m.clears++
			cleared = true
		}

		m.slots[i] = slot{state: SlotActive, pipe: Spawn(m.rng, vp)}
		m.spawned++
		spawned++
	}
	return spawned, cleared
}

// Tick advances every active pipe by one cell, drawing the glyph for the
// cell it leaves. A pipe whose new position is outside vp is retired and its
// slot emptied.
func (m *Manager) Tick(sink RenderSink, vp core.Viewport) TickResult {
	var res TickResult
	for i := range m.slots {
		s := &m.slots[i]
		if s.state != SlotActive {
			continue
		}

		at, glyph := s.pipe.Advance(m.glyphs, m.turnChance, m.rng)
		sink.WriteGlyph(at, glyph, s.pipe.Color)
		res.Drawn++

		if vp.OutOfBounds(s.pipe.Current.Pos) {
			res.Retired = append(res.Retired, s.pipe)
			*s = slot{state: SlotEmpty}
			m.retired++
		}
	}
	return res
}

// Clear wipes the sink, resets the spawn counter and discards every pipe.
func (m *Manager) Clear(sink RenderSink) {
	sink.ClearAll()
	m.spawnCount = 0
	m.clears++
	for i := range m.slots {
		m.slots[i] = slot{state: SlotEmpty}
	}
}

// HasEmpty reports whether any slot is waiting for a pipe.
func (m *Manager) HasEmpty() bool {
	for _, s := range m.slots {
		if s.state == SlotEmpty {
			return true
		}
	}
	return false
}

// Active returns the number of pipes in flight.
func (m *Manager) Active() int {
	n := 0
	for _, s := range m.slots {
		if s.state == SlotActive {
			n++
		}
	}
	return n
}

// Pipes returns copies of the pipes in flight.
func (m *Manager) Pipes() []Pipe {
	out := make([]Pipe, 0, len(m.slots))
	for _, s := range m.slots {
		if s.state == SlotActive {
			out = append(out, s.pipe)
		}
	}
	return out
}

// State returns the state of slot i.
func (m *Manager) State(i int) SlotState {
	return m.slots[i].state
}

// SpawnCount returns spawns since the last clear.
func (m *Manager) SpawnCount() int {
	return m.spawnCount
}

// Totals returns lifetime spawn, retirement and clear counts.
func (m *Manager) Totals() (spawned, retired, clears int) {
	return m.spawned, m.retired, m.clears
}
