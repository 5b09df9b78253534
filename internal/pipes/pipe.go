package pipes

import (
	"github.com/vovakirdan/tui-pipes/internal/core"
)

// Rand is the randomness the engine needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Edges a pipe can enter from, in the order Spawn draws them.
const (
	edgeTop = iota
	edgeLeft
	edgeBottom
	edgeRight
)

// Pipe is a single moving line. Previous is always Current as it was one
// tick earlier, or equal to Current before the first move.
type Pipe struct {
	Current  core.Segment
	Previous core.Segment
	Color    core.Color
}

// Spawn places a new pipe on a random edge of vp, heading inward, in a
// random palette color. Edge coordinates range over [0, Rows] and
// [0, Cols] inclusive.
func Spawn(rng Rand, vp core.Viewport) Pipe {
	rows := max(vp.Rows, 0)
	cols := max(vp.Cols, 0)

	var seg core.Segment
	switch rng.Intn(4) {
	case edgeTop:
		seg = core.Segment{Pos: core.Position{Row: 0, Col: rng.Intn(cols + 1)}, Dir: core.DirDown}
	case edgeLeft:
		seg = core.Segment{Pos: core.Position{Row: rng.Intn(rows + 1), Col: 0}, Dir: core.DirRight}
	case edgeBottom:
		seg = core.Segment{Pos: core.Position{Row: rows, Col: rng.Intn(cols + 1)}, Dir: core.DirUp}
	default:
		seg = core.Segment{Pos: core.Position{Row: rng.Intn(rows + 1), Col: cols}, Dir: core.DirLeft}
	}

	return Pipe{
		Current:  seg,
		Previous: seg,
		Color:    core.Palette[rng.Intn(len(core.Palette))],
	}
}

// Advance moves the pipe one cell and returns the cell it left together
// with the glyph to draw there. With probability turnChance percent the new
// heading is turned 90 degrees.
func (p *Pipe) Advance(set core.GlyphSet, turnChance int, rng Rand) (core.Position, rune) {
	at := p.Current.Pos
	glyph := Glyph(set, p.Previous.Dir, p.Current.Dir)

	p.Previous = p.Current
	p.Current.Pos = at.Step(p.Current.Dir)

	if rng.Intn(100) < turnChance {
		p.Current.Dir = RandomDirection(rng, p.Current.Dir)
	}

	return at, glyph
}

// RandomDirection picks one of the two headings perpendicular to d.
func RandomDirection(rng Rand, d core.Direction) core.Direction {
	ccw, cw := d.Perpendiculars()
	if rng.Intn(2) == 1 {
		return cw
	}
	return ccw
}
