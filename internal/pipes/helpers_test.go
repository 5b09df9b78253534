package pipes

import (
	"github.com/vovakirdan/tui-pipes/internal/core"
)

// scriptedRand returns queued values (mod n) and then zeros.
type scriptedRand struct {
	vals []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

type write struct {
	pos   core.Position
	glyph rune
	color core.Color
}

// recordingSink remembers every write and clear.
type recordingSink struct {
	writes []write
	clears int
}

func (s *recordingSink) WriteGlyph(p core.Position, r rune, c core.Color) {
	s.writes = append(s.writes, write{pos: p, glyph: r, color: c})
}

func (s *recordingSink) ClearAll() {
	s.clears++
}

// fixedViewport always reports the same extent.
type fixedViewport core.Viewport

func (v fixedViewport) Extent() core.Viewport {
	return core.Viewport(v)
}

// scriptedInput hands out one queued poll result per call.
type scriptedInput struct {
	polls   []core.Action // ActionNone means nothing pending
	onPoll  func(n int)
	pollCnt int
}

func (in *scriptedInput) Poll() (core.Action, bool) {
	in.pollCnt++
	if in.onPoll != nil {
		in.onPoll(in.pollCnt)
	}
	if len(in.polls) == 0 {
		return core.ActionNone, false
	}
	a := in.polls[0]
	in.polls = in.polls[1:]
	return a, a != core.ActionNone
}
