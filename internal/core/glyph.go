package core

// GlyphSet is one line-drawing style: six line glyphs plus a sentinel that
// marks a direction pair no pipe should ever produce.
type GlyphSet struct {
	Horizontal  rune // ─
	Vertical    rune // │
	TopLeft     rune // ┌
	TopRight    rune // ┐
	BottomLeft  rune // └
	BottomRight rune // ┘
	Error       rune
}

// Lines returns the six line glyphs of the set.
func (g GlyphSet) Lines() []rune {
	return []rune{g.Horizontal, g.Vertical, g.TopLeft, g.TopRight, g.BottomLeft, g.BottomRight}
}

// Preview lists the six line glyphs separated by spaces, for listings.
func (g GlyphSet) Preview() string {
	lines := g.Lines()
	out := make([]rune, 0, 2*len(lines))
	for i, r := range lines {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
