// Package pipes is the screensaver engine: the glyph table, the pipe state
// machine, the population manager and the tick driver. It draws through the
// RenderSink interface and never touches a terminal.
package pipes

import (
	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

// errorGlyph marks a direction pair that should never be drawn.
const errorGlyph = '◆'

var (
	// NormalGlyphs draws thin single lines.
	NormalGlyphs = core.GlyphSet{
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Error: errorGlyph,
	}

	// BoldGlyphs draws heavy single lines.
	BoldGlyphs = core.GlyphSet{
		Horizontal: '━', Vertical: '┃',
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		Error: errorGlyph,
	}

	// DoubleGlyphs draws double lines.
	DoubleGlyphs = core.GlyphSet{
		Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		Error: errorGlyph,
	}
)

func init() {
	registry.Register(string(config.StyleNormal), "Normal lines", NormalGlyphs)
	registry.Register(string(config.StyleBold), "Bold lines", BoldGlyphs)
	registry.Register(string(config.StyleDouble), "Double lines", DoubleGlyphs)
}
