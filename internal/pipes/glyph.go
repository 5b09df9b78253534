package pipes

import "github.com/vovakirdan/tui-pipes/internal/core"

// Glyph returns the character that joins a pipe entering a cell heading prev
// and leaving it heading cur. A reversal cannot be drawn and yields the
// set's Error sentinel.
func Glyph(set core.GlyphSet, prev, cur core.Direction) rune {
	switch {
	case (prev == core.DirLeft && cur == core.DirLeft) || (prev == core.DirRight && cur == core.DirRight):
		return set.Horizontal
	case (prev == core.DirUp && cur == core.DirUp) || (prev == core.DirDown && cur == core.DirDown):
		return set.Vertical
	case (prev == core.DirUp && cur == core.DirRight) || (prev == core.DirLeft && cur == core.DirDown):
		return set.TopLeft
	case (prev == core.DirUp && cur == core.DirLeft) || (prev == core.DirRight && cur == core.DirDown):
		return set.TopRight
	case (prev == core.DirDown && cur == core.DirRight) || (prev == core.DirLeft && cur == core.DirUp):
		return set.BottomLeft
	case (prev == core.DirDown && cur == core.DirLeft) || (prev == core.DirRight && cur == core.DirUp):
		return set.BottomRight
	default:
		return set.Error
	}
}
