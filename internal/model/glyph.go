package model

// Glyph is the single character stored in a board cell
type Glyph rune

const (
	// Blank marks an empty cell
	Blank Glyph = '_'
	// Null is a separator glyph used by layouts that need visual gaps
	Null Glyph = ' '
)

// IsBlank returns true if the glyph is the blank sentinel
func (g Glyph) IsBlank() bool {
	return g == Blank
}

func (g Glyph) String() string {
	return string(rune(g))
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}
