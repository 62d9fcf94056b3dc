// Package board holds the fixed-size glyph grid every game is played on.
package board

import (
	"fmt"
	"strings"

	"github.com/mcoot/boardwalk/internal/grammar"
	"github.com/mcoot/boardwalk/internal/model"
)

// Board is a height x width grid of glyphs. The shape never changes after
// construction and every cell always holds exactly one glyph.
type Board struct {
	height int
	width  int
	cells  [][]model.Glyph // Row-major: cells[row][col]
}

// New creates a board of the given shape with every cell blank, then applies
// the optional layout. A layout is height newline-separated rows of exactly
// width runes; anything else fails with model.ErrLayoutMismatch.
func New(height, width int, layout string) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", model.ErrInvalidShape, height, width)
	}

	cells := make([][]model.Glyph, height)
	for i := range cells {
		cells[i] = make([]model.Glyph, width)
		for j := range cells[i] {
			cells[i][j] = model.Blank
		}
	}

	b := &Board{
		height: height,
		width:  width,
		cells:  cells,
	}

	if layout == "" {
		return b, nil
	}

	rows := strings.Split(strings.TrimSuffix(layout, "\n"), "\n")
	if len(rows) != height {
		return nil, fmt.Errorf("%w: %d rows for a %dx%d board", model.ErrLayoutMismatch, len(rows), height, width)
	}

	for i, row := range rows {
		glyphs := []rune(row)
		if len(glyphs) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", model.ErrLayoutMismatch, i, len(glyphs), width)
		}
		for j, c := range glyphs {
			b.cells[i][j] = model.Glyph(c)
		}
	}

	return b, nil
}

// MustNew is like New but panics on error. Use it only for layouts fixed at
// compile time.
func MustNew(height, width int, layout string) *Board {
	b, err := New(height, width, layout)
	if err != nil {
		panic(err)
	}
	return b
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// InBounds returns true if the position is on the board
func (b *Board) InBounds(pos model.Position) bool {
	return pos.Row >= 0 && pos.Row < b.height && pos.Col >= 0 && pos.Col < b.width
}

// At returns the glyph at the given position
func (b *Board) At(pos model.Position) (model.Glyph, error) {
	if err := b.checkBounds(pos); err != nil {
		return 0, err
	}
	return b.cells[pos.Row][pos.Col], nil
}

// IsBlank returns true if the position is on the board and blank
func (b *Board) IsBlank(pos model.Position) bool {
	g, err := b.At(pos)
	return err == nil && g.IsBlank()
}

// PlacePiece applies a placement move string such as "X 0,2"
func (b *Board) PlacePiece(move string) error {
	m := grammar.Parse(move)
	if !m.IsPlacement() {
		return fmt.Errorf("%w: %q is not a placement", model.ErrMalformedMove, move)
	}
	return b.Place(m.Piece, m.At)
}

// MovePiece applies a movement move string such as "0,0 1,1"
func (b *Board) MovePiece(move string) error {
	m := grammar.Parse(move)
	if !m.IsMovement() {
		return fmt.Errorf("%w: %q is not a movement", model.ErrMalformedMove, move)
	}
	return b.Move(m.From, m.To)
}

// Place sets the glyph at a single position
func (b *Board) Place(piece model.Glyph, pos model.Position) error {
	if err := b.checkBounds(pos); err != nil {
		return err
	}
	b.cells[pos.Row][pos.Col] = piece
	return nil
}

// Move relocates the glyph at from to to and blanks from.
// Moving from a blank cell fails with model.ErrEmptySource.
func (b *Board) Move(from, to model.Position) error {
	if err := b.checkBounds(from); err != nil {
		return err
	}
	if err := b.checkBounds(to); err != nil {
		return err
	}

	piece := b.cells[from.Row][from.Col]
	if piece.IsBlank() {
		return fmt.Errorf("%w: (%d,%d)", model.ErrEmptySource, from.Row, from.Col)
	}

	b.cells[from.Row][from.Col] = model.Blank
	b.cells[to.Row][to.Col] = piece
	return nil
}

// Row returns a copy of the glyphs in the given row
func (b *Board) Row(row int) []model.Glyph {
	if row < 0 || row >= b.height {
		return nil
	}
	result := make([]model.Glyph, b.width)
	copy(result, b.cells[row])
	return result
}

// Col returns a copy of the glyphs in the given column
func (b *Board) Col(col int) []model.Glyph {
	if col < 0 || col >= b.width {
		return nil
	}
	result := make([]model.Glyph, b.height)
	for row := 0; row < b.height; row++ {
		result[row] = b.cells[row][col]
	}
	return result
}

// Count returns how many cells hold the given glyph
func (b *Board) Count(glyph model.Glyph) int {
	count := 0
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row][col] == glyph {
				count++
			}
		}
	}
	return count
}

// Layout returns a deep copy of the grid
func (b *Board) Layout() [][]model.Glyph {
	result := make([][]model.Glyph, b.height)
	for row := range result {
		result[row] = b.Row(row)
	}
	return result
}

func (b *Board) checkBounds(pos model.Position) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("%w: (%d,%d) on a %dx%d board", model.ErrOutOfBounds, pos.Row, pos.Col, b.height, b.width)
	}
	return nil
}
