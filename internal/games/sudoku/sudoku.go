// Package sudoku is a 6x6 sudoku played with letters. Uppercase letters are
// fixed clues; the player fills the rest with lowercase a-f.
package sudoku

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/grammar"
	"github.com/mcoot/boardwalk/internal/model"
)

// Name is the registry name of the game
const Name = "sudoku"

const (
	// Size is the board dimension
	Size      = 6
	boxHeight = 2
	boxWidth  = 3
	letters   = "abcdef"
)

// Player is the only player
const Player model.PlayerID = 0

// DefaultLayout is the built-in puzzle
const DefaultLayout = `___F__
DF__EC
ABC___
____CA
BE__AD
CADE_F`

// Rules implements engine.RuleSet for letter sudoku
type Rules struct{}

// New creates the rule set
func New() *Rules {
	return &Rules{}
}

// NewBoard builds a 6x6 board from layout, or the default puzzle if layout is empty
func NewBoard(layout string) (*board.Board, error) {
	if layout == "" {
		layout = DefaultLayout
	}
	b, err := board.New(Size, Size, layout)
	if err != nil {
		return nil, fmt.Errorf("sudoku layout: %w", err)
	}
	return b, nil
}

// IsClue reports whether the glyph is a fixed clue
func IsClue(g model.Glyph) bool {
	return unicode.IsUpper(rune(g)) && strings.ContainsRune(strings.ToUpper(letters), rune(g))
}

// ValidateMove accepts a lowercase letter on any non-clue cell
func (r *Rules) ValidateMove(s engine.State, m model.Move) error {
	if err := engine.DefaultValidate(s.Board, m); err != nil {
		return err
	}
	if !m.IsPlacement() {
		return fmt.Errorf("%w: letters are placed, not moved", model.ErrIllegalMove)
	}
	current, err := s.Board.At(m.At)
	if err != nil {
		return err
	}
	if IsClue(current) {
		return fmt.Errorf("%w: (%d,%d) is a fixed clue", model.ErrIllegalMove, m.At.Row, m.At.Col)
	}
	if !strings.ContainsRune(letters, rune(m.Piece)) {
		return fmt.Errorf("%w: place one of %s", model.ErrIllegalMove, letters)
	}
	return nil
}

// PerformMove writes the letter
func (r *Rules) PerformMove(s engine.State, m model.Move) error {
	return engine.DefaultPerform(s.Board, m)
}

// GameFinished returns true once the grid is full and every row, column and
// box holds each letter exactly once
func (r *Rules) GameFinished(s engine.State) bool {
	b := s.Board
	if b.Count(model.Blank) > 0 {
		return false
	}
	for i := 0; i < Size; i++ {
		if !complete(b.Row(i)) || !complete(b.Col(i)) {
			return false
		}
	}
	for top := 0; top < Size; top += boxHeight {
		for left := 0; left < Size; left += boxWidth {
			if !complete(box(b, top, left)) {
				return false
			}
		}
	}
	return true
}

// Winner is always the single player; the game only ends when solved
func (r *Rules) Winner(s engine.State) model.Outcome {
	return model.Win(Player)
}

// NextPlayer keeps the single player
func (r *Rules) NextPlayer(s engine.State) model.PlayerID {
	return Player
}

// LegalMoves lists, for each non-clue cell, the letters not already used
// elsewhere in its row, column or box
func (r *Rules) LegalMoves(s engine.State) []string {
	var moves []string
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := model.Position{Row: row, Col: col}
			current, _ := s.Board.At(pos)
			if IsClue(current) {
				continue
			}
			used := usedAround(s.Board, pos)
			for _, l := range letters {
				if model.Glyph(l) != current && !used[l] {
					moves = append(moves, grammar.Placement(model.Glyph(l), pos))
				}
			}
		}
	}
	return moves
}

// usedAround collects the lowercased letters sharing a row, column or box
// with pos, not counting pos itself
func usedAround(b *board.Board, pos model.Position) map[rune]bool {
	used := make(map[rune]bool, len(letters))
	mark := func(p model.Position) {
		if p == pos {
			return
		}
		if g, err := b.At(p); err == nil {
			used[unicode.ToLower(rune(g))] = true
		}
	}
	for i := 0; i < Size; i++ {
		mark(model.Position{Row: pos.Row, Col: i})
		mark(model.Position{Row: i, Col: pos.Col})
	}
	top, left := pos.Row-pos.Row%boxHeight, pos.Col-pos.Col%boxWidth
	for row := top; row < top+boxHeight; row++ {
		for col := left; col < left+boxWidth; col++ {
			mark(model.Position{Row: row, Col: col})
		}
	}
	return used
}

func box(b *board.Board, top, left int) []model.Glyph {
	cells := make([]model.Glyph, 0, boxHeight*boxWidth)
	for row := top; row < top+boxHeight; row++ {
		for col := left; col < left+boxWidth; col++ {
			g, _ := b.At(model.Position{Row: row, Col: col})
			cells = append(cells, g)
		}
	}
	return cells
}

// complete reports whether cells hold each letter once, ignoring case
func complete(cells []model.Glyph) bool {
	seen := make(map[rune]bool, len(cells))
	for _, g := range cells {
		l := unicode.ToLower(rune(g))
		if !strings.ContainsRune(letters, l) || seen[l] {
			return false
		}
		seen[l] = true
	}
	return len(seen) == len(letters)
}

var (
	_ engine.RuleSet    = (*Rules)(nil)
	_ engine.MoveLister = (*Rules)(nil)
)
