// Package tictactoe is the classic 3x3 three-in-a-row game
package tictactoe

import (
	"fmt"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/grammar"
	"github.com/mcoot/boardwalk/internal/model"
)

// Name is the registry name of the game
const Name = "tictactoe"

// Size is the board dimension
const Size = 3

// Players
const (
	X model.PlayerID = 0
	O model.PlayerID = 1
)

var pieces = map[model.PlayerID]model.Glyph{X: 'X', O: 'O'}

// lines lists every row, column and diagonal
var lines = [][Size]model.Position{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Rules implements engine.RuleSet for tic-tac-toe
type Rules struct{}

// New creates the rule set
func New() *Rules {
	return &Rules{}
}

// NewBoard creates an empty 3x3 board
func NewBoard() *board.Board {
	return board.MustNew(Size, Size, "")
}

// Piece returns the glyph a player places
func Piece(p model.PlayerID) model.Glyph {
	return pieces[p]
}

// ValidateMove accepts the current player's own piece on a blank cell
func (r *Rules) ValidateMove(s engine.State, m model.Move) error {
	if err := engine.DefaultValidate(s.Board, m); err != nil {
		return err
	}
	if !m.IsPlacement() {
		return fmt.Errorf("%w: pieces are placed, not moved", model.ErrIllegalMove)
	}
	if m.Piece != Piece(s.CurrentPlayer) {
		return fmt.Errorf("%w: player %d plays %s", model.ErrIllegalMove, s.CurrentPlayer, Piece(s.CurrentPlayer))
	}
	if !s.Board.IsBlank(m.At) {
		return fmt.Errorf("%w: (%d,%d) is taken", model.ErrIllegalMove, m.At.Row, m.At.Col)
	}
	return nil
}

// PerformMove places the piece
func (r *Rules) PerformMove(s engine.State, m model.Move) error {
	return engine.DefaultPerform(s.Board, m)
}

// GameFinished returns true once a line is complete or the board is full
func (r *Rules) GameFinished(s engine.State) bool {
	if _, ok := lineOwner(s.Board); ok {
		return true
	}
	return s.Board.Count(model.Blank) == 0
}

// Winner returns the owner of the completed line, or a tie
func (r *Rules) Winner(s engine.State) model.Outcome {
	glyph, ok := lineOwner(s.Board)
	if !ok {
		return model.Tie()
	}
	for p, piece := range pieces {
		if piece == glyph {
			return model.Win(p)
		}
	}
	return model.Tie()
}

// NextPlayer alternates between X and O
func (r *Rules) NextPlayer(s engine.State) model.PlayerID {
	if s.CurrentPlayer == X {
		return O
	}
	return X
}

// LegalMoves lists the current player's piece on every blank cell
func (r *Rules) LegalMoves(s engine.State) []string {
	var moves []string
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if s.Board.IsBlank(pos) {
				moves = append(moves, grammar.Placement(Piece(s.CurrentPlayer), pos))
			}
		}
	}
	return moves
}

func lineOwner(b *board.Board) (model.Glyph, bool) {
	for _, line := range lines {
		first, _ := b.At(line[0])
		if first.IsBlank() {
			continue
		}
		complete := true
		for _, pos := range line[1:] {
			if g, _ := b.At(pos); g != first {
				complete = false
				break
			}
		}
		if complete {
			return first, true
		}
	}
	return 0, false
}

var (
	_ engine.RuleSet    = (*Rules)(nil)
	_ engine.MoveLister = (*Rules)(nil)
)
