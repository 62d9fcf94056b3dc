package sudoku_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/games/sudoku"
	"github.com/mcoot/boardwalk/internal/grammar"
	"github.com/mcoot/boardwalk/internal/model"
	"github.com/mcoot/boardwalk/internal/players"
	"github.com/mcoot/boardwalk/internal/services/agent"
	"github.com/mcoot/boardwalk/internal/testutil"
)

// almostSolved is a valid grid missing its bottom-right 'b'
const almostSolved = "ABCDEF\nDEFABC\nBCAEFD\nEFDBCA\nCABFDE\nFDECA_"

type SudokuSuite struct {
	suite.Suite
	rules *sudoku.Rules
	board *board.Board
}

func TestSudokuSuite(t *testing.T) {
	suite.Run(t, new(SudokuSuite))
}

func (s *SudokuSuite) SetupTest() {
	s.rules = sudoku.New()
	b, err := sudoku.NewBoard("")
	s.Require().NoError(err)
	s.board = b
}

func (s *SudokuSuite) state() engine.State {
	return engine.State{Board: s.board, Round: 1, CurrentPlayer: sudoku.Player}
}

func (s *SudokuSuite) TestNewBoard_DefaultPuzzle() {
	g, err := s.board.At(model.Position{Row: 0, Col: 3})
	s.Require().NoError(err)
	s.Equal(model.Glyph('F'), g)
	s.True(s.board.IsBlank(model.Position{Row: 0, Col: 0}))
}

func (s *SudokuSuite) TestNewBoard_RejectsWrongShape() {
	_, err := sudoku.NewBoard("ABC\nDEF")
	s.ErrorIs(err, model.ErrLayoutMismatch)
}

func (s *SudokuSuite) TestValidateMove() {
	tests := []struct {
		move string
		want error
	}{
		{"a 0,0", nil},
		{"f 5,4", nil},
		{"a 0,3", model.ErrIllegalMove},
		{"A 0,0", model.ErrIllegalMove},
		{"g 0,0", model.ErrIllegalMove},
		{"0,0 0,1", model.ErrIllegalMove},
		{"a 6,0", model.ErrOutOfBounds},
		{"a0,0", model.ErrMalformedMove},
	}
	for _, tt := range tests {
		err := s.rules.ValidateMove(s.state(), grammar.Parse(tt.move))
		if tt.want == nil {
			s.NoError(err, tt.move)
		} else {
			s.ErrorIs(err, tt.want, tt.move)
		}
	}
}

func (s *SudokuSuite) TestLowercaseEntriesCanBeOverwritten() {
	s.Require().NoError(s.rules.PerformMove(s.state(), grammar.Parse("a 0,0")))

	s.NoError(s.rules.ValidateMove(s.state(), grammar.Parse("b 0,0")))
}

func (s *SudokuSuite) TestGameFinished() {
	s.False(s.rules.GameFinished(s.state()))

	s.board = board.MustNew(sudoku.Size, sudoku.Size, almostSolved)
	s.False(s.rules.GameFinished(s.state()))

	s.Require().NoError(s.rules.PerformMove(s.state(), grammar.Parse("b 5,5")))
	s.True(s.rules.GameFinished(s.state()))
	s.Equal(model.Win(sudoku.Player), s.rules.Winner(s.state()))
}

func (s *SudokuSuite) TestGameFinished_FullButWrong() {
	s.board = board.MustNew(sudoku.Size, sudoku.Size, almostSolved)

	s.Require().NoError(s.rules.PerformMove(s.state(), grammar.Parse("a 5,5")))

	s.Zero(s.board.Count(model.Blank))
	s.False(s.rules.GameFinished(s.state()))
}

func (s *SudokuSuite) TestLegalMovesOnlyOfferCandidates() {
	s.board = board.MustNew(sudoku.Size, sudoku.Size, almostSolved)

	moves := s.rules.LegalMoves(s.state())

	s.Equal([]string{"b 5,5"}, moves)
	s.Equal(sudoku.Player, s.rules.NextPlayer(s.state()))
}

func (s *SudokuSuite) TestLegalMovesIgnoreCurrentEntry() {
	s.board = board.MustNew(sudoku.Size, sudoku.Size, "ABCDEF\nDEFABC\nBCAEFD\nEFDBCA\nCABFDE\nFDECAb")

	s.Empty(s.rules.LegalMoves(s.state()))
}

func (s *SudokuSuite) TestFirstAgentSolves() {
	s.board = board.MustNew(sudoku.Size, sudoku.Size, "ABCDEF\nDEFABC\nBCAEFD\nEFDBCA\nCABFDE\nFDEC__")
	var out bytes.Buffer
	e, err := engine.New(engine.Config{
		Board:  s.board,
		Rules:  s.rules,
		Source: players.NewAgentSource(agent.FirstAgent{}, &out, testutil.NopLogger()),
	})
	s.Require().NoError(err)

	outcome, err := e.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(model.Win(sudoku.Player), outcome)
	s.Equal(2, e.Round())
	s.Contains(out.String(), "Player 0 plays a 5,4")
	s.Contains(out.String(), "Player 0 plays b 5,5")
}

func (s *SudokuSuite) TestEngineSolvesWithCorrection() {
	s.board = board.MustNew(sudoku.Size, sudoku.Size, almostSolved)
	e, err := engine.New(engine.Config{
		Board:  s.board,
		Rules:  s.rules,
		Source: players.NewScript("B 5,5", "a 5,5", "b 5,5"),
	})
	s.Require().NoError(err)

	outcome, err := e.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(model.Win(sudoku.Player), outcome)
	s.Equal(2, e.Round())
}
