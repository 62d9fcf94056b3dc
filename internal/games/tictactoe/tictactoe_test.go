package tictactoe_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/dependencies/random"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/games/tictactoe"
	"github.com/mcoot/boardwalk/internal/grammar"
	"github.com/mcoot/boardwalk/internal/model"
	"github.com/mcoot/boardwalk/internal/players"
	"github.com/mcoot/boardwalk/internal/services/agent"
	"github.com/mcoot/boardwalk/internal/testutil"
)

type RulesSuite struct {
	suite.Suite
	rules *tictactoe.Rules
	board *board.Board
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesSuite))
}

func (s *RulesSuite) SetupTest() {
	s.rules = tictactoe.New()
	s.board = tictactoe.NewBoard()
}

func (s *RulesSuite) state(player model.PlayerID) engine.State {
	return engine.State{Board: s.board, Round: 1, CurrentPlayer: player}
}

func (s *RulesSuite) play(player model.PlayerID, move string) {
	m := grammar.Parse(move)
	s.Require().NoError(s.rules.ValidateMove(s.state(player), m), move)
	s.Require().NoError(s.rules.PerformMove(s.state(player), m), move)
}

// ValidateMove tests

func (s *RulesSuite) TestValidateMove_AcceptsOwnPieceOnBlank() {
	s.NoError(s.rules.ValidateMove(s.state(tictactoe.X), grammar.Parse("X 1,1")))
	s.NoError(s.rules.ValidateMove(s.state(tictactoe.O), grammar.Parse("O 2,0")))
}

func (s *RulesSuite) TestValidateMove_Rejections() {
	s.play(tictactoe.X, "X 0,0")

	tests := map[string]error{
		"A 5,5":   model.ErrOutOfBounds,
		"hello":   model.ErrMalformedMove,
		"0,0 1,1": model.ErrIllegalMove,
		"O 1,1":   model.ErrIllegalMove,
		"X 0,0":   model.ErrIllegalMove,
	}
	for move, want := range tests {
		s.ErrorIs(s.rules.ValidateMove(s.state(tictactoe.X), grammar.Parse(move)), want, move)
	}
}

// GameFinished / Winner tests

func (s *RulesSuite) TestTopRowWinsForX() {
	s.play(tictactoe.X, "X 0,0")
	s.play(tictactoe.O, "O 1,1")
	s.play(tictactoe.X, "X 0,1")
	s.play(tictactoe.O, "O 2,2")
	s.False(s.rules.GameFinished(s.state(tictactoe.O)))

	s.play(tictactoe.X, "X 0,2")

	s.True(s.rules.GameFinished(s.state(tictactoe.X)))
	s.Equal(model.Win(tictactoe.X), s.rules.Winner(s.state(tictactoe.X)))
}

func (s *RulesSuite) TestDiagonalWinsForO() {
	s.board = board.MustNew(3, 3, "OX_\nXO_\n__O")

	s.True(s.rules.GameFinished(s.state(tictactoe.O)))
	s.Equal(model.Win(tictactoe.O), s.rules.Winner(s.state(tictactoe.O)))
}

func (s *RulesSuite) TestFullBoardWithLineIsAWin() {
	s.board = board.MustNew(3, 3, "XXX\nOOX\nXOO")

	s.Equal(model.Win(tictactoe.X), s.rules.Winner(s.state(tictactoe.X)))
}

func (s *RulesSuite) TestFullBoardWithoutLineIsATie() {
	s.board = board.MustNew(3, 3, "XOX\nXOO\nOXX")

	s.True(s.rules.GameFinished(s.state(tictactoe.X)))
	s.Equal(model.Tie(), s.rules.Winner(s.state(tictactoe.X)))
}

// NextPlayer / LegalMoves tests

func (s *RulesSuite) TestNextPlayerAlternates() {
	s.Equal(tictactoe.O, s.rules.NextPlayer(s.state(tictactoe.X)))
	s.Equal(tictactoe.X, s.rules.NextPlayer(s.state(tictactoe.O)))
}

func (s *RulesSuite) TestLegalMovesCoverBlankCells() {
	s.play(tictactoe.X, "X 1,1")

	moves := s.rules.LegalMoves(s.state(tictactoe.O))
	s.Len(moves, 8)
	s.NotContains(moves, "O 1,1")
	for _, move := range moves {
		s.NoError(s.rules.ValidateMove(s.state(tictactoe.O), grammar.Parse(move)))
	}
}

// Engine integration

func (s *RulesSuite) TestEngineGameBetweenAgentsTerminates() {
	var out bytes.Buffer
	logger := testutil.NopLogger()
	e, err := engine.New(engine.Config{
		Board: s.board,
		Rules: s.rules,
		Sources: map[model.PlayerID]engine.MoveSource{
			tictactoe.X: players.NewAgentSource(agent.NewRandomAgent(random.NewSeeded(3)), &out, logger),
			tictactoe.O: players.NewAgentSource(agent.NewRandomAgent(random.NewSeeded(4)), &out, logger),
		},
		Output: &out,
		Logger: logger,
	})
	s.Require().NoError(err)

	_, err = e.Run(context.Background())
	s.Require().NoError(err)

	s.True(e.Finished())
	s.LessOrEqual(e.Round(), 9)
	s.GreaterOrEqual(e.Round(), 5)
}

func (s *RulesSuite) TestEngineScriptedWin() {
	e, err := engine.New(engine.Config{
		Board:  s.board,
		Rules:  s.rules,
		Source: players.NewScript("X 0,0", "O 1,0", "X 0,1", "O 2,1", "X 0,2"),
	})
	s.Require().NoError(err)

	outcome, err := e.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(model.Win(tictactoe.X), outcome)
}
