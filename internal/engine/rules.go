package engine

import (
	"fmt"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/model"
)

// State is the view of a session handed to rule sets and move sources.
// Board is the engine's own board; rule sets mutate it only through its
// methods.
type State struct {
	Board         *board.Board
	Round         int
	CurrentPlayer model.PlayerID
}

// RuleSet is the contract every concrete game implements
type RuleSet interface {
	// ValidateMove accepts the move with nil or rejects it with an error
	// describing why. Rejected moves are reported to the player.
	ValidateMove(s State, m model.Move) error
	// PerformMove applies an accepted move and records whatever auxiliary
	// state the rule set needs to detect the end of the game.
	PerformMove(s State, m model.Move) error
	// GameFinished reports whether the game has ended
	GameFinished(s State) bool
	// Winner resolves the outcome of a finished game
	Winner(s State) model.Outcome
	// NextPlayer picks who moves after the current player
	NextPlayer(s State) model.PlayerID
}

// MoveLister is implemented by rule sets that can enumerate the moves they
// would accept. AI agents choose from this list.
type MoveLister interface {
	LegalMoves(s State) []string
}

// DefaultValidate accepts placement and movement moves whose coordinates all
// lie on the board
func DefaultValidate(b *board.Board, m model.Move) error {
	if m.Kind == model.MoveInvalid {
		return fmt.Errorf("%w: %q", model.ErrMalformedMove, m.Raw)
	}
	for _, p := range m.Positions() {
		if !b.InBounds(p) {
			return fmt.Errorf("%w: (%d,%d)", model.ErrOutOfBounds, p.Row, p.Col)
		}
	}
	return nil
}

// DefaultPerform places or moves a piece according to the move's kind
func DefaultPerform(b *board.Board, m model.Move) error {
	switch m.Kind {
	case model.MovePlacement:
		return b.Place(m.Piece, m.At)
	case model.MoveMovement:
		return b.Move(m.From, m.To)
	default:
		return fmt.Errorf("%w: %q", model.ErrMalformedMove, m.Raw)
	}
}
