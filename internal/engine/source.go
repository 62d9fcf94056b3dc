package engine

import (
	"context"
	"fmt"

	"github.com/mcoot/boardwalk/internal/model"
)

// MoveSource produces the move string for the current player. Console input
// and AI agents both sit behind it. NextMove may block.
type MoveSource interface {
	NextMove(ctx context.Context, turn Turn) (string, error)
}

// MoveSourceFunc adapts a function to MoveSource
type MoveSourceFunc func(ctx context.Context, turn Turn) (string, error)

// NextMove calls f
func (f MoveSourceFunc) NextMove(ctx context.Context, turn Turn) (string, error) {
	return f(ctx, turn)
}

// Turn describes the decision the current player is asked to make
type Turn struct {
	State
	rules RuleSet
}

// NewTurn builds the turn the engine would hand to a move source
func NewTurn(s State, rules RuleSet) Turn {
	return Turn{State: s, rules: rules}
}

// LegalMoves returns the moves the rule set would accept this turn
func (t Turn) LegalMoves() ([]string, error) {
	lister, ok := t.rules.(MoveLister)
	if !ok {
		return nil, fmt.Errorf("%w: rule set does not enumerate moves", model.ErrNoLegalMoves)
	}
	moves := lister.LegalMoves(t.State)
	if len(moves) == 0 {
		return nil, model.ErrNoLegalMoves
	}
	return moves, nil
}

// Snapshot returns a copy of the turn's state that is safe to keep
func (t Turn) Snapshot() Snapshot {
	return Snapshot{
		Layout:        t.Board.Layout(),
		Round:         t.Round,
		CurrentPlayer: t.CurrentPlayer,
	}
}

// Snapshot is a detached copy of the game state
type Snapshot struct {
	Layout        [][]model.Glyph
	Round         int
	CurrentPlayer model.PlayerID
}
