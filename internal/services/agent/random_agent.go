package agent

import (
	"context"

	"github.com/mcoot/boardwalk/internal/dependencies/random"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/model"
)

// RandomAgent picks uniformly among the legal moves
type RandomAgent struct {
	random random.Random
}

// NewRandomAgent creates a new RandomAgent
func NewRandomAgent(rnd random.Random) *RandomAgent {
	return &RandomAgent{random: rnd}
}

// ChooseMove returns a random legal move
func (a *RandomAgent) ChooseMove(ctx context.Context, state engine.Snapshot, legal []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(legal) == 0 {
		return "", model.ErrNoLegalMoves
	}
	return legal[a.random.Intn(len(legal))], nil
}

// FirstAgent always plays the first legal move. Useful for reproducible demos.
type FirstAgent struct{}

// ChooseMove returns the first legal move
func (FirstAgent) ChooseMove(ctx context.Context, state engine.Snapshot, legal []string) (string, error) {
	if len(legal) == 0 {
		return "", model.ErrNoLegalMoves
	}
	return legal[0], nil
}

var (
	_ Agent = (*RandomAgent)(nil)
	_ Agent = FirstAgent{}
)
