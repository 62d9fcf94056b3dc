package agent

import (
	"context"
	"fmt"
	"sort"

	"github.com/mcoot/boardwalk/internal/dependencies/random"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/model"
)

// Strategy name constants
const (
	StrategyRandom = "random"
	StrategyFirst  = "first"
)

// Agent chooses a move for an AI-controlled player
type Agent interface {
	// ChooseMove picks one of the legal moves for the given state
	ChooseMove(ctx context.Context, state engine.Snapshot, legal []string) (string, error)
}

// New resolves a strategy name to an Agent
func New(strategy string, rnd random.Random) (Agent, error) {
	switch strategy {
	case StrategyRandom:
		return NewRandomAgent(rnd), nil
	case StrategyFirst:
		return FirstAgent{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownAgent, strategy)
	}
}

// DisplayName returns a human-readable label for a strategy
func DisplayName(strategy string) string {
	switch strategy {
	case StrategyRandom:
		return "Random"
	case StrategyFirst:
		return "First legal move"
	default:
		return strategy
	}
}

// Strategies returns all valid strategy names
func Strategies() []string {
	names := []string{StrategyRandom, StrategyFirst}
	sort.Strings(names)
	return names
}
