package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/mcoot/boardwalk/internal/model"
)

// Hooks carries the optional per-game overrides. A nil field falls back to
// the engine default documented on it.
type Hooks struct {
	// Prompt obtains the next move string. Default: ask the move source
	// registered for the current player, else the engine's default source.
	Prompt func(ctx context.Context, turn Turn) (string, error)
	// InitialPlayer picks who moves first. Default: player 0.
	InitialPlayer func() model.PlayerID
	// NextRound computes the round after an applied move. Default: round + 1.
	NextRound func(round int) int
	// FinishMessage announces the outcome. Default: a tie message or
	// "Player N wins!".
	FinishMessage func(w io.Writer, outcome model.Outcome)
}

func (h Hooks) initialPlayer() model.PlayerID {
	if h.InitialPlayer != nil {
		return h.InitialPlayer()
	}
	return 0
}

func (h Hooks) nextRound(round int) int {
	if h.NextRound != nil {
		return h.NextRound(round)
	}
	return round + 1
}

func (h Hooks) finishMessage(w io.Writer, outcome model.Outcome) {
	if h.FinishMessage != nil {
		h.FinishMessage(w, outcome)
		return
	}
	DefaultFinishMessage(w, outcome)
}

// DefaultFinishMessage writes the standard win or tie announcement
func DefaultFinishMessage(w io.Writer, outcome model.Outcome) {
	if !outcome.Decided {
		fmt.Fprintln(w, "Game over. It's a tie!")
		return
	}
	fmt.Fprintf(w, "Player %d wins!\n", outcome.Winner)
}
