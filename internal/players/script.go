package players

import (
	"context"
	"io"

	"github.com/mcoot/boardwalk/internal/engine"
)

// Script replays a fixed sequence of moves, then reports io.EOF
type Script struct {
	moves []string
	next  int
}

// NewScript creates a Script over the given moves
func NewScript(moves ...string) *Script {
	return &Script{moves: moves}
}

// NextMove returns the next scripted move
func (s *Script) NextMove(ctx context.Context, turn engine.Turn) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.next >= len(s.moves) {
		return "", io.EOF
	}
	move := s.moves[s.next]
	s.next++
	return move, nil
}

// Remaining returns how many moves have not been played yet
func (s *Script) Remaining() int {
	return len(s.moves) - s.next
}

var _ engine.MoveSource = (*Script)(nil)
