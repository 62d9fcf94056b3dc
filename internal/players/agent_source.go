package players

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/services/agent"
)

// AgentSource asks an AI agent to choose among the turn's legal moves
type AgentSource struct {
	agent  agent.Agent
	out    io.Writer
	logger *slog.Logger
}

// NewAgentSource creates an AgentSource that announces its choices on out
func NewAgentSource(a agent.Agent, out io.Writer, logger *slog.Logger) *AgentSource {
	return &AgentSource{
		agent:  a,
		out:    out,
		logger: logger.With(slog.String("component", "agent-source")),
	}
}

// NextMove lists the legal moves and lets the agent pick one
func (s *AgentSource) NextMove(ctx context.Context, turn engine.Turn) (string, error) {
	legal, err := turn.LegalMoves()
	if err != nil {
		return "", err
	}

	move, err := s.agent.ChooseMove(ctx, turn.Snapshot(), legal)
	if err != nil {
		return "", fmt.Errorf("agent: %w", err)
	}

	s.logger.Debug("agent chose move",
		slog.Int("player", int(turn.CurrentPlayer)),
		slog.Int("round", turn.Round),
		slog.Int("legal_moves", len(legal)),
		slog.String("move", move),
	)
	fmt.Fprintf(s.out, "Player %d plays %s\n", turn.CurrentPlayer, move)

	return move, nil
}

var _ engine.MoveSource = (*AgentSource)(nil)
