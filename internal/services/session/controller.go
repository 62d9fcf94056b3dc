// Package session runs one game from start to finish and records the result
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/mcoot/boardwalk/internal/dependencies/clock"
	"github.com/mcoot/boardwalk/internal/dependencies/random"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/games"
	"github.com/mcoot/boardwalk/internal/model"
	"github.com/mcoot/boardwalk/internal/players"
	"github.com/mcoot/boardwalk/internal/services/agent"
	"github.com/mcoot/boardwalk/internal/storage"
)

// PlayRequest describes a session to run
type PlayRequest struct {
	Game string
	// Layout optionally replaces the starting board
	Layout string
	// Agents maps AI-controlled seats to a strategy name. Every other seat
	// reads moves from In.
	Agents map[model.PlayerID]string
	In     io.Reader
	Out    io.Writer
}

// Controller starts sessions and keeps their history
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "session")),
	}
}

// Play runs the requested game until it finishes and stores its summary.
// A session that ends early (cancelled, input closed) is not recorded.
func (c *Controller) Play(ctx context.Context, req PlayRequest) (*model.GameSummary, error) {
	info, err := games.Lookup(req.Game)
	if err != nil {
		return nil, err
	}

	def, err := games.Build(req.Game, games.Options{Layout: req.Layout, Random: c.random})
	if err != nil {
		return nil, err
	}

	out := req.Out
	if out == nil {
		out = io.Discard
	}

	sources, err := c.agentSources(info, req.Agents, out)
	if err != nil {
		return nil, err
	}

	var console engine.MoveSource
	if len(sources) < info.Players && req.In != nil {
		console = players.NewConsole(req.In, out)
	}

	logger := c.logger.With(slog.String("game", def.Name))
	e, err := engine.New(engine.Config{
		Board:   def.Board,
		Rules:   def.Rules,
		Hooks:   def.Hooks,
		Source:  console,
		Sources: sources,
		Output:  out,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	startedAt := c.clock.Now()
	logger.Info("session started", slog.Int("agents", len(sources)))

	outcome, err := e.Run(ctx)
	if err != nil {
		logger.Warn("session ended early",
			slog.Int("round", e.Round()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	summary := &model.GameSummary{
		ID:          model.SummaryID(uuid.NewString()),
		Game:        def.Name,
		Outcome:     outcome,
		Rounds:      e.Round(),
		FinalBoard:  e.Board().String(),
		StartedAt:   startedAt,
		CompletedAt: c.clock.Now(),
	}

	if err := c.storage.SaveSummary(ctx, summary); err != nil {
		logger.Error("failed to save summary",
			slog.String("summary_id", string(summary.ID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("save summary: %w", err)
	}

	logger.Info("session recorded",
		slog.String("summary_id", string(summary.ID)),
		slog.Int("rounds", summary.Rounds),
	)

	return summary, nil
}

// History lists finished sessions newest first, optionally for one game only
func (c *Controller) History(ctx context.Context, game string, limit int) ([]*model.GameSummary, error) {
	if game != "" {
		if _, err := games.Lookup(game); err != nil {
			return nil, err
		}
	}
	return c.storage.ListSummaries(ctx, game, limit)
}

// Summary returns one recorded session
func (c *Controller) Summary(ctx context.Context, id model.SummaryID) (*model.GameSummary, error) {
	return c.storage.GetSummary(ctx, id)
}

func (c *Controller) agentSources(info games.Info, agents map[model.PlayerID]string, out io.Writer) (map[model.PlayerID]engine.MoveSource, error) {
	seats := make([]model.PlayerID, 0, len(agents))
	for seat := range agents {
		seats = append(seats, seat)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i] < seats[j] })

	sources := make(map[model.PlayerID]engine.MoveSource, len(agents))
	for _, seat := range seats {
		if seat < 0 || int(seat) >= info.Players {
			return nil, fmt.Errorf("%w: %s has players 0-%d, got %d", model.ErrInvalidSeat, info.Name, info.Players-1, seat)
		}
		a, err := agent.New(agents[seat], c.random)
		if err != nil {
			return nil, err
		}
		sources[seat] = players.NewAgentSource(a, out, c.logger.With(slog.Int("player", int(seat))))
	}
	return sources, nil
}
