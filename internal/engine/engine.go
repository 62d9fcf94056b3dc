// Package engine drives turn-based grid games.
//
// An Engine owns one board and one rule set for the lifetime of a session and
// loops: render the board, ask the current player's move source for a move,
// validate it, apply it, check whether the game has finished, then hand the
// turn to the next player. Rejected moves are reported and re-requested from
// the same player in the same round.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/grammar"
	"github.com/mcoot/boardwalk/internal/model"
)

// Config holds everything needed to build an Engine
type Config struct {
	// Board is owned by the engine from here on (required)
	Board *board.Board
	// Rules is the concrete game (required)
	Rules RuleSet
	// Hooks overrides optional behaviour; the zero value uses every default
	Hooks Hooks
	// Source serves players without an entry in Sources (optional)
	Source MoveSource
	// Sources maps players to their own move sources, e.g. AI agents (optional)
	Sources map[model.PlayerID]MoveSource
	// Output receives renders, diagnostics and the finish message.
	// If nil, output is discarded.
	Output io.Writer
	// Logger is the engine logger. If nil, a no-op logger is used.
	Logger *slog.Logger
}

// Engine is the turn-based state machine for one game session.
// It is not safe for concurrent use.
type Engine struct {
	board   *board.Board
	rules   RuleSet
	hooks   Hooks
	source  MoveSource
	sources map[model.PlayerID]MoveSource
	out     io.Writer
	logger  *slog.Logger

	round    int
	current  model.PlayerID
	finished bool
	outcome  model.Outcome
}

// New creates an Engine in its initial state: round 1, initial player chosen
// by the hooks
func New(cfg Config) (*Engine, error) {
	if cfg.Board == nil {
		return nil, errors.New("engine: board is required")
	}
	if cfg.Rules == nil {
		return nil, errors.New("engine: rule set is required")
	}

	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Engine{
		board:   cfg.Board,
		rules:   cfg.Rules,
		hooks:   cfg.Hooks,
		source:  cfg.Source,
		sources: cfg.Sources,
		out:     out,
		logger:  logger.With(slog.String("component", "engine")),
		round:   1,
		current: cfg.Hooks.initialPlayer(),
	}, nil
}

// Board returns the engine's board
func (e *Engine) Board() *board.Board {
	return e.board
}

// Round returns the current round, starting at 1
func (e *Engine) Round() int {
	return e.round
}

// CurrentPlayer returns the player whose turn it is
func (e *Engine) CurrentPlayer() model.PlayerID {
	return e.current
}

// Finished returns true once Run has returned an outcome
func (e *Engine) Finished() bool {
	return e.finished
}

// State returns the current view handed to rule sets
func (e *Engine) State() State {
	return State{
		Board:         e.board,
		Round:         e.round,
		CurrentPlayer: e.current,
	}
}

// Snapshot returns a detached copy of the layout and turn bookkeeping
func (e *Engine) Snapshot() Snapshot {
	return NewTurn(e.State(), e.rules).Snapshot()
}

// Run plays the game to completion and returns its outcome.
//
// It returns early with an error if ctx is cancelled between turns, if a
// move source fails, or if the rule set cannot apply a move it accepted.
// Calling Run on a finished engine returns model.ErrGameFinished.
func (e *Engine) Run(ctx context.Context) (model.Outcome, error) {
	if e.finished {
		return e.outcome, model.ErrGameFinished
	}

	for {
		fmt.Fprintln(e.out, e.board)

		move, err := e.awaitValidMove(ctx)
		if err != nil {
			return model.Outcome{}, err
		}

		if err := e.rules.PerformMove(e.State(), move); err != nil {
			return model.Outcome{}, fmt.Errorf("perform move %q: %w", move.Raw, err)
		}

		e.logger.Debug("move applied",
			slog.Int("round", e.round),
			slog.Int("player", int(e.current)),
			slog.String("move", move.Raw),
			slog.String("kind", move.Kind.String()),
		)

		if e.rules.GameFinished(e.State()) {
			return e.finish(), nil
		}

		e.current = e.rules.NextPlayer(e.State())
		e.round = e.hooks.nextRound(e.round)
	}
}

// awaitValidMove prompts the current player until the rule set accepts a move
func (e *Engine) awaitValidMove(ctx context.Context) (model.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.Move{}, err
		}

		raw, err := e.prompt(ctx)
		if err != nil {
			return model.Move{}, fmt.Errorf("player %d: %w", e.current, err)
		}

		move := grammar.Parse(raw)
		if err := e.rules.ValidateMove(e.State(), move); err != nil {
			fmt.Fprintf(e.out, "Invalid move: %v. Try again.\n", err)
			e.logger.Debug("move rejected",
				slog.Int("round", e.round),
				slog.Int("player", int(e.current)),
				slog.String("move", raw),
				slog.String("reason", err.Error()),
			)
			continue
		}

		return move, nil
	}
}

func (e *Engine) prompt(ctx context.Context) (string, error) {
	turn := NewTurn(e.State(), e.rules)

	if e.hooks.Prompt != nil {
		return e.hooks.Prompt(ctx, turn)
	}

	source, ok := e.sources[e.current]
	if !ok {
		source = e.source
	}
	if source == nil {
		return "", model.ErrNoMoveSource
	}
	return source.NextMove(ctx, turn)
}

func (e *Engine) finish() model.Outcome {
	fmt.Fprintf(e.out, "\n%s\n", e.board)

	outcome := e.rules.Winner(e.State())
	e.finished = true
	e.outcome = outcome

	e.hooks.finishMessage(e.out, outcome)

	e.logger.Info("game finished",
		slog.Int("rounds", e.round),
		slog.Bool("decided", outcome.Decided),
		slog.Int("winner", int(outcome.Winner)),
	)

	return outcome
}
