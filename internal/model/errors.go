package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidShape   = errors.New("board dimensions must be positive")
	ErrLayoutMismatch = errors.New("board layout does not match specified board shape")
	ErrOutOfBounds    = errors.New("position is not on the board")
	ErrEmptySource    = errors.New("no piece at source position")

	// Move errors
	ErrMalformedMove = errors.New("move is incorrectly formatted")
	ErrIllegalMove   = errors.New("move is not allowed")
	ErrNoLegalMoves  = errors.New("no legal moves available")

	// Game errors
	ErrGameFinished = errors.New("game is already finished")
	ErrNoMoveSource = errors.New("no move source for player")
	ErrUnknownGame  = errors.New("unknown game")
	ErrInvalidSeat  = errors.New("no such player seat in this game")

	// Summary errors
	ErrSummaryNotFound = errors.New("summary not found")

	// Agent errors
	ErrUnknownAgent = errors.New("unknown agent strategy")
)
