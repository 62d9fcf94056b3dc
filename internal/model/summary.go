package model

import "time"

// SummaryID uniquely identifies a recorded match
type SummaryID string

// GameSummary is a lightweight record of a finished game session.
// It cannot be used to resume play.
type GameSummary struct {
	ID          SummaryID
	Game        string
	Outcome     Outcome
	Rounds      int
	FinalBoard  string
	StartedAt   time.Time
	CompletedAt time.Time
}
