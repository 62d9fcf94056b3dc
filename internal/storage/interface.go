package storage

import (
	"context"

	"github.com/mcoot/boardwalk/internal/model"
)

// Storage defines the interface for match history persistence
type Storage interface {
	// SaveSummary records a finished game
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	// GetSummary returns model.ErrSummaryNotFound if no such record exists
	GetSummary(ctx context.Context, id model.SummaryID) (*model.GameSummary, error)
	// ListSummaries returns the newest records first. An empty game lists
	// every game; a limit <= 0 means no limit.
	ListSummaries(ctx context.Context, game string, limit int) ([]*model.GameSummary, error)
}
