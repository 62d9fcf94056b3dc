package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/boardwalk/internal/model"
	"github.com/mcoot/boardwalk/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	summaries map[model.SummaryID]*model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		summaries: make(map[model.SummaryID]*model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *summary
	s.summaries[summary.ID] = &stored
	return nil
}

func (s *Storage) GetSummary(ctx context.Context, id model.SummaryID) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	if !ok {
		return nil, model.ErrSummaryNotFound
	}
	result := *summary
	return &result, nil
}

func (s *Storage) ListSummaries(ctx context.Context, game string, limit int) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.GameSummary, 0, len(s.summaries))
	for _, summary := range s.summaries {
		if game != "" && summary.Game != game {
			continue
		}
		copied := *summary
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CompletedAt.Equal(result[j].CompletedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CompletedAt.After(result[j].CompletedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
