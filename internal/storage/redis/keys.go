package redis

import (
	"fmt"

	"github.com/mcoot/boardwalk/internal/model"
)

// Key prefix for all match history data
const keyPrefix = "boardwalk"

// summaryKey returns the Redis key for a GameSummary
func summaryKey(id model.SummaryID) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// allSummariesIndexKey returns the Redis key for the ZSET of every summary,
// scored by completion time
func allSummariesIndexKey() string {
	return fmt.Sprintf("%s:idx:summaries", keyPrefix)
}

// gameSummariesIndexKey returns the Redis key for the ZSET of summaries of one game
func gameSummariesIndexKey(game string) string {
	return fmt.Sprintf("%s:idx:summaries:%s", keyPrefix, game)
}

// indexKey picks the index to list from; an empty game means all games
func indexKey(game string) string {
	if game == "" {
		return allSummariesIndexKey()
	}
	return gameSummariesIndexKey(game)
}
