package star

import "time"

// CacheSchemaVersion is the current version of the leaderboard cache schema.
// Increment when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Cache sizing
const (
	LeaderboardCacheSize = 16
	LeaderboardCacheTTL  = 30 * time.Second
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Error format strings
const (
	ErrFmtAwardFailed        = "failed to award stars: %w"
	ErrFmtGetStandingFailed  = "failed to get star standing: %w"
	ErrFmtMilestonesFailed   = "failed to list milestones: %w"
	ErrFmtLeaderboardFailed  = "failed to get leaderboard: %w"
	ErrFmtRankFailed         = "failed to get rank: %w"
)

// Log message constants
const (
	LogMsgStarsAwarded           = "Stars awarded"
	LogMsgMilestoneReached       = "Tier milestone reached"
	LogMsgMilestoneAlreadyExists = "Tier milestone already recorded, skipping"
	LogMsgFailedToAddStars       = "Failed to add stars"
	LogMsgFailedToInsertMilestone = "Failed to insert milestone"
	LogMsgEventPublishFailed     = "Failed to publish event"
	LogMsgLeaderboardCacheHit    = "Leaderboard served from cache"
)
