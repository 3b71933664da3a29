package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Game ingestion error messages
	ErrMsgRecordGameFailed = "Failed to record game completion"

	// Badge/progress error messages
	ErrMsgGetSummaryFailed = "Failed to retrieve player summary"

	// Reward operation error messages
	ErrMsgRequestRewardFailed  = "Failed to request reward"
	ErrMsgRequestAllFailed     = "Failed to request rewards"
	ErrMsgAwardRewardsFailed   = "Failed to award rewards"
	ErrMsgListRewardsFailed    = "Failed to list rewards"

	// Star/leaderboard error messages
	ErrMsgGetStarsFailed       = "Failed to retrieve stars"
	ErrMsgGetMilestonesFailed  = "Failed to retrieve milestones"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetRankFailed        = "Failed to retrieve rank"

	// Admin error messages
	ErrMsgGetAuditFailed = "Failed to retrieve audit entries"

	// Parameter validation error messages
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidDifficulty = "Invalid difficulty. Valid options: easy, average, difficult"
)
