package badge

// Error format strings
const (
	ErrFmtRecordEarnedFailed = "failed to record earned badge: %w"
	ErrFmtGetSummaryFailed   = "failed to get player summary: %w"
)

// Log message constants
const (
	LogMsgFailedToRecordEarned   = "Failed to record earned badge"
	LogMsgFailedToGetProgress    = "Failed to get badge progress"
	LogMsgFailedToCountRequested = "Failed to count requested rewards"
	LogMsgCycleCompleted         = "Badge cycle completed, reward minted"
	LogMsgSummaryRetrieved       = "Player summary retrieved"
	LogMsgEventPublishFailed     = "Failed to publish event"
)
