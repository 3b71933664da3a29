package reward

// Error format strings
const (
	ErrFmtRequestFailed    = "failed to request reward: %w"
	ErrFmtRequestAllFailed = "failed to request rewards: %w"
	ErrFmtAwardFailed      = "failed to award rewards: %w"
	ErrFmtListFailed       = "failed to list rewards: %w"
)

// Log message constants
const (
	LogMsgRewardRequested          = "Reward requested"
	LogMsgRewardsRequested         = "Rewards bulk requested"
	LogMsgRewardsAwarded           = "Rewards awarded by admin"
	LogMsgCycleIncomplete          = "Reward request rejected, cycle incomplete"
	LogMsgFailedToCheckEligibility = "Failed to check reward eligibility"
	LogMsgFailedToRequestAll       = "Failed to bulk request rewards"
	LogMsgFailedToAward            = "Failed to award rewards"
	LogMsgEventPublishFailed       = "Failed to publish event"
)
