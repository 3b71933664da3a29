package domain

import "time"

// RewardState is the lifecycle state of a reward. Transitions are
// one-directional: Unclaimed -> Requested -> Claimed, with an administrative
// shortcut Unclaimed -> Claimed. Claimed is terminal.
type RewardState string

const (
	RewardUnclaimed RewardState = "unclaimed"
	RewardRequested RewardState = "requested"
	RewardClaimed   RewardState = "claimed"
)

// Reward is a single redeemable unit, minted once per completed badge cycle.
type Reward struct {
	ID            string      `json:"reward_id"`
	PlayerID      string      `json:"player_id"`
	Difficulty    Difficulty  `json:"difficulty"`
	BadgeNumber   int         `json:"badge_number"`
	State         RewardState `json:"state"`
	EarnedDate    time.Time   `json:"earned_date"`
	RequestedDate *time.Time  `json:"requested_date,omitempty"`
	ClaimedDate   *time.Time  `json:"claimed_date,omitempty"`
	AwardedByID   string      `json:"awarded_by_id,omitempty"`
	AwardedByName string      `json:"awarded_by_name,omitempty"`
}

// Admin is the authenticated administrator identity attached to award
// operations and audit entries. Supplied by an external auth collaborator.
type Admin struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AwardResult reports the outcome of an administrative badge award.
type AwardResult struct {
	PlayerID       string     `json:"player_id"`
	Difficulty     Difficulty `json:"difficulty"`
	RewardsAwarded int        `json:"rewards_awarded"`
	OfficialBadges int        `json:"official_badges"`
}

// RequestResult reports the outcome of a bulk reward request.
type RequestResult struct {
	PlayerID          string     `json:"player_id"`
	Difficulty        Difficulty `json:"difficulty"`
	RewardsTransition int        `json:"rewards_requested"`
}
