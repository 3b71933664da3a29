package domain

import "time"

// StarAccount tracks a player's cumulative star total. Stars only increase.
type StarAccount struct {
	PlayerID   string    `json:"player_id"`
	TotalStars int       `json:"total_stars"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Tier is a named rank determined purely by the cumulative star total.
type Tier struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Threshold   int    `json:"threshold"`
	Description string `json:"description"`
}

// Milestone marks a tier crossing. Append-only, created exactly once per
// crossing and never mutated.
type Milestone struct {
	ID                 int64     `json:"id"`
	PlayerID           string    `json:"player_id"`
	TierKey            string    `json:"tier"`
	StarsAtAchievement int       `json:"stars_at_achievement"`
	AchievedAt         time.Time `json:"achieved_at"`
}

// TierProgress describes how far a player is from the next tier.
// Nil when the player already sits at the maximum tier.
type TierProgress struct {
	Current    int     `json:"current"`
	Required   int     `json:"required"`
	Remaining  int     `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// StarAwardResult is returned from a star award operation.
type StarAwardResult struct {
	PlayerID      string     `json:"player_id"`
	StarsEarned   int        `json:"stars_earned"`
	PreviousStars int        `json:"previous_stars"`
	TotalStars    int        `json:"total_stars"`
	CurrentTier   Tier       `json:"current_tier"`
	NewMilestone  *Milestone `json:"new_milestone,omitempty"`
}

// StarStanding is the read view of a player's stars, tier and progress.
type StarStanding struct {
	PlayerID   string        `json:"player_id"`
	TotalStars int           `json:"total_stars"`
	Tier       Tier          `json:"tier"`
	NextTier   *Tier         `json:"next_tier,omitempty"`
	Progress   *TierProgress `json:"progress,omitempty"`
}

// LeaderboardEntry is one row of the star leaderboard.
// Rank is 1-based: 1 + the count of strictly greater totals, so tied
// players share a rank.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	Username   string `json:"username"`
	TotalStars int    `json:"total_stars"`
	TierKey    string `json:"tier"`
}

// RankInfo is a single player's leaderboard position.
type RankInfo struct {
	PlayerID   string  `json:"player_id"`
	Rank       int     `json:"rank"`
	TotalStars int     `json:"total_stars"`
	Players    int     `json:"players"`
	Percentile float64 `json:"percentile"`
}
