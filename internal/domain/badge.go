package domain

import "time"

// BadgesPerCycle is the number of completed games at one difficulty that
// make up a full badge cycle. Completing a cycle mints one reward.
const BadgesPerCycle = 3

// BadgeProgress holds the per-player, per-difficulty counters.
// LifetimeEarnedCount only grows through gameplay; OfficialBadgeCount only
// grows through an admin award, which also resets the cycle counter.
type BadgeProgress struct {
	PlayerID            string     `json:"player_id"`
	Difficulty          Difficulty `json:"difficulty"`
	LifetimeEarnedCount int        `json:"lifetime_earned_count"`
	OfficialBadgeCount  int        `json:"official_badge_count"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// CycleProgress is the 3-cycle view of a lifetime earned count.
type CycleProgress struct {
	CurrentCount int `json:"current_count"`
	Remaining    int `json:"remaining"`
	TotalEarned  int `json:"total_earned"`
}

// DifficultySummary combines cycle progress with official and requested
// counts for one difficulty.
type DifficultySummary struct {
	Difficulty     Difficulty    `json:"difficulty"`
	Progress       CycleProgress `json:"progress"`
	OfficialBadges int           `json:"official_badges"`
	RequestedCount int           `json:"requested_count"`
}

// PlayerSummary is the per-player progress view across all difficulties.
type PlayerSummary struct {
	PlayerID     string              `json:"player_id"`
	Difficulties []DifficultySummary `json:"difficulties"`
}
