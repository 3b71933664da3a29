package badge

import "github.com/starquiz/StarQuiz_Go/internal/domain"

// ComputeProgress turns a cumulative lifetime count into the 3-cycle view.
// Pure and total: remaining is always in [1, 3], defined as exactly 3 when
// the cycle position is 0.
func ComputeProgress(lifetimeCount int) domain.CycleProgress {
	current := lifetimeCount % domain.BadgesPerCycle
	return domain.CycleProgress{
		CurrentCount: current,
		Remaining:    domain.BadgesPerCycle - current,
		TotalEarned:  lifetimeCount,
	}
}

// CycleComplete reports whether a lifetime count sits exactly on a completed
// cycle boundary: positive and a multiple of the cycle length. This is the
// eligibility gate for requesting a reward.
func CycleComplete(lifetimeCount int) bool {
	return lifetimeCount > 0 && lifetimeCount%domain.BadgesPerCycle == 0
}
