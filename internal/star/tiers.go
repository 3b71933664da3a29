package star

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// tiers is the single ordered rank table, ascending by threshold. A player's
// tier is the highest entry whose threshold their cumulative total meets.
// Display names are derived from the keys so the two can never drift.
var tiers = buildTiers()

func buildTiers() []domain.Tier {
	title := cases.Title(language.English)
	base := []struct {
		key         string
		threshold   int
		description string
	}{
		{"beginner", 0, "Everyone starts here"},
		{"bronze", 50, "50 stars earned"},
		{"silver", 100, "100 stars earned"},
		{"gold", 250, "250 stars earned"},
		{"platinum", 500, "500 stars earned"},
		{"diamond", 1000, "1000 stars earned"},
	}

	out := make([]domain.Tier, len(base))
	for i, b := range base {
		out[i] = domain.Tier{
			Key:         b.key,
			Name:        title.String(b.key),
			Threshold:   b.threshold,
			Description: b.description,
		}
	}
	return out
}

// Tiers returns the full rank table, ascending by threshold.
func Tiers() []domain.Tier {
	out := make([]domain.Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierFor returns the tier a cumulative star total sits in. Negative totals
// clamp to the base tier.
func TierFor(totalStars int) domain.Tier {
	current := tiers[0]
	for _, t := range tiers[1:] {
		if totalStars < t.Threshold {
			break
		}
		current = t
	}
	return current
}

// NextTierFor returns the next tier above a total, or nil at the top.
func NextTierFor(totalStars int) *domain.Tier {
	for i := range tiers {
		if totalStars < tiers[i].Threshold {
			t := tiers[i]
			return &t
		}
	}
	return nil
}

// CrossedTier reports the tier reached by moving from previous to total, or
// nil when no boundary was crossed. A jump over several boundaries yields
// only the final tier; intermediate tiers are never reached.
func CrossedTier(previous, total int) *domain.Tier {
	before := TierFor(previous)
	after := TierFor(total)
	if after.Threshold <= before.Threshold {
		return nil
	}
	return &after
}

// ProgressFor describes progress toward the next tier's threshold, measured
// from zero. Nil at the maximum tier.
func ProgressFor(totalStars int) *domain.TierProgress {
	next := NextTierFor(totalStars)
	if next == nil {
		return nil
	}
	earned := totalStars
	if earned < 0 {
		earned = 0
	}
	return &domain.TierProgress{
		Current:    totalStars,
		Required:   next.Threshold,
		Remaining:  next.Threshold - totalStars,
		Percentage: float64(earned) / float64(next.Threshold) * 100,
	}
}
