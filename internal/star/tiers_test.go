package star

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor_Boundaries(t *testing.T) {
	cases := []struct {
		stars int
		want  string
	}{
		{0, "beginner"},
		{1, "beginner"},
		{49, "beginner"},
		{50, "bronze"},
		{99, "bronze"},
		{100, "silver"},
		{249, "silver"},
		{250, "gold"},
		{499, "gold"},
		{500, "platinum"},
		{999, "platinum"},
		{1000, "diamond"},
		{5000, "diamond"},
		{-10, "beginner"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.stars).Key, "stars=%d", tc.stars)
	}
}

func TestNextTierFor(t *testing.T) {
	require.NotNil(t, NextTierFor(0))
	assert.Equal(t, "bronze", NextTierFor(0).Key)
	assert.Equal(t, "bronze", NextTierFor(49).Key)
	assert.Equal(t, "silver", NextTierFor(50).Key)
	assert.Equal(t, "diamond", NextTierFor(999).Key)
	assert.Nil(t, NextTierFor(1000))
	assert.Nil(t, NextTierFor(100000))
}

func TestCrossedTier(t *testing.T) {
	// One boundary crossed.
	crossed := CrossedTier(40, 60)
	require.NotNil(t, crossed)
	assert.Equal(t, "bronze", crossed.Key)

	// Movement within a tier.
	assert.Nil(t, CrossedTier(60, 80))
	assert.Nil(t, CrossedTier(0, 49))
	assert.Nil(t, CrossedTier(1000, 9000))

	// A multi-boundary jump yields the final tier only.
	crossed = CrossedTier(40, 1100)
	require.NotNil(t, crossed)
	assert.Equal(t, "diamond", crossed.Key)

	// Landing exactly on a threshold counts as crossing it.
	crossed = CrossedTier(49, 50)
	require.NotNil(t, crossed)
	assert.Equal(t, "bronze", crossed.Key)
}

func TestProgressFor(t *testing.T) {
	p := ProgressFor(25)
	require.NotNil(t, p)
	assert.Equal(t, 25, p.Current)
	assert.Equal(t, 50, p.Required)
	assert.Equal(t, 25, p.Remaining)
	assert.InDelta(t, 50.0, p.Percentage, 0.001)

	// Progress is measured against the next threshold from zero, not the
	// current tier's span.
	p = ProgressFor(75)
	require.NotNil(t, p)
	assert.Equal(t, 100, p.Required)
	assert.Equal(t, 25, p.Remaining)
	assert.InDelta(t, 75.0, p.Percentage, 0.001)

	p = ProgressFor(999)
	require.NotNil(t, p)
	assert.Equal(t, 1000, p.Required)
	assert.InDelta(t, 99.9, p.Percentage, 0.001)

	// Maximum tier has nothing to progress toward.
	assert.Nil(t, ProgressFor(1000))
}

func TestTiers_OrderedAscending(t *testing.T) {
	table := Tiers()
	require.Len(t, table, 6)
	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i].Threshold, table[i-1].Threshold)
	}
	assert.Equal(t, 0, table[0].Threshold)
	assert.Equal(t, 1000, table[len(table)-1].Threshold)
}
