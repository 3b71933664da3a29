package star

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starquiz/StarQuiz_Go/internal/concurrency"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/event"
)

// fakeStarRepository implements repository.Star with in-memory accounts and
// the same idempotency guarantees as the postgres implementation.
type fakeStarRepository struct {
	totals           map[string]int
	milestones       map[string]map[string]bool
	milestoneLog     []domain.Milestone
	leaderboardCalls int
	milestoneErr     error
}

func newFakeStarRepository() *fakeStarRepository {
	return &fakeStarRepository{
		totals:     make(map[string]int),
		milestones: make(map[string]map[string]bool),
	}
}

func (f *fakeStarRepository) AddStars(ctx context.Context, playerID string, amount int) (int, int, error) {
	previous := f.totals[playerID]
	f.totals[playerID] = previous + amount
	return previous, f.totals[playerID], nil
}

func (f *fakeStarRepository) GetAccount(ctx context.Context, playerID string) (*domain.StarAccount, error) {
	total, ok := f.totals[playerID]
	if !ok {
		return nil, domain.ErrStarAccountNotFound
	}
	return &domain.StarAccount{PlayerID: playerID, TotalStars: total}, nil
}

func (f *fakeStarRepository) InsertMilestone(ctx context.Context, m *domain.Milestone) (bool, error) {
	if f.milestoneErr != nil {
		return false, f.milestoneErr
	}
	achieved, ok := f.milestones[m.PlayerID]
	if !ok {
		achieved = make(map[string]bool)
		f.milestones[m.PlayerID] = achieved
	}
	if achieved[m.TierKey] {
		return false, nil
	}
	achieved[m.TierKey] = true
	m.AchievedAt = time.Now()
	f.milestoneLog = append(f.milestoneLog, *m)
	return true, nil
}

func (f *fakeStarRepository) ListMilestones(ctx context.Context, playerID string) ([]domain.Milestone, error) {
	var out []domain.Milestone
	for i := len(f.milestoneLog) - 1; i >= 0; i-- {
		if f.milestoneLog[i].PlayerID == playerID {
			out = append(out, f.milestoneLog[i])
		}
	}
	return out, nil
}

func (f *fakeStarRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	f.leaderboardCalls++
	return []domain.LeaderboardEntry{}, nil
}

func (f *fakeStarRepository) GetRank(ctx context.Context, playerID string) (*domain.RankInfo, error) {
	total, ok := f.totals[playerID]
	if !ok {
		return nil, domain.ErrStarAccountNotFound
	}
	rank := 1
	for _, t := range f.totals {
		if t > total {
			rank++
		}
	}
	return &domain.RankInfo{PlayerID: playerID, Rank: rank, TotalStars: total, Players: len(f.totals)}, nil
}

func (f *fakeStarRepository) UpsertPlayer(ctx context.Context, playerID, username string) error {
	return nil
}

func newStarTestService(repo *fakeStarRepository) Service {
	return NewService(repo, event.NewMemoryBus(), concurrency.NewLockManager())
}

func TestAwardStars_AccumulatesTotal(t *testing.T) {
	repo := newFakeStarRepository()
	svc := newStarTestService(repo)
	ctx := context.Background()

	result, err := svc.AwardStars(ctx, "player-1", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PreviousStars)
	assert.Equal(t, 10, result.TotalStars)
	assert.Equal(t, "beginner", result.CurrentTier.Key)
	assert.Nil(t, result.NewMilestone)

	result, err = svc.AwardStars(ctx, "player-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 10, result.PreviousStars)
	assert.Equal(t, 15, result.TotalStars)
}

func TestAwardStars_RejectsInvalidAmount(t *testing.T) {
	svc := newStarTestService(newFakeStarRepository())

	_, err := svc.AwardStars(context.Background(), "player-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidStarAmount)

	_, err = svc.AwardStars(context.Background(), "player-1", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidStarAmount)
}

func TestAwardStars_MilestoneOnCrossing(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 40
	svc := newStarTestService(repo)

	result, err := svc.AwardStars(context.Background(), "player-1", 20)
	require.NoError(t, err)
	require.NotNil(t, result.NewMilestone)
	assert.Equal(t, "bronze", result.NewMilestone.TierKey)
	assert.Equal(t, 60, result.NewMilestone.StarsAtAchievement)
}

func TestAwardStars_NoMilestoneWithinTier(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 60
	svc := newStarTestService(repo)

	result, err := svc.AwardStars(context.Background(), "player-1", 20)
	require.NoError(t, err)
	assert.Nil(t, result.NewMilestone)
	assert.Empty(t, repo.milestoneLog)
}

func TestAwardStars_MultiBoundaryJumpRecordsFinalTierOnly(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 40
	svc := newStarTestService(repo)

	result, err := svc.AwardStars(context.Background(), "player-1", 1060)
	require.NoError(t, err)
	require.NotNil(t, result.NewMilestone)
	assert.Equal(t, "diamond", result.NewMilestone.TierKey)
	require.Len(t, repo.milestoneLog, 1)
}

func TestAwardStars_MilestoneIdempotent(t *testing.T) {
	// The same tier cannot be recorded twice even if the repository sees
	// a duplicate crossing attempt.
	repo := newFakeStarRepository()
	repo.milestones["player-1"] = map[string]bool{"bronze": true}
	repo.totals["player-1"] = 40
	svc := newStarTestService(repo)

	result, err := svc.AwardStars(context.Background(), "player-1", 20)
	require.NoError(t, err)
	assert.Nil(t, result.NewMilestone)
	assert.Empty(t, repo.milestoneLog)
}

func TestAwardStars_MilestoneFailureDoesNotUndoAward(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 40
	repo.milestoneErr = errors.New("storage offline")
	svc := newStarTestService(repo)

	result, err := svc.AwardStars(context.Background(), "player-1", 20)
	require.NoError(t, err)
	assert.Equal(t, 60, result.TotalStars)
	assert.Nil(t, result.NewMilestone)
}

func TestGetStanding(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 75
	svc := newStarTestService(repo)

	standing, err := svc.GetStanding(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, "bronze", standing.Tier.Key)
	require.NotNil(t, standing.NextTier)
	assert.Equal(t, "silver", standing.NextTier.Key)
	require.NotNil(t, standing.Progress)
	assert.Equal(t, 25, standing.Progress.Remaining)
	assert.InDelta(t, 75.0, standing.Progress.Percentage, 0.001)
}

func TestGetStanding_MaxTier(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 2500
	svc := newStarTestService(repo)

	standing, err := svc.GetStanding(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, "diamond", standing.Tier.Key)
	assert.Nil(t, standing.NextTier)
	assert.Nil(t, standing.Progress)
}

func TestGetStanding_UnknownPlayer(t *testing.T) {
	svc := newStarTestService(newFakeStarRepository())

	_, err := svc.GetStanding(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrStarAccountNotFound)
}

func TestLeaderboard_CachesBetweenAwards(t *testing.T) {
	repo := newFakeStarRepository()
	svc := newStarTestService(repo)
	ctx := context.Background()

	_, err := svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	_, err = svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.leaderboardCalls, "second read served from cache")

	// An award invalidates the cached page.
	_, err = svc.AwardStars(ctx, "player-1", 5)
	require.NoError(t, err)
	_, err = svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.leaderboardCalls)
}

func TestLeaderboard_ClampsLimit(t *testing.T) {
	repo := newFakeStarRepository()
	svc := newStarTestService(repo)

	_, err := svc.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	_, err = svc.Leaderboard(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.leaderboardCalls)
}

func TestGetRank_Percentile(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 100
	repo.totals["player-2"] = 200
	repo.totals["player-3"] = 50
	repo.totals["player-4"] = 10
	svc := newStarTestService(repo)

	rank, err := svc.GetRank(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, 2, rank.Rank)
	assert.Equal(t, 4, rank.Players)
	assert.InDelta(t, 75.0, rank.Percentile, 0.001)
}

func TestGetMilestones_NewestFirst(t *testing.T) {
	repo := newFakeStarRepository()
	repo.totals["player-1"] = 40
	svc := newStarTestService(repo)
	ctx := context.Background()

	_, err := svc.AwardStars(ctx, "player-1", 20) // bronze
	require.NoError(t, err)
	_, err = svc.AwardStars(ctx, "player-1", 50) // silver
	require.NoError(t, err)

	milestones, err := svc.GetMilestones(ctx, "player-1")
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	assert.Equal(t, "silver", milestones[0].TierKey)
	assert.Equal(t, "bronze", milestones[1].TierKey)
}
