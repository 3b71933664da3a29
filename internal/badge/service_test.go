package badge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starquiz/StarQuiz_Go/internal/concurrency"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/event"
)

// mockBadgeRepository implements repository.Badge for testing
type mockBadgeRepository struct {
	counts   map[string]int
	official map[string]int
	incErr   error
}

func newMockBadgeRepository() *mockBadgeRepository {
	return &mockBadgeRepository{
		counts:   make(map[string]int),
		official: make(map[string]int),
	}
}

func key(playerID string, difficulty domain.Difficulty) string {
	return playerID + ":" + string(difficulty)
}

func (m *mockBadgeRepository) IncrementEarned(ctx context.Context, playerID string, difficulty domain.Difficulty) (int, *domain.Reward, error) {
	if m.incErr != nil {
		return 0, nil, m.incErr
	}
	k := key(playerID, difficulty)
	m.counts[k]++
	count := m.counts[k]
	if count%domain.BadgesPerCycle != 0 {
		return count, nil, nil
	}
	return count, &domain.Reward{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		Difficulty:  difficulty,
		BadgeNumber: count / domain.BadgesPerCycle,
		State:       domain.RewardUnclaimed,
		EarnedDate:  time.Now(),
	}, nil
}

func (m *mockBadgeRepository) GetProgress(ctx context.Context, playerID string, difficulty domain.Difficulty) (*domain.BadgeProgress, error) {
	return &domain.BadgeProgress{
		PlayerID:            playerID,
		Difficulty:          difficulty,
		LifetimeEarnedCount: m.counts[key(playerID, difficulty)],
		OfficialBadgeCount:  m.official[key(playerID, difficulty)],
	}, nil
}

func (m *mockBadgeRepository) GetAllProgress(ctx context.Context, playerID string) ([]domain.BadgeProgress, error) {
	var rows []domain.BadgeProgress
	for _, d := range domain.Difficulties {
		k := key(playerID, d)
		if m.counts[k] == 0 && m.official[k] == 0 {
			continue
		}
		rows = append(rows, domain.BadgeProgress{
			PlayerID:            playerID,
			Difficulty:          d,
			LifetimeEarnedCount: m.counts[k],
			OfficialBadgeCount:  m.official[k],
		})
	}
	return rows, nil
}

// mockRewardCounts implements repository.Reward for summary tests; only
// CountByState is exercised here.
type mockRewardCounts struct {
	requested map[domain.Difficulty]int
}

func (m *mockRewardCounts) GetByID(ctx context.Context, playerID, rewardID string) (*domain.Reward, error) {
	return nil, domain.ErrRewardNotFound
}

func (m *mockRewardCounts) MarkRequested(ctx context.Context, playerID, rewardID string) (*domain.Reward, error) {
	return nil, domain.ErrRewardNotFound
}

func (m *mockRewardCounts) RequestAllUnclaimed(ctx context.Context, playerID string, difficulty domain.Difficulty) (int, error) {
	return 0, nil
}

func (m *mockRewardCounts) AwardAllPending(ctx context.Context, playerID string, difficulty domain.Difficulty, admin domain.Admin) (*domain.AwardResult, error) {
	return nil, domain.ErrNothingToAward
}

func (m *mockRewardCounts) ListByPlayer(ctx context.Context, playerID string) ([]domain.Reward, error) {
	return nil, nil
}

func (m *mockRewardCounts) ListUnclaimed(ctx context.Context, playerID string) ([]domain.Reward, error) {
	return nil, nil
}

func (m *mockRewardCounts) CountByState(ctx context.Context, playerID string, state domain.RewardState) (map[domain.Difficulty]int, error) {
	return m.requested, nil
}

func newTestService(repo *mockBadgeRepository, rewards *mockRewardCounts) Service {
	if rewards == nil {
		rewards = &mockRewardCounts{requested: map[domain.Difficulty]int{}}
	}
	return NewService(repo, rewards, event.NewMemoryBus(), concurrency.NewLockManager())
}

func TestRecordEarned_IncrementsProgress(t *testing.T) {
	repo := newMockBadgeRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	progress, reward, err := svc.RecordEarned(ctx, "player-1", domain.DifficultyEasy)
	require.NoError(t, err)
	assert.Nil(t, reward)
	assert.Equal(t, domain.CycleProgress{CurrentCount: 1, Remaining: 2, TotalEarned: 1}, progress)
}

func TestRecordEarned_MintsRewardOnCycleBoundary(t *testing.T) {
	repo := newMockBadgeRepository()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	var reward *domain.Reward
	var err error
	for i := 0; i < domain.BadgesPerCycle; i++ {
		_, reward, err = svc.RecordEarned(ctx, "player-1", domain.DifficultyDifficult)
		require.NoError(t, err)
	}

	require.NotNil(t, reward)
	assert.Equal(t, 1, reward.BadgeNumber)
	assert.Equal(t, domain.RewardUnclaimed, reward.State)
}

func TestRecordEarned_PublishesCycleEvent(t *testing.T) {
	repo := newMockBadgeRepository()
	bus := event.NewMemoryBus()
	svc := NewService(repo, &mockRewardCounts{}, bus, concurrency.NewLockManager())

	var cycleEvents int
	bus.Subscribe(event.RewardCycleCompleted, func(ctx context.Context, evt event.Event) error {
		cycleEvents++
		return nil
	})

	ctx := context.Background()
	for i := 0; i < 6; i++ {
		_, _, err := svc.RecordEarned(ctx, "player-1", domain.DifficultyEasy)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, cycleEvents, "one cycle event per completed cycle")
}

func TestRecordEarned_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(newMockBadgeRepository(), nil)
	ctx := context.Background()

	_, _, err := svc.RecordEarned(ctx, "", domain.DifficultyEasy)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = svc.RecordEarned(ctx, "player-1", domain.Difficulty("legendary"))
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestRecordEarned_PropagatesRepositoryError(t *testing.T) {
	repo := newMockBadgeRepository()
	repo.incErr = errors.New("connection refused")
	svc := newTestService(repo, nil)

	_, _, err := svc.RecordEarned(context.Background(), "player-1", domain.DifficultyAverage)
	assert.ErrorContains(t, err, "connection refused")
}

func TestGetSummary_CoversAllDifficulties(t *testing.T) {
	repo := newMockBadgeRepository()
	repo.counts[key("player-1", domain.DifficultyEasy)] = 4
	repo.official[key("player-1", domain.DifficultyEasy)] = 1
	rewards := &mockRewardCounts{requested: map[domain.Difficulty]int{domain.DifficultyEasy: 1}}
	svc := newTestService(repo, rewards)

	summary, err := svc.GetSummary(context.Background(), "player-1")
	require.NoError(t, err)
	require.Len(t, summary.Difficulties, 3)

	easy := summary.Difficulties[0]
	assert.Equal(t, domain.DifficultyEasy, easy.Difficulty)
	assert.Equal(t, domain.CycleProgress{CurrentCount: 1, Remaining: 2, TotalEarned: 4}, easy.Progress)
	assert.Equal(t, 1, easy.OfficialBadges)
	assert.Equal(t, 1, easy.RequestedCount)

	// Difficulties the player never touched still appear, zeroed.
	average := summary.Difficulties[1]
	assert.Equal(t, domain.CycleProgress{CurrentCount: 0, Remaining: 3, TotalEarned: 0}, average.Progress)
	assert.Zero(t, average.OfficialBadges)
}
