package badge

import (
	"context"
	"errors"
	"fmt"

	"github.com/starquiz/StarQuiz_Go/internal/concurrency"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/event"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/repository"
)

// Service defines the interface for badge progress operations
type Service interface {
	// RecordEarned registers one qualifying game completion for a
	// player/difficulty. Returns the updated cycle progress and the reward
	// minted when this completion closed a cycle, nil otherwise.
	RecordEarned(ctx context.Context, playerID string, difficulty domain.Difficulty) (domain.CycleProgress, *domain.Reward, error)

	// GetSummary returns progress, official badge count and live requested
	// count for every difficulty of a player
	GetSummary(ctx context.Context, playerID string) (*domain.PlayerSummary, error)
}

type service struct {
	repo    repository.Badge
	rewards repository.Reward
	bus     event.Bus
	locks   *concurrency.LockManager
}

// NewService creates a new badge progress service
func NewService(repo repository.Badge, rewards repository.Reward, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:    repo,
		rewards: rewards,
		bus:     bus,
		locks:   locks,
	}
}

// RecordEarned increments the lifetime counter and mints a reward when the
// new count closes a cycle. The increment and the reward insert share one
// storage transaction; events are published only after it commits.
func (s *service) RecordEarned(ctx context.Context, playerID string, difficulty domain.Difficulty) (domain.CycleProgress, *domain.Reward, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return domain.CycleProgress{}, nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if !difficulty.IsValid() {
		return domain.CycleProgress{}, nil, domain.ErrInvalidDifficulty
	}

	lock := s.locks.GetLock(concurrency.BadgeKey(playerID, string(difficulty)))
	lock.Lock()
	defer lock.Unlock()

	newCount, reward, err := s.repo.IncrementEarned(ctx, playerID, difficulty)
	if err != nil {
		log.Error(LogMsgFailedToRecordEarned, "error", err, "player_id", playerID, "difficulty", difficulty)
		return domain.CycleProgress{}, nil, fmt.Errorf(ErrFmtRecordEarnedFailed, err)
	}

	s.publish(ctx, event.NewBadgeEarnedEvent(playerID, difficulty, newCount))
	if reward != nil {
		log.Info(LogMsgCycleCompleted, "player_id", playerID, "difficulty", difficulty, "badge_number", reward.BadgeNumber)
		s.publish(ctx, event.NewRewardCycleCompletedEvent(*reward))
	}

	return ComputeProgress(newCount), reward, nil
}

// GetSummary builds the per-player view across all difficulties. The
// requested count is recomputed live from the reward ledger, never cached.
func (s *service) GetSummary(ctx context.Context, playerID string) (*domain.PlayerSummary, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	rows, err := s.repo.GetAllProgress(ctx, playerID)
	if err != nil && !errors.Is(err, domain.ErrBadgeProgressNotFound) {
		log.Error(LogMsgFailedToGetProgress, "error", err, "player_id", playerID)
		return nil, fmt.Errorf(ErrFmtGetSummaryFailed, err)
	}

	requested, err := s.rewards.CountByState(ctx, playerID, domain.RewardRequested)
	if err != nil {
		log.Error(LogMsgFailedToCountRequested, "error", err, "player_id", playerID)
		return nil, fmt.Errorf(ErrFmtGetSummaryFailed, err)
	}

	byDifficulty := make(map[domain.Difficulty]domain.BadgeProgress, len(rows))
	for _, row := range rows {
		byDifficulty[row.Difficulty] = row
	}

	summary := &domain.PlayerSummary{PlayerID: playerID}
	for _, difficulty := range domain.Difficulties {
		row := byDifficulty[difficulty] // zero value covers never-played difficulties
		summary.Difficulties = append(summary.Difficulties, domain.DifficultySummary{
			Difficulty:     difficulty,
			Progress:       ComputeProgress(row.LifetimeEarnedCount),
			OfficialBadges: row.OfficialBadgeCount,
			RequestedCount: requested[difficulty],
		})
	}

	log.Debug(LogMsgSummaryRetrieved, "player_id", playerID)
	return summary, nil
}

// publish sends an event and logs failures without propagating them; event
// subscribers are side channels of the primary mutation.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "type", evt.Type)
	}
}
