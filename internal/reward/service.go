package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/starquiz/StarQuiz_Go/internal/badge"
	"github.com/starquiz/StarQuiz_Go/internal/concurrency"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/event"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/repository"
)

// Service defines the interface for reward-ledger operations
type Service interface {
	// Request transitions one reward from unclaimed to requested, gated on
	// the owning badge cycle being complete
	Request(ctx context.Context, playerID, rewardID string) (*domain.Reward, error)

	// RequestAllByDifficulty transitions every unclaimed reward for a
	// player/difficulty to requested. No per-reward cycle gate: this is a
	// bulk convenience over the already-materialized unclaimed set.
	RequestAllByDifficulty(ctx context.Context, playerID string, difficulty domain.Difficulty) (*domain.RequestResult, error)

	// AwardByDifficulty is the administrative confirmation: every reward
	// not yet claimed transitions to claimed, the official badge count
	// grows by the awarded count and the cycle counter resets, atomically.
	AwardByDifficulty(ctx context.Context, playerID string, difficulty domain.Difficulty, admin domain.Admin) (*domain.AwardResult, error)

	// ListByPlayer returns all of a player's rewards grouped by difficulty
	ListByPlayer(ctx context.Context, playerID string) (map[domain.Difficulty][]domain.Reward, error)

	// ListUnclaimed returns a player's unclaimed rewards
	ListUnclaimed(ctx context.Context, playerID string) ([]domain.Reward, error)
}

type service struct {
	repo  repository.Reward
	badge repository.Badge
	bus   event.Bus
	locks *concurrency.LockManager
}

// NewService creates a new reward ledger service
func NewService(repo repository.Reward, badgeRepo repository.Badge, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:  repo,
		badge: badgeRepo,
		bus:   bus,
		locks: locks,
	}
}

// Request records a player's intent to redeem one reward. Counters are
// untouched; only the reward state and request date change.
func (s *service) Request(ctx context.Context, playerID, rewardID string) (*domain.Reward, error) {
	log := logger.FromContext(ctx)

	if playerID == "" || rewardID == "" {
		return nil, fmt.Errorf("%w: player id and reward id are required", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetByID(ctx, playerID, rewardID)
	if err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(concurrency.BadgeKey(playerID, string(existing.Difficulty)))
	lock.Lock()
	defer lock.Unlock()

	// State rejections come before the eligibility gate: a reward already
	// past unclaimed reports its own state, not the cycle's.
	switch existing.State {
	case domain.RewardRequested:
		return nil, domain.ErrRewardAlreadyRequested
	case domain.RewardClaimed:
		return nil, domain.ErrRewardAlreadyClaimed
	}

	// Eligibility gate: the owning cycle must be complete. The count is a
	// positive multiple of the cycle length only when no games have been
	// played past the last completed cycle.
	progress, err := s.badge.GetProgress(ctx, playerID, existing.Difficulty)
	if err != nil {
		log.Error(LogMsgFailedToCheckEligibility, "error", err, "player_id", playerID, "reward_id", rewardID)
		return nil, fmt.Errorf(ErrFmtRequestFailed, err)
	}
	if !badge.CycleComplete(progress.LifetimeEarnedCount) {
		log.Debug(LogMsgCycleIncomplete, "player_id", playerID, "difficulty", existing.Difficulty, "lifetime_count", progress.LifetimeEarnedCount)
		return nil, domain.ErrCycleIncomplete
	}

	updated, err := s.repo.MarkRequested(ctx, playerID, rewardID)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgRewardRequested, "player_id", playerID, "reward_id", rewardID, "difficulty", updated.Difficulty)
	s.publish(ctx, event.NewRewardRequestedEvent(playerID, rewardID, updated.Difficulty))

	return updated, nil
}

// RequestAllByDifficulty bulk-transitions the unclaimed set.
func (s *service) RequestAllByDifficulty(ctx context.Context, playerID string, difficulty domain.Difficulty) (*domain.RequestResult, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if !difficulty.IsValid() {
		return nil, domain.ErrInvalidDifficulty
	}

	lock := s.locks.GetLock(concurrency.BadgeKey(playerID, string(difficulty)))
	lock.Lock()
	defer lock.Unlock()

	count, err := s.repo.RequestAllUnclaimed(ctx, playerID, difficulty)
	if err != nil {
		log.Error(LogMsgFailedToRequestAll, "error", err, "player_id", playerID, "difficulty", difficulty)
		return nil, fmt.Errorf(ErrFmtRequestAllFailed, err)
	}
	if count == 0 {
		return nil, domain.ErrNothingToRequest
	}

	log.Info(LogMsgRewardsRequested, "player_id", playerID, "difficulty", difficulty, "count", count)
	s.publish(ctx, event.NewRewardsRequestedEvent(playerID, difficulty, count))

	return &domain.RequestResult{
		PlayerID:          playerID,
		Difficulty:        difficulty,
		RewardsTransition: count,
	}, nil
}

// AwardByDifficulty commits the admin confirmation. Both unclaimed and
// requested rewards are eligible targets; the claim transition and the
// counter commit happen in one storage transaction.
func (s *service) AwardByDifficulty(ctx context.Context, playerID string, difficulty domain.Difficulty, admin domain.Admin) (*domain.AwardResult, error) {
	log := logger.FromContext(ctx)

	if admin.ID == "" {
		return nil, domain.ErrAdminRequired
	}
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if !difficulty.IsValid() {
		return nil, domain.ErrInvalidDifficulty
	}

	lock := s.locks.GetLock(concurrency.BadgeKey(playerID, string(difficulty)))
	lock.Lock()
	defer lock.Unlock()

	result, err := s.repo.AwardAllPending(ctx, playerID, difficulty, admin)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToAward) {
			return nil, err
		}
		log.Error(LogMsgFailedToAward, "error", err, "player_id", playerID, "difficulty", difficulty, "admin_id", admin.ID)
		return nil, fmt.Errorf(ErrFmtAwardFailed, err)
	}

	log.Info(LogMsgRewardsAwarded, "player_id", playerID, "difficulty", difficulty, "count", result.RewardsAwarded, "admin_id", admin.ID)
	s.publish(ctx, event.NewRewardsAwardedEvent(*result, admin))

	return result, nil
}

// ListByPlayer groups a player's rewards by difficulty.
func (s *service) ListByPlayer(ctx context.Context, playerID string) (map[domain.Difficulty][]domain.Reward, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	rewards, err := s.repo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListFailed, err)
	}

	grouped := make(map[domain.Difficulty][]domain.Reward, len(domain.Difficulties))
	for _, difficulty := range domain.Difficulties {
		grouped[difficulty] = []domain.Reward{}
	}
	for _, r := range rewards {
		grouped[r.Difficulty] = append(grouped[r.Difficulty], r)
	}
	return grouped, nil
}

// ListUnclaimed returns the player's unclaimed rewards.
func (s *service) ListUnclaimed(ctx context.Context, playerID string) ([]domain.Reward, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	rewards, err := s.repo.ListUnclaimed(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListFailed, err)
	}
	return rewards, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "type", evt.Type)
	}
}
