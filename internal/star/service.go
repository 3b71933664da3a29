package star

import (
	"context"
	"fmt"
	"math"

	"github.com/starquiz/StarQuiz_Go/internal/concurrency"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/event"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/repository"
)

// Service defines the interface for star tier operations
type Service interface {
	// RegisterPlayer mirrors the externally owned player identity so
	// progress rows can reference it
	RegisterPlayer(ctx context.Context, playerID, username string) error

	// AwardStars adds amount stars to the player's cumulative total and
	// records a milestone when the new total crosses a tier boundary. A jump
	// over several boundaries yields one milestone for the final tier only.
	AwardStars(ctx context.Context, playerID string, amount int) (*domain.StarAwardResult, error)

	// GetStanding returns a player's total, current tier and progress toward
	// the next tier
	GetStanding(ctx context.Context, playerID string) (*domain.StarStanding, error)

	// GetMilestones returns a player's tier crossings, newest first
	GetMilestones(ctx context.Context, playerID string) ([]domain.Milestone, error)

	// Leaderboard returns the top players by star total
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	// GetRank returns one player's leaderboard position and percentile
	GetRank(ctx context.Context, playerID string) (*domain.RankInfo, error)
}

type service struct {
	repo  repository.Star
	bus   event.Bus
	locks *concurrency.LockManager
	cache *leaderboardCache
}

// NewService creates a new star tier service
func NewService(repo repository.Star, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:  repo,
		bus:   bus,
		locks: locks,
		cache: newLeaderboardCache(LeaderboardCacheSize, LeaderboardCacheTTL),
	}
}

// RegisterPlayer upserts the player row. Called on every game completion
// so display names track the quiz platform.
func (s *service) RegisterPlayer(ctx context.Context, playerID, username string) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if username == "" {
		username = playerID
	}
	return s.repo.UpsertPlayer(ctx, playerID, username)
}

// AwardStars is one of the two game-completion ingestion points. The
// counter increment is atomic at the store; the per-player lock keeps the
// milestone check aligned with the increment it observed.
func (s *service) AwardStars(ctx context.Context, playerID string, amount int) (*domain.StarAwardResult, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if amount < 1 {
		return nil, domain.ErrInvalidStarAmount
	}

	lock := s.locks.GetLock(concurrency.StarKey(playerID))
	lock.Lock()
	defer lock.Unlock()

	previous, total, err := s.repo.AddStars(ctx, playerID, amount)
	if err != nil {
		log.Error(LogMsgFailedToAddStars, "error", err, "player_id", playerID, "amount", amount)
		return nil, fmt.Errorf(ErrFmtAwardFailed, err)
	}

	result := &domain.StarAwardResult{
		PlayerID:      playerID,
		StarsEarned:   amount,
		PreviousStars: previous,
		TotalStars:    total,
		CurrentTier:   TierFor(total),
	}

	if crossed := CrossedTier(previous, total); crossed != nil {
		milestone := &domain.Milestone{
			PlayerID:           playerID,
			TierKey:            crossed.Key,
			StarsAtAchievement: total,
		}
		inserted, err := s.repo.InsertMilestone(ctx, milestone)
		if err != nil {
			// The stars are already committed; a failed milestone insert
			// must not undo the award.
			log.Error(LogMsgFailedToInsertMilestone, "error", err, "player_id", playerID, "tier", crossed.Key)
		} else if inserted {
			result.NewMilestone = milestone
			log.Info(LogMsgMilestoneReached, "player_id", playerID, "tier", crossed.Key, "total_stars", total)
			s.publish(ctx, event.NewStarMilestoneEvent(*milestone))
		} else {
			log.Debug(LogMsgMilestoneAlreadyExists, "player_id", playerID, "tier", crossed.Key)
		}
	}

	log.Info(LogMsgStarsAwarded, "player_id", playerID, "amount", amount, "total_stars", total, "tier", result.CurrentTier.Key)
	s.publish(ctx, event.NewStarsAwardedEvent(*result))
	s.cache.Clear()

	return result, nil
}

// GetStanding builds the read view of a player's stars and tier.
func (s *service) GetStanding(ctx context.Context, playerID string) (*domain.StarStanding, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	account, err := s.repo.GetAccount(ctx, playerID)
	if err != nil {
		return nil, err
	}

	standing := &domain.StarStanding{
		PlayerID:   account.PlayerID,
		TotalStars: account.TotalStars,
		Tier:       TierFor(account.TotalStars),
		NextTier:   NextTierFor(account.TotalStars),
	}
	if progress := ProgressFor(account.TotalStars); progress != nil {
		progress.Percentage = roundPercentage(progress.Percentage)
		standing.Progress = progress
	}
	return standing, nil
}

// GetMilestones returns the player's tier crossings, newest first.
func (s *service) GetMilestones(ctx context.Context, playerID string) ([]domain.Milestone, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	milestones, err := s.repo.ListMilestones(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtMilestonesFailed, err)
	}
	return milestones, nil
}

// Leaderboard returns the top accounts by stars, served from a short-TTL
// cache between awards.
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	if entries, ok := s.cache.Get(limit); ok {
		logger.FromContext(ctx).Debug(LogMsgLeaderboardCacheHit, "limit", limit)
		return entries, nil
	}

	entries, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLeaderboardFailed, err)
	}
	for i := range entries {
		entries[i].TierKey = TierFor(entries[i].TotalStars).Key
	}
	s.cache.Set(limit, entries)
	return entries, nil
}

// GetRank returns a player's position among all accounts.
func (s *service) GetRank(ctx context.Context, playerID string) (*domain.RankInfo, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	rank, err := s.repo.GetRank(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if rank.Players > 0 {
		rank.Percentile = roundPercentage(float64(rank.Players-rank.Rank+1) / float64(rank.Players) * 100)
	}
	return rank, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "type", evt.Type)
	}
}

func roundPercentage(p float64) float64 {
	if p > 100 {
		p = 100
	}
	return math.Round(p*100) / 100
}
