package repository

import (
	"context"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// Star defines the interface for star-account persistence
type Star interface {
	// AddStars atomically adds amount to the player's total, creating the
	// account on first use. Returns the previous and new totals as observed
	// by this increment; concurrent increments serialize at the store.
	AddStars(ctx context.Context, playerID string, amount int) (previous int, total int, err error)

	// GetAccount retrieves a player's star account
	GetAccount(ctx context.Context, playerID string) (*domain.StarAccount, error)

	// InsertMilestone appends one tier-crossing record. Idempotent per
	// (player, tier): re-inserting an already-achieved tier is a no-op and
	// returns false.
	InsertMilestone(ctx context.Context, milestone *domain.Milestone) (bool, error)

	// ListMilestones retrieves a player's milestones, newest first
	ListMilestones(ctx context.Context, playerID string) ([]domain.Milestone, error)

	// Leaderboard retrieves the top accounts by stars descending.
	// Rank is 1 + the count of strictly greater totals; ties share a rank
	// and order consistently by account creation.
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	// GetRank retrieves one player's rank and the total player count
	GetRank(ctx context.Context, playerID string) (*domain.RankInfo, error)

	// UpsertPlayer mirrors an externally owned player identity so
	// leaderboard rows can carry a display name
	UpsertPlayer(ctx context.Context, playerID, username string) error
}
