package repository

import (
	"context"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// Reward defines the interface for reward-ledger persistence. All state
// transitions are conditional updates keyed on the current state, never
// read-then-write, so concurrent player and admin actions cannot
// double-apply a transition.
type Reward interface {
	// GetByID retrieves one reward owned by the player
	GetByID(ctx context.Context, playerID, rewardID string) (*domain.Reward, error)

	// MarkRequested transitions one unclaimed reward to requested and
	// stamps the request date. Returns the updated reward, or
	// domain.ErrRewardAlreadyRequested / ErrRewardAlreadyClaimed /
	// ErrRewardNotFound depending on the reward's current state.
	MarkRequested(ctx context.Context, playerID, rewardID string) (*domain.Reward, error)

	// RequestAllUnclaimed transitions every unclaimed reward for the
	// player/difficulty to requested. Returns the number transitioned.
	RequestAllUnclaimed(ctx context.Context, playerID string, difficulty domain.Difficulty) (int, error)

	// AwardAllPending transitions every reward not yet claimed for the
	// player/difficulty to claimed, stamps the award attribution, then in
	// the same transaction adds the awarded count to the official badge
	// count and resets the lifetime earned count to zero.
	AwardAllPending(ctx context.Context, playerID string, difficulty domain.Difficulty, admin domain.Admin) (*domain.AwardResult, error)

	// ListByPlayer retrieves all rewards for a player, newest first
	ListByPlayer(ctx context.Context, playerID string) ([]domain.Reward, error)

	// ListUnclaimed retrieves all unclaimed rewards for a player
	ListUnclaimed(ctx context.Context, playerID string) ([]domain.Reward, error)

	// CountByState counts a player's rewards per difficulty in a state
	CountByState(ctx context.Context, playerID string, state domain.RewardState) (map[domain.Difficulty]int, error)
}
