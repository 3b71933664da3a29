package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// RewardRepository implements the reward ledger repository for PostgreSQL.
// State transitions are conditional updates keyed on the current state, so
// a racing player and admin can never double-apply a transition.
type RewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

const rewardColumns = `reward_id, player_id, difficulty, badge_number, state,
	earned_date, requested_date, claimed_date, awarded_by_id, awarded_by_name`

// GetByID retrieves one reward owned by the player.
func (r *RewardRepository) GetByID(ctx context.Context, playerID, rewardID string) (*domain.Reward, error) {
	query := `
		SELECT ` + rewardColumns + `
		FROM rewards
		WHERE reward_id = $1 AND player_id = $2
	`

	reward, err := scanReward(r.db.QueryRow(ctx, query, rewardID, playerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return reward, nil
}

// MarkRequested transitions one unclaimed reward to requested. The update
// only matches the unclaimed state; on zero rows the current state decides
// which sentinel comes back.
func (r *RewardRepository) MarkRequested(ctx context.Context, playerID, rewardID string) (*domain.Reward, error) {
	query := `
		UPDATE rewards
		SET state = $1, requested_date = NOW()
		WHERE reward_id = $2 AND player_id = $3 AND state = $4
		RETURNING ` + rewardColumns

	reward, err := scanReward(r.db.QueryRow(ctx, query,
		string(domain.RewardRequested), rewardID, playerID, string(domain.RewardUnclaimed)))
	if err == nil {
		return reward, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to request reward: %w", err)
	}

	// The conditional update matched nothing; classify why.
	existing, getErr := r.GetByID(ctx, playerID, rewardID)
	if getErr != nil {
		return nil, getErr
	}
	switch existing.State {
	case domain.RewardRequested:
		return nil, domain.ErrRewardAlreadyRequested
	case domain.RewardClaimed:
		return nil, domain.ErrRewardAlreadyClaimed
	}
	return nil, domain.ErrRewardNotFound
}

// RequestAllUnclaimed bulk-transitions the unclaimed set for one difficulty.
func (r *RewardRepository) RequestAllUnclaimed(ctx context.Context, playerID string, difficulty domain.Difficulty) (int, error) {
	query := `
		UPDATE rewards
		SET state = $1, requested_date = NOW()
		WHERE player_id = $2 AND difficulty = $3 AND state = $4
	`

	result, err := r.db.Exec(ctx, query,
		string(domain.RewardRequested), playerID, string(difficulty), string(domain.RewardUnclaimed))
	if err != nil {
		return 0, fmt.Errorf("failed to request rewards: %w", err)
	}
	return int(result.RowsAffected()), nil
}

// AwardAllPending claims every non-claimed reward for the player/difficulty
// and commits the badge counters in the same transaction: official count
// grows by the awarded count, the cycle counter resets to zero.
func (r *RewardRepository) AwardAllPending(ctx context.Context, playerID string, difficulty domain.Difficulty, admin domain.Admin) (*domain.AwardResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	claimQuery := `
		UPDATE rewards
		SET state = $1, claimed_date = NOW(), awarded_by_id = $2, awarded_by_name = $3
		WHERE player_id = $4 AND difficulty = $5 AND state != $1
	`

	result, err := tx.Exec(ctx, claimQuery,
		string(domain.RewardClaimed), admin.ID, admin.Name, playerID, string(difficulty))
	if err != nil {
		return nil, fmt.Errorf("failed to claim rewards: %w", err)
	}
	awarded := int(result.RowsAffected())
	if awarded == 0 {
		return nil, domain.ErrNothingToAward
	}

	commitQuery := `
		UPDATE badge_progress
		SET official_badge_count = official_badge_count + $1,
		    lifetime_earned_count = 0,
		    updated_at = NOW()
		WHERE player_id = $2 AND difficulty = $3
		RETURNING official_badge_count
	`

	var official int
	if err := tx.QueryRow(ctx, commitQuery, awarded, playerID, string(difficulty)).Scan(&official); err != nil {
		return nil, fmt.Errorf("failed to commit badge counters: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}

	return &domain.AwardResult{
		PlayerID:       playerID,
		Difficulty:     difficulty,
		RewardsAwarded: awarded,
		OfficialBadges: official,
	}, nil
}

// ListByPlayer retrieves all of a player's rewards, newest first.
func (r *RewardRepository) ListByPlayer(ctx context.Context, playerID string) ([]domain.Reward, error) {
	query := `
		SELECT ` + rewardColumns + `
		FROM rewards
		WHERE player_id = $1
		ORDER BY earned_date DESC
	`
	return r.queryRewards(ctx, query, playerID)
}

// ListUnclaimed retrieves a player's unclaimed rewards, oldest first so the
// earliest earned surfaces at the top of the claim list.
func (r *RewardRepository) ListUnclaimed(ctx context.Context, playerID string) ([]domain.Reward, error) {
	query := `
		SELECT ` + rewardColumns + `
		FROM rewards
		WHERE player_id = $1 AND state = $2
		ORDER BY earned_date ASC
	`
	return r.queryRewards(ctx, query, playerID, string(domain.RewardUnclaimed))
}

// CountByState counts a player's rewards per difficulty in one state.
func (r *RewardRepository) CountByState(ctx context.Context, playerID string, state domain.RewardState) (map[domain.Difficulty]int, error) {
	query := `
		SELECT difficulty, COUNT(*)
		FROM rewards
		WHERE player_id = $1 AND state = $2
		GROUP BY difficulty
	`

	rows, err := r.db.Query(ctx, query, playerID, string(state))
	if err != nil {
		return nil, fmt.Errorf("failed to count rewards: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Difficulty]int)
	for rows.Next() {
		var difficulty string
		var count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, err
		}
		counts[domain.Difficulty(difficulty)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *RewardRepository) queryRewards(ctx context.Context, query string, args ...any) ([]domain.Reward, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	defer rows.Close()

	var out []domain.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *reward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanReward(row pgx.Row) (*domain.Reward, error) {
	var reward domain.Reward
	var difficulty, state string
	var awardedByID, awardedByName *string

	err := row.Scan(
		&reward.ID,
		&reward.PlayerID,
		&difficulty,
		&reward.BadgeNumber,
		&state,
		&reward.EarnedDate,
		&reward.RequestedDate,
		&reward.ClaimedDate,
		&awardedByID,
		&awardedByName,
	)
	if err != nil {
		return nil, err
	}

	reward.Difficulty = domain.Difficulty(difficulty)
	reward.State = domain.RewardState(state)
	if awardedByID != nil {
		reward.AwardedByID = *awardedByID
	}
	if awardedByName != nil {
		reward.AwardedByName = *awardedByName
	}
	return &reward, nil
}
