package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// BadgeRepository implements the badge progress repository for PostgreSQL
type BadgeRepository struct {
	db *pgxpool.Pool
}

// NewBadgeRepository creates a new BadgeRepository
func NewBadgeRepository(db *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// IncrementEarned bumps the lifetime counter and, when the new count closes
// a cycle, mints one unclaimed reward in the same transaction.
func (r *BadgeRepository) IncrementEarned(ctx context.Context, playerID string, difficulty domain.Difficulty) (int, *domain.Reward, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO badge_progress (player_id, difficulty, lifetime_earned_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (player_id, difficulty)
		DO UPDATE SET lifetime_earned_count = badge_progress.lifetime_earned_count + 1,
		              updated_at = NOW()
		RETURNING lifetime_earned_count
	`

	var count int
	if err := tx.QueryRow(ctx, query, playerID, string(difficulty)).Scan(&count); err != nil {
		return 0, nil, fmt.Errorf("failed to increment badge progress: %w", err)
	}

	var reward *domain.Reward
	if count > 0 && count%domain.BadgesPerCycle == 0 {
		mintQuery := `
			INSERT INTO rewards (player_id, difficulty, badge_number, state)
			VALUES ($1, $2, $3, $4)
			RETURNING reward_id, earned_date
		`
		// badge_number counts completed cycles across this counter's lifetime
		badgeNumber := count / domain.BadgesPerCycle

		reward = &domain.Reward{
			PlayerID:    playerID,
			Difficulty:  difficulty,
			BadgeNumber: badgeNumber,
			State:       domain.RewardUnclaimed,
		}
		err := tx.QueryRow(ctx, mintQuery, playerID, string(difficulty), badgeNumber, string(domain.RewardUnclaimed)).
			Scan(&reward.ID, &reward.EarnedDate)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to mint reward: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return count, reward, nil
}

// GetProgress retrieves one player/difficulty progress row.
func (r *BadgeRepository) GetProgress(ctx context.Context, playerID string, difficulty domain.Difficulty) (*domain.BadgeProgress, error) {
	query := `
		SELECT player_id, difficulty, lifetime_earned_count, official_badge_count, updated_at
		FROM badge_progress
		WHERE player_id = $1 AND difficulty = $2
	`

	progress, err := scanBadgeProgress(r.db.QueryRow(ctx, query, playerID, string(difficulty)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBadgeProgressNotFound
		}
		return nil, fmt.Errorf("failed to get badge progress: %w", err)
	}
	return progress, nil
}

// GetAllProgress retrieves every difficulty row a player has touched.
func (r *BadgeRepository) GetAllProgress(ctx context.Context, playerID string) ([]domain.BadgeProgress, error) {
	query := `
		SELECT player_id, difficulty, lifetime_earned_count, official_badge_count, updated_at
		FROM badge_progress
		WHERE player_id = $1
		ORDER BY difficulty
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge progress rows: %w", err)
	}
	defer rows.Close()

	var out []domain.BadgeProgress
	for rows.Next() {
		progress, err := scanBadgeProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *progress)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanBadgeProgress(row pgx.Row) (*domain.BadgeProgress, error) {
	var p domain.BadgeProgress
	var difficulty string
	err := row.Scan(&p.PlayerID, &difficulty, &p.LifetimeEarnedCount, &p.OfficialBadgeCount, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Difficulty = domain.Difficulty(difficulty)
	return &p, nil
}
