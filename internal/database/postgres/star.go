package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// StarRepository implements the star account repository for PostgreSQL
type StarRepository struct {
	db *pgxpool.Pool
}

// NewStarRepository creates a new StarRepository
func NewStarRepository(db *pgxpool.Pool) *StarRepository {
	return &StarRepository{db: db}
}

// AddStars atomically adds to the cumulative total, creating the account on
// first use. The upsert serializes concurrent increments at the row.
func (r *StarRepository) AddStars(ctx context.Context, playerID string, amount int) (int, int, error) {
	query := `
		INSERT INTO star_accounts (player_id, total_stars)
		VALUES ($1, $2)
		ON CONFLICT (player_id)
		DO UPDATE SET total_stars = star_accounts.total_stars + $2,
		              updated_at = NOW()
		RETURNING total_stars
	`

	var total int
	if err := r.db.QueryRow(ctx, query, playerID, amount).Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("failed to add stars: %w", err)
	}
	return total - amount, total, nil
}

// GetAccount retrieves a player's star account.
func (r *StarRepository) GetAccount(ctx context.Context, playerID string) (*domain.StarAccount, error) {
	query := `
		SELECT player_id, total_stars, created_at, updated_at
		FROM star_accounts
		WHERE player_id = $1
	`

	var account domain.StarAccount
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&account.PlayerID, &account.TotalStars, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStarAccountNotFound
		}
		return nil, fmt.Errorf("failed to get star account: %w", err)
	}
	return &account, nil
}

// InsertMilestone appends one tier crossing. The unique constraint on
// (player, tier) makes re-insertion a no-op reported as false.
func (r *StarRepository) InsertMilestone(ctx context.Context, milestone *domain.Milestone) (bool, error) {
	query := `
		INSERT INTO milestones (player_id, tier_key, stars_at_achievement)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, tier_key) DO NOTHING
		RETURNING id, achieved_at
	`

	err := r.db.QueryRow(ctx, query, milestone.PlayerID, milestone.TierKey, milestone.StarsAtAchievement).
		Scan(&milestone.ID, &milestone.AchievedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert milestone: %w", err)
	}
	return true, nil
}

// ListMilestones retrieves a player's tier crossings, newest first.
func (r *StarRepository) ListMilestones(ctx context.Context, playerID string) ([]domain.Milestone, error) {
	query := `
		SELECT id, player_id, tier_key, stars_at_achievement, achieved_at
		FROM milestones
		WHERE player_id = $1
		ORDER BY achieved_at DESC
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	defer rows.Close()

	var out []domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		if err := rows.Scan(&m.ID, &m.PlayerID, &m.TierKey, &m.StarsAtAchievement, &m.AchievedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaderboard retrieves the top accounts by stars descending. Rank is
// 1 + the count of strictly greater totals, so ties share a rank; account
// creation time keeps the ordering stable within a tie.
func (r *StarRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT RANK() OVER (ORDER BY s.total_stars DESC) AS rank,
		       s.player_id,
		       COALESCE(p.username, s.player_id) AS username,
		       s.total_stars
		FROM star_accounts s
		LEFT JOIN players p ON p.player_id = s.player_id
		ORDER BY s.total_stars DESC, s.created_at ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var out []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.Rank, &entry.PlayerID, &entry.Username, &entry.TotalStars); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRank retrieves one player's rank and the total player count.
func (r *StarRepository) GetRank(ctx context.Context, playerID string) (*domain.RankInfo, error) {
	query := `
		SELECT s.total_stars,
		       1 + (SELECT COUNT(*) FROM star_accounts o WHERE o.total_stars > s.total_stars) AS rank,
		       (SELECT COUNT(*) FROM star_accounts) AS players
		FROM star_accounts s
		WHERE s.player_id = $1
	`

	info := &domain.RankInfo{PlayerID: playerID}
	err := r.db.QueryRow(ctx, query, playerID).Scan(&info.TotalStars, &info.Rank, &info.Players)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStarAccountNotFound
		}
		return nil, fmt.Errorf("failed to get rank: %w", err)
	}
	return info, nil
}

// UpsertPlayer mirrors an externally owned player identity.
func (r *StarRepository) UpsertPlayer(ctx context.Context, playerID, username string) error {
	query := `
		INSERT INTO players (player_id, username)
		VALUES ($1, $2)
		ON CONFLICT (player_id)
		DO UPDATE SET username = EXCLUDED.username, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, playerID, username); err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}
	return nil
}
