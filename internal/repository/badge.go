package repository

import (
	"context"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// Badge defines the interface for badge-progress persistence
type Badge interface {
	// IncrementEarned atomically increments the lifetime earned count for
	// one player/difficulty, creating the progress row on first use. When
	// the new count is a positive multiple of the cycle length it mints one
	// unclaimed reward in the same transaction. Returns the new count and
	// the minted reward, nil when no cycle completed.
	IncrementEarned(ctx context.Context, playerID string, difficulty domain.Difficulty) (int, *domain.Reward, error)

	// GetProgress retrieves the progress row for one player/difficulty
	GetProgress(ctx context.Context, playerID string, difficulty domain.Difficulty) (*domain.BadgeProgress, error)

	// GetAllProgress retrieves progress rows for all difficulties of a player
	GetAllProgress(ctx context.Context, playerID string) ([]domain.BadgeProgress, error)
}
