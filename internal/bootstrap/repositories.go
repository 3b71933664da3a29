package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starquiz/StarQuiz_Go/internal/database/postgres"
	"github.com/starquiz/StarQuiz_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Badge  repository.Badge
	Reward repository.Reward
	Star   repository.Star
	Audit  repository.Audit
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Badge:  postgres.NewBadgeRepository(dbPool),
		Reward: postgres.NewRewardRepository(dbPool),
		Star:   postgres.NewStarRepository(dbPool),
		Audit:  postgres.NewAuditRepository(dbPool),
	}
}
