package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starquiz/StarQuiz_Go/internal/database/schema"
)

// EnsureSchema applies the database schema at startup. Every statement is
// idempotent (CREATE TABLE IF NOT EXISTS) so this is safe to run on every
// boot against an already initialized database.
func EnsureSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	slog.Info(LogMsgApplyingSchema)

	if _, err := dbPool.Exec(ctx, schema.SchemaSQL); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedApplySchema, err)
	}

	slog.Info(LogMsgSchemaApplied)
	return nil
}
