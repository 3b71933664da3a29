package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// AuditRepository implements the append-only audit trail for PostgreSQL
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert stores one audit entry
func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_log (action, actor_id, actor_name, target_type, target_id,
			target_label, changes_before, changes_after, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	beforeJSON, err := json.Marshal(entry.Before)
	if err != nil {
		return fmt.Errorf("failed to marshal audit before: %w", err)
	}
	afterJSON, err := json.Marshal(entry.After)
	if err != nil {
		return fmt.Errorf("failed to marshal audit after: %w", err)
	}

	var detailsJSON []byte
	if entry.Details != nil {
		detailsJSON, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal audit details: %w", err)
		}
	}

	err = r.db.QueryRow(ctx, query,
		entry.Action, entry.ActorID, entry.ActorName, entry.TargetType,
		nullable(entry.TargetID), nullable(entry.TargetLabel),
		beforeJSON, afterJSON, detailsJSON, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

// List retrieves audit entries matching the filter, newest first
func (r *AuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, action, actor_id, actor_name, target_type, target_id,
			target_label, changes_before, changes_after, details, created_at
		FROM audit_log
		WHERE 1=1`)

	args := []any{}
	argNum := 1

	if filter.ActorID != nil {
		fmt.Fprintf(&queryBuilder, " AND actor_id = $%d", argNum)
		args = append(args, *filter.ActorID)
		argNum++
	}
	if filter.Action != nil {
		fmt.Fprintf(&queryBuilder, " AND action = $%d", argNum)
		args = append(args, *filter.Action)
		argNum++
	}
	if filter.TargetType != nil {
		fmt.Fprintf(&queryBuilder, " AND target_type = $%d", argNum)
		args = append(args, *filter.TargetType)
		argNum++
	}
	if filter.TargetID != nil {
		fmt.Fprintf(&queryBuilder, " AND target_id = $%d", argNum)
		args = append(args, *filter.TargetID)
		argNum++
	}
	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}
	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	return scanAuditEntries(rows)
}

func scanAuditEntries(rows pgx.Rows) ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry

	for rows.Next() {
		var entry domain.AuditEntry
		var actorName, targetID, targetLabel *string
		var beforeJSON, afterJSON, detailsJSON []byte

		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.ActorID,
			&actorName,
			&entry.TargetType,
			&targetID,
			&targetLabel,
			&beforeJSON,
			&afterJSON,
			&detailsJSON,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if actorName != nil {
			entry.ActorName = *actorName
		}
		if targetID != nil {
			entry.TargetID = *targetID
		}
		if targetLabel != nil {
			entry.TargetLabel = *targetLabel
		}
		if len(beforeJSON) > 0 {
			if err := json.Unmarshal(beforeJSON, &entry.Before); err != nil {
				return nil, err
			}
		}
		if len(afterJSON) > 0 {
			if err := json.Unmarshal(afterJSON, &entry.After); err != nil {
				return nil, err
			}
		}
		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &entry.Details); err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// nullable maps empty strings to SQL NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
