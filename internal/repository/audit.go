package repository

import (
	"context"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// Audit defines the interface for audit-trail storage. Entries are
// append-only; there is no update or delete surface.
type Audit interface {
	// Insert stores one audit entry
	Insert(ctx context.Context, entry *domain.AuditEntry) error

	// List retrieves audit entries matching the filter, newest first
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}
