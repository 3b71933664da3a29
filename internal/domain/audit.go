package domain

import "time"

// Audit action kinds recorded by the audit trail.
const (
	AuditActionRewardRequested  = "reward.requested"
	AuditActionRewardsRequested = "reward.bulk_requested"
	AuditActionRewardsAwarded   = "reward.awarded"
	AuditActionStarsAwarded     = "stars.awarded"
	AuditActionBadgeEarned      = "badge.earned"
)

// Audit target types.
const (
	AuditTargetReward        = "reward"
	AuditTargetBadgeProgress = "badge_progress"
	AuditTargetStarAccount   = "star_account"
)

// AuditEntry is one append-only record of a state-changing action. Before
// and After carry only the fields that changed; Details is a free-form
// payload attached by the operation.
type AuditEntry struct {
	ID          int64          `json:"id"`
	ActorID     string         `json:"actor_id"`
	ActorName   string         `json:"actor_name"`
	Action      string         `json:"action"`
	TargetType  string         `json:"target_type"`
	TargetID    string         `json:"target_id,omitempty"`
	TargetLabel string         `json:"target_label,omitempty"`
	Before      map[string]any `json:"before"`
	After       map[string]any `json:"after"`
	Details     map[string]any `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// AuditFilter narrows audit-trail reads.
type AuditFilter struct {
	ActorID    *string
	Action     *string
	TargetType *string
	TargetID   *string
	Since      *time.Time
	Until      *time.Time
	Limit      int
}
