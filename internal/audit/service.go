package audit

import (
	"context"
	"time"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/event"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/repository"
)

// Service records and reads the audit trail. Record is deliberately
// error-free for callers: the audit trail is a side channel and its
// failures must never abort the mutation being described.
type Service interface {
	// Record persists one audit entry. Failures are logged and swallowed.
	Record(ctx context.Context, entry domain.AuditEntry)

	// List retrieves audit entries matching the filter, newest first
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)

	// Subscribe registers the audit recorder on the event bus so every
	// progression mutation is captured after it commits
	Subscribe(bus event.Bus) error
}

type service struct {
	repo repository.Audit
}

// NewService creates a new audit service
func NewService(repo repository.Audit) Service {
	return &service{repo: repo}
}

// Record persists one audit entry. Snapshots and details are normalized to
// the tagged document form first, so an empty diff stores as an empty
// document rather than an empty list. Never returns an error to the caller.
func (s *service) Record(ctx context.Context, entry domain.AuditEntry) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgRecordPanicked, "panic", r, "action", entry.Action)
		}
	}()

	entry.Before = NormalizeMap(entry.Before)
	entry.After = NormalizeMap(entry.After)
	if entry.Details != nil {
		entry.Details = NormalizeMap(entry.Details)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		log.Error(LogMsgRecordFailed, "error", err, "action", entry.Action, "target_type", entry.TargetType, "target_id", entry.TargetID)
		return
	}

	log.Debug(LogMsgRecorded, "action", entry.Action, "target_type", entry.TargetType, "target_id", entry.TargetID)
}

// List retrieves audit entries matching the filter
func (s *service) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	if filter.Limit <= 0 || filter.Limit > MaxListLimit {
		filter.Limit = DefaultListLimit
	}
	return s.repo.List(ctx, filter)
}

// Subscribe wires the audit recorder to every progression event type.
// Handlers always return nil: a failed audit write is logged inside Record
// and must not surface as a bus handler error.
func (s *service) Subscribe(bus event.Bus) error {
	bus.Subscribe(event.RewardRequested, s.handleRewardRequested)
	bus.Subscribe(event.RewardsRequested, s.handleRewardsRequested)
	bus.Subscribe(event.RewardsAwarded, s.handleRewardsAwarded)
	bus.Subscribe(event.StarsAwarded, s.handleStarsAwarded)
	bus.Subscribe(event.BadgeEarned, s.handleBadgeEarned)
	return nil
}

func (s *service) handleRewardRequested(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RewardRequestedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	changes := Diff(
		map[string]any{"state": string(domain.RewardUnclaimed)},
		map[string]any{"state": string(domain.RewardRequested)},
	)
	s.Record(ctx, domain.AuditEntry{
		ActorID:     payload.PlayerID,
		ActorName:   ActorPlayer,
		Action:      domain.AuditActionRewardRequested,
		TargetType:  domain.AuditTargetReward,
		TargetID:    payload.RewardID,
		TargetLabel: payload.Difficulty,
		Before:      changes.Before,
		After:       changes.After,
	})
	return nil
}

func (s *service) handleRewardsRequested(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RewardsRequestedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	changes := Diff(
		map[string]any{"state": string(domain.RewardUnclaimed)},
		map[string]any{"state": string(domain.RewardRequested)},
	)
	s.Record(ctx, domain.AuditEntry{
		ActorID:     payload.PlayerID,
		ActorName:   ActorPlayer,
		Action:      domain.AuditActionRewardsRequested,
		TargetType:  domain.AuditTargetReward,
		TargetLabel: payload.Difficulty,
		Before:      changes.Before,
		After:       changes.After,
		Details:     map[string]any{"count": payload.Count},
	})
	return nil
}

func (s *service) handleRewardsAwarded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RewardsAwardedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	// Awards target both unclaimed and requested rewards, so there is no
	// single prior state to snapshot; the diff carries the counter change
	// only.
	changes := Diff(
		map[string]any{"official_badge_count": payload.OfficialBadges - payload.Count},
		map[string]any{"official_badge_count": payload.OfficialBadges},
	)
	s.Record(ctx, domain.AuditEntry{
		ActorID:     payload.AdminID,
		ActorName:   payload.AdminName,
		Action:      domain.AuditActionRewardsAwarded,
		TargetType:  domain.AuditTargetBadgeProgress,
		TargetID:    payload.PlayerID,
		TargetLabel: payload.Difficulty,
		Before:      changes.Before,
		After:       changes.After,
		Details:     map[string]any{"rewards_awarded": payload.Count},
	})
	return nil
}

func (s *service) handleStarsAwarded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.StarsAwardedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	changes := Diff(
		map[string]any{"total_stars": payload.PreviousStars},
		map[string]any{"total_stars": payload.TotalStars},
	)
	s.Record(ctx, domain.AuditEntry{
		ActorID:    payload.PlayerID,
		ActorName:  ActorPlayer,
		Action:     domain.AuditActionStarsAwarded,
		TargetType: domain.AuditTargetStarAccount,
		TargetID:   payload.PlayerID,
		Before:     changes.Before,
		After:      changes.After,
		Details:    map[string]any{"stars_earned": payload.StarsEarned, "tier": payload.Tier},
	})
	return nil
}

func (s *service) handleBadgeEarned(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.BadgeEarnedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	changes := Diff(
		map[string]any{"lifetime_earned_count": payload.LifetimeCount - 1},
		map[string]any{"lifetime_earned_count": payload.LifetimeCount},
	)
	s.Record(ctx, domain.AuditEntry{
		ActorID:     payload.PlayerID,
		ActorName:   ActorGameFlow,
		Action:      domain.AuditActionBadgeEarned,
		TargetType:  domain.AuditTargetBadgeProgress,
		TargetID:    payload.PlayerID,
		TargetLabel: payload.Difficulty,
		Before:      changes.Before,
		After:       changes.After,
	})
	return nil
}
