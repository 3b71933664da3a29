package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Progression event types
const (
	BadgeEarned          Type = "badge.earned"
	RewardCycleCompleted Type = "reward.cycle_completed"
	RewardRequested      Type = "reward.requested"
	RewardsRequested     Type = "reward.bulk_requested"
	RewardsAwarded       Type = "reward.awarded"
	StarsAwarded         Type = "stars.awarded"
	StarMilestone        Type = "star.milestone"
)

// Typed event payloads for type safety

// BadgeEarnedPayloadV1 is the typed payload for badge earned events
type BadgeEarnedPayloadV1 struct {
	PlayerID      string `json:"player_id"`
	Difficulty    string `json:"difficulty"`
	LifetimeCount int    `json:"lifetime_count"`
	Timestamp     int64  `json:"timestamp"`
}

// RewardCycleCompletedPayloadV1 is the typed payload for cycle completion events
type RewardCycleCompletedPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	Difficulty  string `json:"difficulty"`
	RewardID    string `json:"reward_id"`
	BadgeNumber int    `json:"badge_number"`
}

// RewardRequestedPayloadV1 is the typed payload for single reward requests
type RewardRequestedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	RewardID   string `json:"reward_id"`
	Difficulty string `json:"difficulty"`
}

// RewardsRequestedPayloadV1 is the typed payload for bulk reward requests
type RewardsRequestedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// RewardsAwardedPayloadV1 is the typed payload for administrative awards
type RewardsAwardedPayloadV1 struct {
	PlayerID       string `json:"player_id"`
	Difficulty     string `json:"difficulty"`
	Count          int    `json:"count"`
	OfficialBadges int    `json:"official_badges"`
	AdminID        string `json:"admin_id"`
	AdminName      string `json:"admin_name"`
}

// StarsAwardedPayloadV1 is the typed payload for star awards
type StarsAwardedPayloadV1 struct {
	PlayerID      string `json:"player_id"`
	StarsEarned   int    `json:"stars_earned"`
	PreviousStars int    `json:"previous_stars"`
	TotalStars    int    `json:"total_stars"`
	Tier          string `json:"tier"`
}

// StarMilestonePayloadV1 is the typed payload for tier crossing events
type StarMilestonePayloadV1 struct {
	PlayerID           string `json:"player_id"`
	Tier               string `json:"tier"`
	StarsAtAchievement int    `json:"stars_at_achievement"`
	Timestamp          int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewBadgeEarnedEvent creates a new badge earned event
func NewBadgeEarnedEvent(playerID string, difficulty domain.Difficulty, lifetimeCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeEarned,
		Payload: BadgeEarnedPayloadV1{
			PlayerID:      playerID,
			Difficulty:    string(difficulty),
			LifetimeCount: lifetimeCount,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRewardCycleCompletedEvent creates a new cycle completion event
func NewRewardCycleCompletedEvent(reward domain.Reward) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardCycleCompleted,
		Payload: RewardCycleCompletedPayloadV1{
			PlayerID:    reward.PlayerID,
			Difficulty:  string(reward.Difficulty),
			RewardID:    reward.ID,
			BadgeNumber: reward.BadgeNumber,
		},
		Metadata: nil,
	}
}

// NewRewardRequestedEvent creates a new reward requested event
func NewRewardRequestedEvent(playerID, rewardID string, difficulty domain.Difficulty) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardRequested,
		Payload: RewardRequestedPayloadV1{
			PlayerID:   playerID,
			RewardID:   rewardID,
			Difficulty: string(difficulty),
		},
		Metadata: nil,
	}
}

// NewRewardsRequestedEvent creates a new bulk reward requested event
func NewRewardsRequestedEvent(playerID string, difficulty domain.Difficulty, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardsRequested,
		Payload: RewardsRequestedPayloadV1{
			PlayerID:   playerID,
			Difficulty: string(difficulty),
			Count:      count,
		},
		Metadata: nil,
	}
}

// NewRewardsAwardedEvent creates a new administrative award event
func NewRewardsAwardedEvent(result domain.AwardResult, admin domain.Admin) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardsAwarded,
		Payload: RewardsAwardedPayloadV1{
			PlayerID:       result.PlayerID,
			Difficulty:     string(result.Difficulty),
			Count:          result.RewardsAwarded,
			OfficialBadges: result.OfficialBadges,
			AdminID:        admin.ID,
			AdminName:      admin.Name,
		},
		Metadata: nil,
	}
}

// NewStarsAwardedEvent creates a new star award event
func NewStarsAwardedEvent(result domain.StarAwardResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StarsAwarded,
		Payload: StarsAwardedPayloadV1{
			PlayerID:      result.PlayerID,
			StarsEarned:   result.StarsEarned,
			PreviousStars: result.PreviousStars,
			TotalStars:    result.TotalStars,
			Tier:          result.CurrentTier.Key,
		},
		Metadata: nil,
	}
}

// NewStarMilestoneEvent creates a new tier crossing event
func NewStarMilestoneEvent(milestone domain.Milestone) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StarMilestone,
		Payload: StarMilestonePayloadV1{
			PlayerID:           milestone.PlayerID,
			Tier:               milestone.TierKey,
			StarsAtAchievement: milestone.StarsAtAchievement,
			Timestamp:          milestone.AchievedAt.Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// their errors are collected so one failing subscriber cannot hide another.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
