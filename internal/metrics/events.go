package metrics

import (
	"context"

	"github.com/starquiz/StarQuiz_Go/internal/event"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BadgeEarned,
		event.RewardCycleCompleted,
		event.RewardRequested,
		event.RewardsRequested,
		event.RewardsAwarded,
		event.StarsAwarded,
		event.StarMilestone,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Decode failures are
// logged and skipped; metrics must never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BadgeEarned:
		payload, err := event.DecodePayload[event.BadgeEarnedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailure, "type", evt.Type, "error", err)
			return nil
		}
		BadgesEarned.WithLabelValues(payload.Difficulty).Inc()

	case event.RewardCycleCompleted:
		payload, err := event.DecodePayload[event.RewardCycleCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailure, "type", evt.Type, "error", err)
			return nil
		}
		RewardsMinted.WithLabelValues(payload.Difficulty).Inc()

	case event.RewardRequested:
		payload, err := event.DecodePayload[event.RewardRequestedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailure, "type", evt.Type, "error", err)
			return nil
		}
		RewardsRequested.WithLabelValues(payload.Difficulty).Inc()

	case event.RewardsRequested:
		payload, err := event.DecodePayload[event.RewardsRequestedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailure, "type", evt.Type, "error", err)
			return nil
		}
		RewardsRequested.WithLabelValues(payload.Difficulty).Add(float64(payload.Count))

	case event.RewardsAwarded:
		payload, err := event.DecodePayload[event.RewardsAwardedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailure, "type", evt.Type, "error", err)
			return nil
		}
		RewardsAwarded.WithLabelValues(payload.Difficulty).Add(float64(payload.Count))

	case event.StarsAwarded:
		payload, err := event.DecodePayload[event.StarsAwardedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailure, "type", evt.Type, "error", err)
			return nil
		}
		StarsAwarded.Add(float64(payload.StarsEarned))

	case event.StarMilestone:
		payload, err := event.DecodePayload[event.StarMilestonePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailure, "type", evt.Type, "error", err)
			return nil
		}
		MilestonesReached.WithLabelValues(payload.Tier).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
