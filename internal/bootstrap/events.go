package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/starquiz/StarQuiz_Go/internal/audit"
	"github.com/starquiz/StarQuiz_Go/internal/event"
	"github.com/starquiz/StarQuiz_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus that carries every
// progression mutation to its subscribers.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based business metrics)
// - Audit recorder (persists every mutation to the audit trail)
func RegisterEventHandlers(eventBus event.Bus, auditService audit.Service) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := auditService.Subscribe(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeAudit, err)
	}
	slog.Info(LogMsgAuditRecorderInitialized)

	return nil
}
