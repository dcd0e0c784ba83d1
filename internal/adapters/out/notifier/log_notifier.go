// Package notifier provides the fallback notification sink used when no
// broker is configured.
package notifier

import (
	"context"
	"log/slog"

	"sharebite/internal/core/ports"
)

// LogNotifier writes lifecycle events to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

// Notify logs the event. Never fails.
func (n *LogNotifier) Notify(_ context.Context, event ports.LifecycleEvent) error {
	n.logger.Info("post lifecycle event",
		"postId", event.PostID,
		"transition", event.Transition,
		"state", event.State,
		"ngoId", event.NgoID,
		"deliveryId", event.DeliveryID,
		"occurredAt", event.OccurredAt,
	)
	return nil
}
