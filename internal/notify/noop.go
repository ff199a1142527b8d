package notify

import (
	"context"
	"log/slog"

	"github.com/donaldgifford/localflipper/pkg/logger"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: logger.Component(log, "notify")}
}

// SendAlert logs and discards a single alert.
func (n *NoOpNotifier) SendAlert(_ context.Context, alert *AlertPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"search", alert.SearchName,
		"listing", alert.Title,
		"profit", alert.Profit,
	)
	return nil
}

// SendBatchAlert logs and discards a batch of alerts.
func (n *NoOpNotifier) SendBatchAlert(_ context.Context, alerts []AlertPayload, searchName string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"search", searchName,
		"count", len(alerts),
	)
	return nil
}
