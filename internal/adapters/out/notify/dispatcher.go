// Package notify provides the outbound notification adapter. The real delivery
// channel (email, messenger) lives outside this system; this adapter records
// every announcement in the structured log so operators can trace them.
package notify

import (
	"context"
	"log/slog"

	"workshop/internal/core/domain/model/order"
)

// SlogNotificationDispatcher implements ports.NotificationDispatcher by writing
// structured log records. It never fails, matching the fire-and-forget contract.
type SlogNotificationDispatcher struct {
	logger *slog.Logger
}

// NewSlogNotificationDispatcher creates a log-backed notification dispatcher.
func NewSlogNotificationDispatcher(logger *slog.Logger) *SlogNotificationDispatcher {
	return &SlogNotificationDispatcher{
		logger: logger.With("component", "notifications"),
	}
}

// OrderProcessing announces that production started for the order.
func (d *SlogNotificationDispatcher) OrderProcessing(ctx context.Context, o *order.Order) error {
	d.logger.InfoContext(ctx, "order entered production",
		"order_id", o.ID().String(),
		"order_number", o.Number(),
		"priority", o.Priority().String())
	return nil
}

// OrderReady announces that every item of the order reached Ready.
func (d *SlogNotificationDispatcher) OrderReady(ctx context.Context, o *order.Order) error {
	d.logger.InfoContext(ctx, "order ready to ship",
		"order_id", o.ID().String(),
		"order_number", o.Number())
	return nil
}
