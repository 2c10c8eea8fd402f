package ports

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// NotificationDispatcher announces order status changes to interested parties.
// Dispatch is fire-and-forget from the scan workflow's point of view; a failed
// notification never fails the scan.
type NotificationDispatcher interface {
	// OrderProcessing announces that production started for the order.
	OrderProcessing(ctx context.Context, o *order.Order) error

	// OrderReady announces that every item of the order reached Ready.
	OrderReady(ctx context.Context, o *order.Order) error
}
