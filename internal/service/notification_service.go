package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/events"
)

// NotificationService turns domain events into user-facing notifications.
// Delivery is a logging stub; a real mail/webhook sender would slot in here.
type NotificationService struct {
	logger *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger) *NotificationService {
	return &NotificationService{logger: logger}
}

// Deliver handles one event. Unknown event types are logged and skipped.
func (n *NotificationService) Deliver(_ context.Context, event events.Event) {
	switch event.Type {
	case events.EventUserRegistered:
		n.logger.Info("notify: user registered",
			zap.String("user_id", event.UserID),
			zap.Any("payload", event.Payload))
	case events.EventOrderPlaced:
		n.logger.Info("notify: order placed",
			zap.String("order_id", event.EntityID),
			zap.String("user_id", event.UserID),
			zap.Any("payload", event.Payload))
	case events.EventOrderStatusChanged:
		n.logger.Info("notify: order status changed",
			zap.String("order_id", event.EntityID),
			zap.Any("payload", event.Payload))
	default:
		n.logger.Warn("notify: unhandled event type", zap.String("type", string(event.Type)))
	}
}
