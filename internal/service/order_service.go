package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// OrderService manages order placement and status tracking.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// Place stores a new order with the client-supplied totals and emits an
// order_placed event.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.Status = domain.OrderStatusPlaced
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.MapError(err)
	}

	stored, err := s.orders.GetByID(ctx, order.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderPlaced,
			EntityID:  stored.ID,
			UserID:    stored.UserID,
			Timestamp: time.Now(),
			Payload: events.OrderPlacedPayload{
				GrandTotal:  stored.GrandTotal.String(),
				PaymentType: stored.PaymentType,
				ItemCount:   len(stored.Items),
			},
		})
	}
	return stored, nil
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return orders, nil
}

// ListMine returns the user's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status and returns the refreshed
// record.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("No Order found")
		}
		return nil, apperrors.MapError(err)
	}

	oldStatus := order.Status
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderStatusChanged,
			EntityID:  orderID,
			UserID:    order.UserID,
			Timestamp: time.Now(),
			Payload:   events.OrderStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
		})
	}

	updated, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}
