package services

import (
	"context"
	"log"
	"time"

	"github.com/ELWAANY111/Verto-Store55/models"
	"github.com/ELWAANY111/Verto-Store55/repositories"
)

// Notifier dispatches an admin notification for a newly created order.
// Implementations may queue the notification or deliver it directly.
type Notifier interface {
	NotifyOrderCreated(order *models.Order) error
}

// OrderService handles checkout submissions: validation, server-side total
// computation, persistence and notification dispatch.
type OrderService struct {
	repo     repositories.OrderRepository
	notifier Notifier
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository, notifier Notifier) *OrderService {
	return &OrderService{
		repo:     repo,
		notifier: notifier,
	}
}

// Create validates the checkout payload, recomputes the total price from the
// cart items and persists the order. The admin notification is dispatched
// after the order is saved; a dispatch failure is logged and does not fail
// the submission.
func (s *OrderService) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	if err := validate.Struct(order); err != nil {
		return nil, NewValidationError("Missing required order fields")
	}

	// The client-sent total is never trusted.
	var total float64
	for _, item := range order.CartItems {
		total += item.Price * float64(item.Quantity)
	}
	order.TotalPrice = total
	order.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, &order); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyOrderCreated(&order); err != nil {
			log.Printf("Warning: failed to dispatch notification for order %s: %v", order.ID.Hex(), err)
		}
	}

	return &order, nil
}

// GetAll retrieves all submitted orders.
func (s *OrderService) GetAll(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}
