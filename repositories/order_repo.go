package repositories

import (
	"context"

	"github.com/ELWAANY111/Verto-Store55/models"
)

// OrderRepository defines the interface for order data access. Orders are
// immutable once created, so there is no update or delete path.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
}
