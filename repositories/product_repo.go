package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ELWAANY111/Verto-Store55/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Delete removes the product and returns the deleted record.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// AddReview appends a review and stores the recomputed mean rating.
	AddReview(ctx context.Context, id primitive.ObjectID, review models.Review, rating float64) error
}
