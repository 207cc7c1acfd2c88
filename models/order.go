package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a single line of an order. Price is a snapshot taken at
// checkout so later catalog changes do not rewrite historical totals.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Price     float64            `bson:"price" json:"price" validate:"gte=0"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,gte=1"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName      string             `bson:"fullName" json:"fullName" validate:"required"`
	Address       string             `bson:"address" json:"address" validate:"required"`
	City          string             `bson:"city" json:"city" validate:"required"`
	ZipCode       string             `bson:"zipCode" json:"zipCode" validate:"required"`
	Phone         string             `bson:"phone" json:"phone" validate:"required"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	CartItems     []CartItem         `bson:"cartItems" json:"cartItems" validate:"required,min=1,dive"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"` // always recomputed server-side
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
