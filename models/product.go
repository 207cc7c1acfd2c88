package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockEntry records the quantity on hand for a single size/variant.
type StockEntry struct {
	Size     string `bson:"size" json:"size"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// Review is a customer review attached to a product.
type Review struct {
	User    string  `bson:"user" json:"user"`
	Rating  float64 `bson:"rating" json:"rating" validate:"required,gte=1,lte=5"`
	Comment string  `bson:"comment" json:"comment"`
}

type Product struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Description         string             `bson:"description" json:"description"`
	PriceBeforeDiscount float64            `bson:"priceBeforeDiscount" json:"priceBeforeDiscount"`
	PriceAfterDiscount  float64            `bson:"priceAfterDiscount" json:"priceAfterDiscount"`
	Category            string             `bson:"category" json:"category"`
	Brand               string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Stock               []StockEntry       `bson:"stock" json:"stock"`
	Images              []string           `bson:"images" json:"images"`
	Sizes               []string           `bson:"sizes" json:"sizes"`
	Colors              []string           `bson:"colors" json:"colors"`
	Reviews             []Review           `bson:"reviews" json:"reviews"`
	Rating              float64            `bson:"rating" json:"rating"` // mean of review ratings
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
