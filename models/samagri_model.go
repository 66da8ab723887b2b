package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StockStatusIn  = "in_stock"
	StockStatusOut = "out_of_stock"
)

// Samagri is a purchasable physical ritual item.
type Samagri struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	Price        float64            `json:"price" bson:"price" validate:"required,gt=0"`
	Discount     float64            `json:"discount" bson:"discount" validate:"min=0,max=100"`
	Category     string             `json:"category" bson:"category" validate:"required"`
	CategorySlug string             `json:"categorySlug" bson:"categorySlug"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	Description  string             `json:"description" bson:"description"`
	SKU          string             `json:"sku" bson:"sku"`
	StockStatus  string             `json:"stockStatus" bson:"stockStatus" validate:"omitempty,oneof=in_stock out_of_stock"`
	CreatedAt    time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
