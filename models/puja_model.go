package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JapaOption is a selectable chant-count variant. No price delta is
// attached; the option only travels with the booking.
type JapaOption struct {
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

type Specification struct {
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

type Review struct {
	User    string `json:"user" bson:"user" validate:"required"`
	Rating  int    `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" bson:"comment" validate:"required"`
	Date    string `json:"date" bson:"date"`
}

type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// Puja is a bookable ritual service.
type Puja struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	LegacyID         string             `json:"id,omitempty" bson:"id,omitempty"`
	Name             string             `json:"name" bson:"name" validate:"required"`
	Price            float64            `json:"price" bson:"price" validate:"required,gt=0"`
	PriceLabel       string             `json:"priceLabel" bson:"priceLabel"`
	Category         string             `json:"category" bson:"category" validate:"required"`
	CategorySlug     string             `json:"categorySlug" bson:"categorySlug"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	Video            string             `json:"video,omitempty" bson:"video,omitempty"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription"`
	FullDescription  string             `json:"fullDescription" bson:"fullDescription"`
	Duration         string             `json:"duration" bson:"duration"`
	SKU              string             `json:"sku" bson:"sku"`
	JapaOptions      []JapaOption       `json:"japaOptions" bson:"japaOptions"`
	Specifications   []Specification    `json:"specifications" bson:"specifications"`
	Reviews          []Review           `json:"reviews" bson:"reviews"`
	FAQs             []FAQ              `json:"faqs" bson:"faqs"`
	Features         []string           `json:"features" bson:"features"`
	CreatedAt        time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt        time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
