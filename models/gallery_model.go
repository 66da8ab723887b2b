package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GalleryItem struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Description string             `json:"description" bson:"description"`
	MediaUrl    string             `json:"mediaUrl" bson:"mediaUrl" validate:"required"`
	MediaType   string             `json:"mediaType" bson:"mediaType" validate:"required,oneof=image video"`
	Thumbnail   string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Category    string             `json:"category" bson:"category"`
	UploadedAt  time.Time          `json:"uploadedAt,omitempty" bson:"uploadedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
