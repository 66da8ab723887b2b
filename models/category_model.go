package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	// LegacyID is the client-assigned string id carried over from the
	// flat-file era. The store-assigned _id is canonical; this field only
	// keys the file store and dedupe against seeds.
	LegacyID     string    `json:"id,omitempty" bson:"id,omitempty"`
	Name         string    `json:"name" bson:"name" validate:"required"`
	Slug         string    `json:"slug" bson:"slug"`
	Description  string    `json:"description" bson:"description"`
	ShowOnNavbar bool      `json:"showOnNavbar" bson:"showOnNavbar"`
	IsService    bool      `json:"isService" bson:"isService"`
	IsProduct    bool      `json:"isProduct" bson:"isProduct"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
