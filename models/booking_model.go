package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// IsValidBookingStatus reports whether s is one of the four booking
// states. Any valid status may be set from any other; there is no
// transition graph.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking records a submitted puja booking. PujaName is denormalized so
// the record survives deletion of the referenced puja; PujaID is kept as
// an unenforced reference.
type Booking struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PujaID          string             `json:"pujaId,omitempty" bson:"pujaId,omitempty"`
	PujaName        string             `json:"pujaName" bson:"pujaName" validate:"required"`
	CustomerName    string             `json:"customerName" bson:"customerName" validate:"required"`
	CustomerEmail   string             `json:"customerEmail" bson:"customerEmail" validate:"required,email"`
	CustomerPhone   string             `json:"customerPhone" bson:"customerPhone" validate:"required"`
	CustomerAddress string             `json:"customerAddress,omitempty" bson:"customerAddress,omitempty"`
	Date            string             `json:"date" bson:"date" validate:"required"`
	BookingTime     string             `json:"bookingTime,omitempty" bson:"bookingTime,omitempty"`
	Japa            string             `json:"japa,omitempty" bson:"japa,omitempty"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	TotalPrice      float64            `json:"totalPrice" bson:"totalPrice" validate:"required,gt=0"`
	Status          string             `json:"status" bson:"status"`
	EmailSent       bool               `json:"emailSent" bson:"emailSent"`
	CreatedAt       time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
