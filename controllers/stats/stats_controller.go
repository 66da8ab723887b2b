package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"panditji-api/configs"
	"panditji-api/models"
	"panditji-api/responses"
)

var pujaCollection *mongo.Collection = configs.GetCollection(configs.DB, "pujas")
var bookingCollection *mongo.Collection = configs.GetCollection(configs.DB, "bookings")

// GetDashboardStats returns puja/booking counts and the revenue summed
// over confirmed and completed bookings. The dashboard must never
// hard-fail: any store error degrades to zeros plus an error field,
// always HTTP 200.
func GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalPujas, err := pujaCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return degradedStats(c, err)
	}

	totalBookings, err := bookingCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return degradedStats(c, err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": bson.M{"$in": []string{models.BookingStatusConfirmed, models.BookingStatusCompleted}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalPrice"},
		}}},
	}

	cursor, err := bookingCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return degradedStats(c, err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return degradedStats(c, err)
	}

	totalRevenue := 0.0
	if len(rows) > 0 {
		totalRevenue = rows[0].Total
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched stats",
		Result: &fiber.Map{
			"totalPujas":    totalPujas,
			"totalBookings": totalBookings,
			"totalRevenue":  totalRevenue,
		},
	})
}

func degradedStats(c *fiber.Ctx, err error) error {
	log.Warn().Err(err).Msg("stats query failed, serving zeros")
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched stats",
		Result: &fiber.Map{
			"totalPujas":    0,
			"totalBookings": 0,
			"totalRevenue":  0,
			"error":         err.Error(),
		},
	})
}
