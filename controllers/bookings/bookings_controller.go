package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panditji-api/configs"
	"panditji-api/mailer"
	"panditji-api/models"
	"panditji-api/responses"
	"panditji-api/utils"
)

var bookingCollection *mongo.Collection = configs.GetCollection(configs.DB, "bookings")

var notifier = mailer.New(
	configs.C.SMTPHost,
	configs.C.SMTPPort,
	configs.C.SMTPUsername,
	configs.C.SMTPPassword,
	configs.C.MailFrom,
	configs.C.BookingNotifyTo,
)

// CreateBooking persists the booking, then attempts the operator
// notification mail. The mail is best-effort: a failed send is logged and
// reflected in emailSent, never in the response status. The referenced
// pujaId is not checked against the pujas collection; pujaName is the
// authoritative label.
func CreateBooking(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing booking data",
			Result:  nil,
		})
	}

	if err := utils.Validate.Struct(booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing required fields",
			Result: &fiber.Map{
				"errors": utils.ValidationErrorMap(err),
			},
		})
	}

	if booking.Quantity <= 0 {
		booking.Quantity = 1
	}
	booking.ID = primitive.NilObjectID
	booking.Status = models.BookingStatusPending
	booking.EmailSent = false

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	result, err := bookingCollection.InsertOne(ctx, booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error creating booking",
			Result:  nil,
		})
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)

	if err := notifier.SendBookingNotification(booking); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			log.Debug().Msg("booking notification skipped, smtp not configured")
		} else {
			log.Warn().Err(err).Str("bookingId", booking.ID.Hex()).Msg("booking notification failed")
		}
	} else {
		booking.EmailSent = true
		if _, err := bookingCollection.UpdateByID(ctx, booking.ID, bson.M{"$set": bson.M{"emailSent": true}}); err != nil {
			log.Warn().Err(err).Str("bookingId", booking.ID.Hex()).Msg("failed to record emailSent")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Result: &fiber.Map{
			"booking":   booking,
			"emailSent": booking.EmailSent,
		},
	})
}

// Only for admin
func GetAllBookings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var bookings []models.Booking
	cursor, err := bookingCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching bookings",
			Result:  nil,
		})
	}
	if err = cursor.All(ctx, &bookings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing bookings",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched bookings",
		Result: &fiber.Map{
			"bookings": bookings,
		},
	})
}

// Only for admin. Any status may be set from any other; there is no
// transition graph.
func UpdateBookingStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking ID format",
			Result:  nil,
		})
	}

	var reqBody struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing booking data",
			Result:  nil,
		})
	}

	if !models.IsValidBookingStatus(reqBody.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking status",
			Result:  nil,
		})
	}

	var updated models.Booking
	err = bookingCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectId},
		bson.M{"$set": bson.M{"status": reqBody.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating booking",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully",
		Result: &fiber.Map{
			"booking": updated,
		},
	})
}
