package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panditji-api/models"
	"panditji-api/responses"
	"panditji-api/utils"
)

// AddPujaReview appends a review to a puja. The puja is looked up by its
// store id first; the legacy string id is kept as a migration alias for
// documents imported from the flat-file era.
func AddPujaReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing review data",
			Result:  nil,
		})
	}

	if err := utils.Validate.Struct(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Review requires user, rating and comment",
			Result: &fiber.Map{
				"errors": utils.ValidationErrorMap(err),
			},
		})
	}

	if review.Date == "" {
		review.Date = time.Now().Format("Jan 02, 2006")
	}

	idParam := c.Params("id")
	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Puja
	err := mongo.ErrNoDocuments
	if objectId, hexErr := primitive.ObjectIDFromHex(idParam); hexErr == nil {
		err = pujaCollection.FindOneAndUpdate(ctx, bson.M{"_id": objectId}, update, opts).Decode(&updated)
	}
	if err == mongo.ErrNoDocuments {
		// Migration alias: retry by the legacy string id.
		err = pujaCollection.FindOneAndUpdate(ctx, bson.M{"id": idParam}, update, opts).Decode(&updated)
	}
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Puja not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving review",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Review added successfully",
		Result: &fiber.Map{
			"reviews": updated.Reviews,
		},
	})
}
