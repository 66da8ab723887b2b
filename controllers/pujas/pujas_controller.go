package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panditji-api/configs"
	"panditji-api/filestore"
	"panditji-api/models"
	"panditji-api/responses"
	"panditji-api/utils"
)

var pujaCollection *mongo.Collection = configs.GetCollection(configs.DB, "pujas")
var fileCatalog = filestore.New(configs.C.FileStorePath)

// GetAllPujas lists pujas newest-first. Public browsing never hard-fails:
// an empty or unreachable store serves the seed catalog instead.
func GetAllPujas(c *fiber.Ctx) error {
	if configs.C.DataBackend == "file" {
		return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched pujas",
			Result: &fiber.Map{
				"pujas": fileCatalog.ListPujas(),
			},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var pujas []models.Puja
	cursor, err := pujaCollection.Find(ctx, bson.M{}, findOptions)
	if err == nil {
		err = cursor.All(ctx, &pujas)
	}
	if err != nil || len(pujas) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("puja listing failed, serving seed catalog")
		}
		pujas = fileCatalog.ListPujas()
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched pujas",
		Result: &fiber.Map{
			"pujas": pujas,
		},
	})
}

func GetPuja(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid puja ID format",
			Result:  nil,
		})
	}

	var puja models.Puja
	err = pujaCollection.FindOne(ctx, bson.M{"_id": objectId}).Decode(&puja)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Puja not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching puja",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Puja fetched successfully",
		Result: &fiber.Map{
			"puja": puja,
		},
	})
}

// Only for admin
func CreatePuja(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var puja models.Puja
	if err := c.BodyParser(&puja); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing puja data",
			Result:  nil,
		})
	}

	if err := utils.Validate.Struct(puja); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing required fields",
			Result: &fiber.Map{
				"errors": utils.ValidationErrorMap(err),
			},
		})
	}

	if puja.PriceLabel == "" {
		puja.PriceLabel = "From"
	}
	if puja.CategorySlug == "" {
		puja.CategorySlug = utils.Slugify(puja.Category)
	}

	if configs.C.DataBackend == "file" {
		created, err := fileCatalog.CreatePuja(puja)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error saving puja",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
			Status:  fiber.StatusCreated,
			Message: "Puja created successfully",
			Result: &fiber.Map{
				"puja": created,
			},
		})
	}

	now := time.Now()
	puja.ID = primitive.NilObjectID
	puja.CreatedAt = now
	puja.UpdatedAt = now

	result, err := pujaCollection.InsertOne(ctx, puja)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting puja",
			Result:  nil,
		})
	}
	puja.ID = result.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Puja created successfully",
		Result: &fiber.Map{
			"puja": puja,
		},
	})
}

// Only for admin
func UpdatePuja(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid puja ID format",
			Result:  nil,
		})
	}

	payload := bson.M{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing puja data",
			Result:  nil,
		})
	}
	delete(payload, "_id")
	delete(payload, "createdAt")
	delete(payload, "reviews")
	payload["updatedAt"] = time.Now()

	var updated models.Puja
	err = pujaCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectId},
		bson.M{"$set": payload},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Puja not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating puja",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Puja updated successfully",
		Result: &fiber.Map{
			"puja": updated,
		},
	})
}

// Only for admin. Hard delete; bookings keep their denormalized pujaName.
func DeletePuja(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid puja ID format",
			Result:  nil,
		})
	}

	result, err := pujaCollection.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting puja",
			Result:  nil,
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Puja not found",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Puja deleted successfully",
		Result:  nil,
	})
}
