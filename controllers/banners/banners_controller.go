package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panditji-api/configs"
	"panditji-api/models"
	"panditji-api/responses"
)

var bannerCollection *mongo.Collection = configs.GetCollection(configs.DB, "banners")

// GetBanners returns all banners newest-first, or with ?active=true the
// single most-recently-created active banner (null result when none is).
func GetBanners(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.Query("active") == "true" {
		var banner models.Banner
		err := bannerCollection.FindOne(
			ctx,
			bson.M{"isActive": true},
			options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
		).Decode(&banner)
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
				Status:  fiber.StatusOK,
				Message: "No active banner",
				Result: &fiber.Map{
					"banner": nil,
				},
			})
		} else if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching banner",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched active banner",
			Result: &fiber.Map{
				"banner": banner,
			},
		})
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var banners []models.Banner
	cursor, err := bannerCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching banners",
			Result:  nil,
		})
	}
	if err = cursor.All(ctx, &banners); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing banners",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched banners",
		Result: &fiber.Map{
			"banners": banners,
		},
	})
}

// Only for admin. Creating an active banner deactivates every other
// banner first, so that after this call returns exactly one banner is
// active.
func CreateBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageUrl    string `json:"imageUrl"`
		IsActive    *bool  `json:"isActive"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing banner data",
			Result:  nil,
		})
	}

	if reqBody.ImageUrl == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "imageUrl is required",
			Result:  nil,
		})
	}

	isActive := resolveActive(reqBody.IsActive)

	if isActive {
		if err := deactivateOthers(ctx, bannerCollection, primitive.NilObjectID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error deactivating banners",
				Result:  nil,
			})
		}
	}

	now := time.Now()
	banner := models.Banner{
		Title:       reqBody.Title,
		Description: reqBody.Description,
		ImageUrl:    reqBody.ImageUrl,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := bannerCollection.InsertOne(ctx, banner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting banner",
			Result:  nil,
		})
	}
	banner.ID = result.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Banner created successfully",
		Result: &fiber.Map{
			"banner": banner,
		},
	})
}

// Only for admin. Setting isActive=true deactivates every other banner
// once the target write succeeds; a missing id fails before any other
// banner is touched.
func UpdateBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid banner ID format",
			Result:  nil,
		})
	}

	var reqBody struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		ImageUrl    *string `json:"imageUrl"`
		IsActive    *bool   `json:"isActive"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing banner data",
			Result:  nil,
		})
	}

	set := bson.M{"updatedAt": time.Now()}
	if reqBody.Title != nil {
		set["title"] = *reqBody.Title
	}
	if reqBody.Description != nil {
		set["description"] = *reqBody.Description
	}
	if reqBody.ImageUrl != nil {
		if *reqBody.ImageUrl == "" {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "imageUrl cannot be empty",
				Result:  nil,
			})
		}
		set["imageUrl"] = *reqBody.ImageUrl
	}
	if reqBody.IsActive != nil {
		set["isActive"] = *reqBody.IsActive
	}

	updated, err := updateBanner(ctx, bannerCollection, objectId, set)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Banner not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating banner",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Banner updated successfully",
		Result: &fiber.Map{
			"banner": updated,
		},
	})
}

// Only for admin
func DeleteBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid banner ID format",
			Result:  nil,
		})
	}

	result, err := bannerCollection.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting banner",
			Result:  nil,
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Banner not found",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Banner deleted successfully",
		Result:  nil,
	})
}
