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

var categoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "categories")
var fileCatalog = filestore.New(configs.C.FileStorePath)

// GetAllCategories lists categories sorted by name. The public catalog is
// never empty and never hard-fails: on a store error (or when the file
// backend is selected) it serves the seed-merged file store instead.
func GetAllCategories(c *fiber.Ctx) error {
	if configs.C.DataBackend == "file" {
		return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched categories",
			Result: &fiber.Map{
				"categories": fileCatalog.ListCategories(),
			},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	var categories []models.Category
	cursor, err := categoryCollection.Find(ctx, bson.M{}, findOptions)
	if err == nil {
		err = cursor.All(ctx, &categories)
	}
	if err != nil || len(categories) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("category listing failed, serving seed catalog")
		}
		categories = fileCatalog.ListCategories()
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched categories",
		Result: &fiber.Map{
			"categories": categories,
		},
	})
}

// Only for admin
func CreateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		Description  string `json:"description"`
		ShowOnNavbar bool   `json:"showOnNavbar"`
		IsService    *bool  `json:"isService"`
		IsProduct    bool   `json:"isProduct"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing category data",
			Result:  nil,
		})
	}

	isService := true
	if reqBody.IsService != nil {
		isService = *reqBody.IsService
	}

	category := models.Category{
		Name:         reqBody.Name,
		Slug:         reqBody.Slug,
		Description:  reqBody.Description,
		ShowOnNavbar: reqBody.ShowOnNavbar,
		IsService:    isService,
		IsProduct:    reqBody.IsProduct,
	}

	if err := utils.Validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing required fields",
			Result: &fiber.Map{
				"errors": utils.ValidationErrorMap(err),
			},
		})
	}

	if category.Slug == "" {
		category.Slug = utils.Slugify(category.Name)
	}

	if configs.C.DataBackend == "file" {
		created, err := fileCatalog.CreateCategory(category)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error saving category",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
			Status:  fiber.StatusCreated,
			Message: "Category created successfully",
			Result: &fiber.Map{
				"category": created,
			},
		})
	}

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	result, err := categoryCollection.InsertOne(ctx, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting category",
			Result:  nil,
		})
	}
	category.ID = result.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Category created successfully",
		Result: &fiber.Map{
			"category": category,
		},
	})
}

// Only for admin
func UpdateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category ID format",
			Result:  nil,
		})
	}

	payload := bson.M{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing category data",
			Result:  nil,
		})
	}
	delete(payload, "_id")
	delete(payload, "createdAt")
	if name, ok := payload["name"].(string); ok {
		if _, hasSlug := payload["slug"]; !hasSlug {
			payload["slug"] = utils.Slugify(name)
		}
	}
	payload["updatedAt"] = time.Now()

	var updated models.Category
	err = categoryCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectId},
		bson.M{"$set": payload},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Category not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating category",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Category updated successfully",
		Result: &fiber.Map{
			"category": updated,
		},
	})
}

// Only for admin. Deletion does not cascade: pujas keep their stale
// category string.
func DeleteCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category ID format",
			Result:  nil,
		})
	}

	result, err := categoryCollection.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting category",
			Result:  nil,
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Category not found",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Category deleted successfully",
		Result:  nil,
	})
}
