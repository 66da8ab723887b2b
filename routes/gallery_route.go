package routes

import (
	controllers "panditji-api/controllers/gallery"
	"panditji-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func GalleryRoutes(app *fiber.App) {
	app.Get("/api/gallery", controllers.GetGalleryItems)

	//Admin CRUD
	app.Post("/api/gallery", middlewares.AuthMiddleware, controllers.CreateGalleryItem)
	app.Put("/api/gallery/:id", middlewares.AuthMiddleware, controllers.UpdateGalleryItem)
	app.Delete("/api/gallery/:id", middlewares.AuthMiddleware, controllers.DeleteGalleryItem)
}
