package routes

import (
	controllers "panditji-api/controllers/categories"
	"panditji-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App) {
	app.Get("/api/categories", controllers.GetAllCategories)

	//Admin CRUD
	app.Post("/api/categories", middlewares.AuthMiddleware, controllers.CreateCategory)
	app.Put("/api/categories/:id", middlewares.AuthMiddleware, controllers.UpdateCategory)
	app.Delete("/api/categories/:id", middlewares.AuthMiddleware, controllers.DeleteCategory)
}
