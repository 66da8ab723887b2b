package routes

import (
	controllers "panditji-api/controllers/samagri"
	"panditji-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func SamagriRoutes(app *fiber.App) {
	app.Get("/api/samagri", controllers.GetAllSamagri)
	app.Get("/api/samagri/:id", controllers.GetSamagri)

	//Admin CRUD
	app.Post("/api/samagri", middlewares.AuthMiddleware, controllers.CreateSamagri)
	app.Put("/api/samagri/:id", middlewares.AuthMiddleware, controllers.UpdateSamagri)
	app.Delete("/api/samagri/:id", middlewares.AuthMiddleware, controllers.DeleteSamagri)
}
