package routes

import (
	controllers "panditji-api/controllers/team"
	"panditji-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func TeamRoutes(app *fiber.App) {
	app.Get("/api/team", controllers.GetTeamMembers)

	//Admin CRUD
	app.Post("/api/team", middlewares.AuthMiddleware, controllers.CreateTeamMember)
	app.Put("/api/team/:id", middlewares.AuthMiddleware, controllers.UpdateTeamMember)
	app.Delete("/api/team/:id", middlewares.AuthMiddleware, controllers.DeleteTeamMember)
}
