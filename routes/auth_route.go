package routes

import (
	controllers "panditji-api/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	app.Post("/api/admin/login", controllers.AdminLogin)
}
