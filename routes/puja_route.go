package routes

import (
	controllers "panditji-api/controllers/pujas"
	"panditji-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PujaRoutes(app *fiber.App) {
	app.Get("/api/pujas", controllers.GetAllPujas)
	app.Get("/api/pujas/:id", controllers.GetPuja)

	//Public review append
	app.Post("/api/pujas/:id/reviews", controllers.AddPujaReview)

	//Admin CRUD
	app.Post("/api/pujas", middlewares.AuthMiddleware, controllers.CreatePuja)
	app.Put("/api/pujas/:id", middlewares.AuthMiddleware, controllers.UpdatePuja)
	app.Delete("/api/pujas/:id", middlewares.AuthMiddleware, controllers.DeletePuja)
}
