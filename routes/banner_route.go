package routes

import (
	controllers "panditji-api/controllers/banners"
	"panditji-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func BannerRoutes(app *fiber.App) {
	app.Get("/api/banners", controllers.GetBanners)

	//Admin CRUD; activation semantics live in the controller
	app.Post("/api/banners", middlewares.AuthMiddleware, controllers.CreateBanner)
	app.Put("/api/banners/:id", middlewares.AuthMiddleware, controllers.UpdateBanner)
	app.Delete("/api/banners/:id", middlewares.AuthMiddleware, controllers.DeleteBanner)
}
