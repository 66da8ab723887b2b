package routes

import (
	controllers "panditji-api/controllers/bookings"
	statsControllers "panditji-api/controllers/stats"
	"panditji-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	//Public checkout submission
	app.Post("/api/bookings", controllers.CreateBooking)

	//Admin
	app.Get("/api/bookings", middlewares.AuthMiddleware, controllers.GetAllBookings)
	app.Patch("/api/bookings/:id", middlewares.AuthMiddleware, controllers.UpdateBookingStatus)
	app.Get("/api/stats", middlewares.AuthMiddleware, statsControllers.GetDashboardStats)
}
