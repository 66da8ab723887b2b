package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"panditji-api/configs"
	"panditji-api/routes"
)

func main() {
	setupLogger(configs.C.Env)

	if missing := configs.C.MissingRequired(); len(missing) > 0 {
		log.Fatal().Strs("keys", missing).Msg("missing required configuration")
	}

	log.Info().Str("env", configs.C.Env).Str("backend", configs.C.DataBackend).Msg("starting panditji api")

	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.AuthRoutes(app)
	routes.CategoryRoutes(app)
	routes.PujaRoutes(app)
	routes.SamagriRoutes(app)
	routes.BannerRoutes(app)
	routes.GalleryRoutes(app)
	routes.TeamRoutes(app)
	routes.BookingRoutes(app)

	if err := app.Listen(":" + configs.C.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
