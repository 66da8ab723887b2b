package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime parameters loaded from the environment.
type Config struct {
	Port        string
	Env         string
	MongoURI    string
	MongoDBName string

	// DataBackend selects the catalog persistence: "mongo" (default) or
	// "file" for the JSON seed-backed store used in tests and demos.
	DataBackend   string
	FileStorePath string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	// BookingNotifyTo is the operator address that receives a mail for
	// every new booking.
	BookingNotifyTo string
}

// Load reads .env (if present) and the process environment into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGOURI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "panditjiApi"),

		DataBackend:   getEnv("DATA_BACKEND", "mongo"),
		FileStorePath: getEnv("FILE_STORE_PATH", "data/catalog.json"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        smtpPort,
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		MailFrom:        getEnv("MAIL_FROM", "noreply@bookmypanditji.in"),
		BookingNotifyTo: os.Getenv("BOOKING_NOTIFY_TO"),
	}
}

// MissingRequired lists required environment keys that are unset. An
// empty JWT secret must never reach the token layer: every HS256 token
// signed with an empty key would pass the admin guard.
func (c *Config) MissingRequired() []string {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	return missing
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var C *Config = Load()
