package bootstrap

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the process configuration.
type Env struct {
	DatabaseURL    string   // PostgreSQL connection string
	ClerkSecretKey string   // Clerk API key
	WebhookSecret  string   // Clerk webhook signing secret
	Port           string   // HTTP port
	AllowedOrigins []string // CORS / WebSocket origin whitelist
}

// LoadEnv reads configuration from .env in development and from the
// process environment in production.
func LoadEnv() *Env {
	if err := godotenv.Load(); err != nil {
		log.Println("[Env] no .env file found, using process environment")
	}

	env := &Env{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ClerkSecretKey: os.Getenv("CLERK_SECRET_KEY"),
		WebhookSecret:  os.Getenv("CLERK_WEBHOOK_SECRET"),
		Port:           os.Getenv("PORT"),
	}

	if env.Port == "" {
		env.Port = "8080"
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			env.AllowedOrigins = append(env.AllowedOrigins, strings.TrimSpace(origin))
		}
	}

	if env.DatabaseURL == "" {
		log.Fatal("[Env] missing required environment variable: DATABASE_URL")
	}

	log.Printf("[Env] configuration loaded, port: %s", env.Port)
	return env
}
