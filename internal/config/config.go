package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every field has a development default so the
// server starts with an empty environment; optional integrations stay off
// until configured.
type Config struct {
	Env     string // application environment (e.g. "dev", "prod")
	Port    string // HTTP port to listen on
	AMQPURL string // RabbitMQ connection URL; empty disables eventing
}

// Load reads configuration values from environment variables, after loading
// a .env file when one exists in the working directory.  Missing variables
// fall back to defaults instead of halting the process.
func Load() Config {
	_ = godotenv.Load() // a missing .env file is not an error

	return Config{
		Env:     getEnv("APP_ENV", "dev"),                      // environment (dev/test/prod)
		Port:    getEnv("APP_PORT", "8080"),                    // port to bind the HTTP server
		AMQPURL: getEnv("RABBITMQ_URL", os.Getenv("AMQP_URL")), // either name works, RABBITMQ_URL wins
	}
}

// getEnv retrieves the value of an environment variable.  If the variable is
// unset or empty, the fallback is returned.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
