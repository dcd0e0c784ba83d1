package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries every runtime setting of the service. Values come from the
// environment, optionally seeded from a .env file in development.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"sharebite"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Kafka is optional: with no brokers configured, lifecycle events go to
	// the structured log instead.
	KafkaBrokers        []string `env:"KAFKA_BROKERS"`
	KafkaLifecycleTopic string   `env:"KAFKA_LIFECYCLE_TOPIC" envDefault:"post-lifecycle"`

	// Redis is optional: with no address configured, the NGO directory
	// listing is served straight from the database.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	NgoCacheTTL   time.Duration `env:"NGO_CACHE_TTL" envDefault:"60s"`

	// SweepSchedule is the cron spec (with seconds) for the re-assignment
	// sweep. An empty value disables the sweep.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"*/15 * * * * *"`

	ImageDir     string `env:"IMAGE_DIR" envDefault:"./images"`
	ImageBaseURL string `env:"IMAGE_BASE_URL" envDefault:"http://localhost:8080/images"`
}

// LoadConfig reads the configuration from the environment. A missing .env
// file is fine outside development.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return config, nil
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
