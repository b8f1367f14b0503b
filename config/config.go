package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"savannah_events"`

	// Optional: empty disables notification publishing.
	RabbitURL string `envconfig:"RABBITMQ_URL" default:""`

	JWTSecret    string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"720"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@savannahevents.com"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:""`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}
	return &cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
