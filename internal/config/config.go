package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string
	CloudinaryURL string
	PublicBaseURL string
}

func Load() *Config {
	// Optional .env file for local development
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "eatyq"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
