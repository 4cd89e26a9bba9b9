package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	instance *Config
	once     sync.Once
)

type Config struct {
	Port        string
	DatabaseURL string

	// JWT
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// CORS
	CorsOrigins string
}

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		instance = &Config{
			Port:        getEnv("PORT", "8080"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			JWTSecret:   getEnv("JWT_SECRET", ""),
			JWTIssuer:   getEnv("JWT_ISSUER", "http://localhost:8080"),
			JWTAudience: getEnv("JWT_AUDIENCE", "http://localhost:3000"),
			CorsOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		}
	})
	return instance
}

// Get returns the loaded config instance
func Get() *Config {
	return instance
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
