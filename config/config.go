package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SMTP holds the outbound mail settings.
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Cloudinary holds the media upload settings.
type Cloudinary struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// Config is built once in main and handed to every component that
// needs it. Nothing reads the environment after startup.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	RedisAddr   string
	FrontendURL string
	SMTP        SMTP
	Cloudinary  Cloudinary
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			User:     os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			From:     getEnv("EMAIL_FROM", "noreply@musaada.com"),
		},
		Cloudinary: Cloudinary{
			CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
			UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
