package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting. It is loaded once at process
// start and passed to the modules that need it; nothing reads os.Getenv at
// request time.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret    string
	CookieSecure bool
	CookieDomain string

	AdminNombre   string
	AdminEmail    string
	AdminPassword string

	BrevoAPIKey     string
	EmailSender     string
	EmailSenderName string

	CloudinaryURL string

	FrontendURL string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),

		AdminNombre:   getEnv("ADMIN_NOMBRE", "Administrador"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		BrevoAPIKey:     os.Getenv("BREVO_API_KEY"),
		EmailSender:     os.Getenv("EMAIL_SENDER"),
		EmailSenderName: os.Getenv("EMAIL_SENDER_NAME"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		FrontendURL: getEnv("FRONTEND_URL", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
