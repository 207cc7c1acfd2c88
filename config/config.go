package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Error loading .env file")
	}
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable with a fallback
func GetEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s, using fallback %d", key, fallback)
	}
	return fallback
}

// Config holds all externally supplied settings for the server.
type Config struct {
	Port              string
	MongoURI          string
	MongoDB           string
	UploadDir         string
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	SMTPHost          string
	SMTPPort          int
	EmailUser         string
	EmailPass         string
	OrderNotifyEmail  string
	RabbitMQURL       string
}

// Load reads the full configuration from the environment.
func Load() Config {
	return Config{
		Port:              GetEnv("PORT", "5000"),
		MongoURI:          GetEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:           GetEnv("MONGODB_DB", "vertostore"),
		UploadDir:         GetEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:         GetEnv("JWT_SECRET", ""),
		AdminEmail:        GetEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH", ""),
		SMTPHost:          GetEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          GetEnvInt("SMTP_PORT", 587),
		EmailUser:         GetEnv("EMAIL_USER", ""),
		EmailPass:         GetEnv("EMAIL_PASS", ""),
		OrderNotifyEmail:  GetEnv("ORDER_NOTIFY_EMAIL", ""),
		RabbitMQURL:       GetEnv("RABBITMQ_URL", ""),
	}
}
