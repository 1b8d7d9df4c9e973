package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed by reference to the components
// that need it. It is never mutated after LoadConfig returns.
type Config struct {
	AppPort          string
	MongoURI         string
	MongoDatabase    string
	JWTSecret        string
	TokenTTL         time.Duration
	AdminInviteToken string
	ClientOrigin     string
	UploadDir        string
	TrustedProxies   []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "task_manager"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenTTL:         getEnvDuration("TOKEN_TTL_HOURS", 7*24*time.Hour),
		AdminInviteToken: getEnv("ADMIN_INVITE_TOKEN", ""),
		ClientOrigin:     getEnv("CLIENT_URL", ""),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		TrustedProxies:   parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	hours, err := strconv.Atoi(value)
	if err != nil || hours <= 0 {
		return fallback
	}
	return time.Duration(hours) * time.Hour
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
