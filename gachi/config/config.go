package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	DBUser          string
	DBPassword      string
	DBHost          string
	DBPort          string
	DBName          string
	JWTSecret       string
	TokenTTL        time.Duration
	OpenAIKey       string
	OpenAIModel     string
	UpstreamTimeout time.Duration
	AdminEmails     []string
}

func LoadConfig() Config {
	// Optional; production sets real environment variables.
	_ = godotenv.Load()

	return Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8000"),
		DBUser:          getEnv("DB_USER", ""),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBHost:          getEnv("DB_HOST", ""),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTL:        getDuration("TOKEN_TTL", 60*time.Minute),
		OpenAIKey:       strings.Trim(getEnv("OPENAI_API_KEY", ""), `" `),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 60*time.Second),
		AdminEmails:     splitCSV(getEnv("ADMIN_EMAILS", "")),
	}
}

func (c Config) IsAdminEmail(email string) bool {
	for _, e := range c.AdminEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
