package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string

	// Identity settings. FallbackUserEmail names the account every
	// soft-resolved request lands on when the hint is missing or unknown;
	// AutomationAPIKey gates the soft-auth route group.
	FallbackUserEmail string
	FallbackUserName  string
	AutomationAPIKey  string
	TokenSecret       string
	TokenTTL          time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "asana"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "asana"),
		DbName:            getEnv("MYSQL_DATABASE", "asana"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		FallbackUserEmail: getEnv("FALLBACK_USER_EMAIL", "automation@localhost"),
		FallbackUserName:  getEnv("FALLBACK_USER_NAME", "Automation"),
		AutomationAPIKey:  getEnv("AUTOMATION_API_KEY", ""),
		TokenSecret:       getEnv("TOKEN_SECRET", "dev-secret-change-me"),
		TokenTTL:          time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
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
