package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	JWTSecret       string
	MySQLDSN        string

	// Behavior flags, both off unless explicitly enabled.
	StrictMessageStatusFlow bool
	TierPromoteHighest      bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		MySQLDSN:        getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/barterex?parseTime=true"),

		StrictMessageStatusFlow: getEnvAsBool("STRICT_MESSAGE_STATUS_FLOW", false),
		TierPromoteHighest:      getEnvAsBool("TIER_PROMOTE_HIGHEST", false),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
