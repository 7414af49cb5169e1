package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int

	SessionSecret       string
	SessionCookieName   string
	SessionCookieSecure bool

	JWTSecret          string
	JWTExpirationHours int

	CORSAllowedOrigins []string
	LoginRatePerMinute int
	LoginRateBurst     int

	LogLevel    string
	LogFormat   string
	LogOutput   string
	LogFilePath string

	SeedDefaults bool
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: getEnv("GIN_MODE", ""),

		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBPort:         getEnvInt("DB_PORT", 3306),
		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "tourism"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 25),

		SessionSecret:       getEnv("SESSION_SECRET", "change-me-session-secret"),
		SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "tourism_session"),
		SessionCookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),

		JWTSecret:          getEnv("JWT_SECRET", "change-me-jwt-secret"),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),

		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 30),
		LoginRateBurst:     getEnvInt("LOGIN_RATE_BURST", 10),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		LogOutput:   getEnv("LOG_OUTPUT", "stdout"),
		LogFilePath: getEnv("LOG_FILE_PATH", "logs/tourism.log"),

		SeedDefaults: getEnvBool("SEED_DEFAULTS", true),
	}
}

// DSN builds the MySQL connection string for the configured database.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBPort,
		e.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
