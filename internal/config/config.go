package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                    string
	ServerAddr             string
	SiteBaseURL            string
	FrontendOrigins        []string
	RateLimitContact       int
	RateLimitAppointments  int
	RateLimitWindowSec     int
	RedisURL               string
	RedisAddr              string
	RedisPassword          string
	RedisDB                int
	CacheTTLSeconds        int
	AnalyticsMeasurementID string
	Timezone               *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "America/Toronto"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                    getEnv("APP_ENV", "development"),
		ServerAddr:             getEnv("SERVER_ADDR", ":8080"),
		SiteBaseURL:            getEnv("SITE_BASE_URL", "http://localhost:3000"),
		FrontendOrigins:        splitOrigins(getEnv("FRONTEND_ORIGINS", "http://localhost:3000")),
		RateLimitContact:       getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitAppointments:  getEnvInt("RATE_LIMIT_APPOINTMENTS", 10),
		RateLimitWindowSec:     getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		RedisDB:                getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:        getEnvInt("CACHE_TTL_SECONDS", 60),
		AnalyticsMeasurementID: getEnv("ANALYTICS_MEASUREMENT_ID", ""),
		Timezone:               loc,
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
