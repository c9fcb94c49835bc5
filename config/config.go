package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvLocal runs on the in-memory store with demo users
const EnvLocal = "local"

type Settings struct {
	Env      string
	Port     string
	LogLevel string
	LogDir   string

	DBDSN string

	RedisAddr     string
	RedisUser     string
	RedisPassword string
	CacheTTL      time.Duration

	CloudinaryURL string

	Location       *time.Location
	PreventOverlap bool
	CORSOrigins    []string
}

// LoadEnv reads .env into the process environment when the file exists
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using process environment: %v", err)
	}
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// LoadSettings builds the settings from the environment
func LoadSettings() (*Settings, error) {
	s := &Settings{
		Env:           GetEnv("ENV", EnvLocal),
		Port:          GetEnv("PORT", "8083"),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		LogDir:        os.Getenv("LOG_DIR"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}

	loc, err := time.LoadLocation(GetEnv("BOOKING_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE: %w", err)
	}
	s.Location = loc

	if s.PreventOverlap, err = strconv.ParseBool(GetEnv("BOOKING_PREVENT_OVERLAP", "false")); err != nil {
		return nil, fmt.Errorf("invalid BOOKING_PREVENT_OVERLAP: %w", err)
	}
	if s.CacheTTL, err = time.ParseDuration(GetEnv("CACHE_TTL", "10m")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			s.CORSOrigins = append(s.CORSOrigins, origin)
		}
	}

	if s.Env != EnvLocal {
		dsn, err := getDBConfigByEnv(s.Env)
		if err != nil {
			return nil, err
		}
		s.DBDSN = dsn
	}
	return s, nil
}
