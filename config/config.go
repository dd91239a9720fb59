// Package config loads the server configuration from the environment,
// optionally seeded by a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     int
	LogLevel string

	// Longest horizon a simulation request may ask for, in months.
	MaxHorizonMonths int

	// How long computed histories of stored scenarios stay cached.
	HistoryCacheTTL time.Duration

	// Token bucket shared by every API request.
	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string

	// SQLite file for registered scenarios. Empty keeps them in memory.
	DatabasePath string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:               8080,
		LogLevel:           "info",
		MaxHorizonMonths:   1200,
		HistoryCacheTTL:    15 * time.Minute,
		RateLimitRPS:       20,
		RateLimitBurst:     40,
		CORSAllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
	}
}

// Load reads a .env file if present, then the environment. Invalid values
// keep their defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: no .env file loaded, relying on OS environment variables and defaults")
	}
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() *Config {
	d := Default()
	return &Config{
		Port:               getEnvAsInt("PORT", d.Port),
		LogLevel:           getEnv("LOG_LEVEL", d.LogLevel),
		MaxHorizonMonths:   getEnvAsInt("MAX_HORIZON_MONTHS", d.MaxHorizonMonths),
		HistoryCacheTTL:    getEnvAsDuration("HISTORY_CACHE_TTL", d.HistoryCacheTTL),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", d.RateLimitRPS),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", d.RateLimitBurst),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", d.CORSAllowedOrigins),
		DatabasePath:       getEnv("DATABASE_PATH", d.DatabasePath),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	log.Printf("Invalid float value for %s ('%s'), using default: %g", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback)
	return fallback
}

// getEnvAsList splits a comma-separated value.
func getEnvAsList(key string, fallback []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
