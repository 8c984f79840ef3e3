package config

import (
	"os"
	"strconv"
)

const ServiceName = "NCNEWS"

type Config struct {
	Addr        string
	DiagAddr    string
	DatabaseURL string
	Debug       bool
}

// FromEnv returns the configuration defaults, overridden by the environment.
// Command line flags are layered on top by the caller.
func FromEnv() Config {
	return Config{
		Addr:        GetEnv(ServiceName+"_ADDR", ":9090"),
		DiagAddr:    GetEnv(ServiceName+"_DIAG_ADDR", ":9999"),
		DatabaseURL: GetEnv("DATABASE_URL", ""),
		Debug:       GetEnvBool(ServiceName+"_DEBUG", false),
	}
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

// GetEnvBool falls back when the variable is unset or not a valid bool.
func GetEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}
