package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// Config carries everything the server reads from the environment. A .env
// file in the working directory is loaded automatically before Load runs.
type Config struct {
	Port               int
	Env                string // "development" or "production"
	CORSAllowedOrigins []string
	DB                 DBConfig
}

type DBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// Load reads the configuration from the environment. The database
// connection settings are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port: 8080,
		Env:  getEnv("APP_ENV", "development"),
		DB: DBConfig{
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: 25,
			MinConns: 5,
		},
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	required := map[string]*string{
		"DB_HOST":     &cfg.DB.Host,
		"DB_PORT":     &cfg.DB.Port,
		"DB_USERNAME": &cfg.DB.Username,
		"DB_PASSWORD": &cfg.DB.Password,
		"DB_DATABASE": &cfg.DB.Database,
	}
	for key, dst := range required {
		v := os.Getenv(key)
		if v == "" {
			return nil, fmt.Errorf("%s environment variable is required", key)
		}
		*dst = v
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" && v != "*" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// AllowAllOrigins reports whether CORS should accept any origin, which is
// the default when CORS_ALLOWED_ORIGINS is unset or "*".
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSAllowedOrigins) == 0
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
