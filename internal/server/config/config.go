// Package config handles configuration for the server, including defaults,
// an optional .env file, environment variables, and command-line flags.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the finance tracker server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required; startup fails without it.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the
//     default in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - CORSOrigins: comma-separated list of allowed browser origins.
type Config struct {
	Addr                        string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	CORSOrigins                 string
}

// LoadDefaults populates Config with development defaults. DatabaseDSN has
// no default on purpose: it must come from the environment.
func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.CORSOrigins = "http://localhost:5173,http://127.0.0.1:5173"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from a .env file (if present), the process environment, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	_ = godotenv.Load()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports a configuration the server cannot start with.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_URL is not set")
	}
	return nil
}

func parseEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("ADDRESS"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = v
	}
}
