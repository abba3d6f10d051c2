package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App   AppConfig
	Jobs  JobsConfig
	Redis RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

type JobsConfig struct {
	PageSize     int
	MaxLimit     int
	SeedDefaults bool
	SeedFile     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func (c AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def, min int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < min {
			invalid = append(invalid, fmt.Sprintf("%s=%q", key, raw))
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, fmt.Sprintf("%s=%q", key, raw))
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "jobboard"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
		LogLevel:    strings.ToLower(opt("LOG_LEVEL", "info")),
	}

	cfg.Jobs = JobsConfig{
		PageSize:     optInt("JOBS_PAGE_SIZE", 12, 1),
		MaxLimit:     optInt("JOBS_MAX_LIMIT", 100, 0),
		SeedDefaults: optBool("JOBS_SEED_DEFAULTS", true),
		SeedFile:     opt("JOBS_SEED_FILE", ""),
	}

	cfg.Redis = RedisConfig{
		Enabled:  optBool("REDIS_ENABLED", false),
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		DB:       optInt("REDIS_DB", 0, 0),
		TTL:      time.Duration(optInt("REDIS_TTL", 600, 1)) * time.Second,
	}
	if cfg.Redis.Enabled && cfg.Redis.Host == "" {
		missing = append(missing, "REDIS_HOST")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
