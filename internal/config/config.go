package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/xavierca1/sales-command/internal/leadtable"
)

type Config struct {
	ServiceName string
	Env         string
	LogLevel    string

	Port int

	DatabaseURL string
	AMQPURL     string

	SessionTTL     time.Duration
	SweepInterval  time.Duration
	DefaultSort    string
	RateLimit      int
	AllowedOrigins []string
}

type configFile struct {
	Service struct {
		Name     string `yaml:"name"`
		Env      string `yaml:"env"`
		Port     int    `yaml:"port"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"service"`
	Dependencies struct {
		DatabaseURL string `yaml:"database_url"`
		AMQPURL     string `yaml:"amqp_url"`
	} `yaml:"dependencies"`
	Dashboard struct {
		SessionTTLMinutes    int      `yaml:"session_ttl_minutes"`
		SweepIntervalSeconds int      `yaml:"sweep_interval_seconds"`
		DefaultSort          string   `yaml:"default_sort"`
		RateLimitPerMinute   int      `yaml:"rate_limit_per_minute"`
		AllowedOrigins       []string `yaml:"allowed_origins"`
	} `yaml:"dashboard"`
}

func Default() Config {
	return Config{
		ServiceName:    "sales-command",
		Env:            "development",
		LogLevel:       "info",
		Port:           3000,
		SessionTTL:     30 * time.Minute,
		SweepInterval:  time.Minute,
		DefaultSort:    "name",
		RateLimit:      120,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

// Load reads .env (if present), then the YAML file at path (if present), then
// environment variables. Later sources win.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := applyFile(&cfg, raw); err != nil {
				return Config{}, err
			}
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	port, portErr := envInt("PORT", cfg.Port)
	ttl, ttlErr := envInt("SESSION_TTL_MINUTES", int(cfg.SessionTTL.Minutes()))
	sweep, sweepErr := envInt("SWEEP_INTERVAL_SECONDS", int(cfg.SweepInterval.Seconds()))
	limit, limitErr := envInt("RATE_LIMIT_PER_MINUTE", cfg.RateLimit)
	if err := errors.Join(portErr, ttlErr, sweepErr, limitErr); err != nil {
		return Config{}, err
	}

	cfg.Env = envOrDefault("APP_ENV", cfg.Env)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.Port = port
	cfg.DatabaseURL = envOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.AMQPURL = envOrDefault("AMQP_URL", cfg.AMQPURL)
	cfg.SessionTTL = time.Duration(ttl) * time.Minute
	cfg.SweepInterval = time.Duration(sweep) * time.Second
	cfg.DefaultSort = envOrDefault("DEFAULT_SORT", cfg.DefaultSort)
	cfg.RateLimit = limit
	cfg.AllowedOrigins = envCSV("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.SweepInterval <= 0 {
		return errors.New("sweep interval must be positive")
	}
	if c.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}
	if _, ok := leadtable.ParseSortField(c.DefaultSort); !ok {
		return fmt.Errorf("invalid default sort %q", c.DefaultSort)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func applyFile(cfg *Config, raw []byte) error {
	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if f.Service.Name != "" {
		cfg.ServiceName = f.Service.Name
	}
	if f.Service.Env != "" {
		cfg.Env = f.Service.Env
	}
	if f.Service.Port > 0 {
		cfg.Port = f.Service.Port
	}
	if f.Service.LogLevel != "" {
		cfg.LogLevel = f.Service.LogLevel
	}
	if f.Dependencies.DatabaseURL != "" {
		cfg.DatabaseURL = f.Dependencies.DatabaseURL
	}
	if f.Dependencies.AMQPURL != "" {
		cfg.AMQPURL = f.Dependencies.AMQPURL
	}
	if f.Dashboard.SessionTTLMinutes > 0 {
		cfg.SessionTTL = time.Duration(f.Dashboard.SessionTTLMinutes) * time.Minute
	}
	if f.Dashboard.SweepIntervalSeconds > 0 {
		cfg.SweepInterval = time.Duration(f.Dashboard.SweepIntervalSeconds) * time.Second
	}
	if f.Dashboard.DefaultSort != "" {
		cfg.DefaultSort = f.Dashboard.DefaultSort
	}
	if f.Dashboard.RateLimitPerMinute > 0 {
		cfg.RateLimit = f.Dashboard.RateLimitPerMinute
	}
	if len(f.Dashboard.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = f.Dashboard.AllowedOrigins
	}
	return nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt returns fallback when name is unset and an error when it is not a number.
func envInt(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
