package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string `validate:"required"`
	Version     string
	ServiceName string

	DBUser        string `validate:"required"`
	DBPassword    string
	DBHost        string `validate:"required"`
	DBPort        string `validate:"required,numeric"`
	DBName        string `validate:"required"`
	DBMaxConns    int    `validate:"min=1"`
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration

	APIKey         string `validate:"required"`
	TrustedProxies []string
	RateLimit      int           `validate:"min=0"`
	RateWindow     time.Duration `validate:"min=0"`

	// Garden engine
	Timezone          string
	WaterCooldown     time.Duration `validate:"min=0"`
	FertilizeCooldown time.Duration `validate:"min=0"`
	DevMode           bool
	CatalogPath       string

	// Event publisher
	EventDeadLetterPath string
	EventMaxRetries     int           `validate:"min=0"`
	EventRetryDelay     time.Duration `validate:"min=0"`

	UserCacheSize int           `validate:"min=1"`
	UserCacheTTL  time.Duration `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:           getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:              getEnv(EnvLogDir, DefaultLogDir),
		Environment:         getEnv(EnvEnvironment, DefaultEnvironment),
		Version:             getEnv(EnvVersion, DefaultVersion),
		ServiceName:         getEnv(EnvServiceName, DefaultServiceName),
		DBUser:              getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:          getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:              getEnv(EnvDBHost, DefaultDBHost),
		DBPort:              getEnv(EnvDBPort, DefaultDBPort),
		DBName:              getEnv(EnvDBName, DefaultDBName),
		APIKey:              getEnv(EnvAPIKey, ""),
		TrustedProxies:      splitList(getEnv(EnvTrustedProxies, "")),
		Timezone:            getEnv(EnvTimezone, DefaultTimezone),
		CatalogPath:         getEnv(EnvCatalogPath, ""),
		EventDeadLetterPath: getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
	}

	p := parser{}
	cfg.Port = p.int(EnvPort, DefaultPort)
	cfg.DBMaxConns = p.int(EnvDBMaxConns, DefaultDBMaxConns)
	cfg.DBMaxConnIdle = p.duration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle)
	cfg.DBMaxConnLife = p.duration(EnvDBMaxConnLife, DefaultDBMaxConnLife)
	cfg.RateLimit = p.int(EnvRateLimit, 0)
	cfg.RateWindow = p.duration(EnvRateWindow, 0)
	cfg.WaterCooldown = p.duration(EnvWaterCooldown, domain.WaterCooldownDuration)
	cfg.FertilizeCooldown = p.duration(EnvFertilizeCooldown, domain.FertilizeCooldownDuration)
	cfg.DevMode = p.bool(EnvDevMode, false)
	cfg.EventMaxRetries = p.int(EnvEventMaxRetries, DefaultEventMaxRetries)
	cfg.EventRetryDelay = p.duration(EnvEventRetryDelay, DefaultEventRetryDelay)
	cfg.UserCacheSize = p.int(EnvUserCacheSize, DefaultUserCacheSize)
	cfg.UserCacheTTL = p.duration(EnvUserCacheTTL, DefaultUserCacheTTL)
	if p.err != nil {
		return nil, p.err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfig, err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the environment is a local one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser keeps the first parse failure so Load can report it once
type parser struct {
	err error
}

func (p *parser) int(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" || p.err != nil {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = fmt.Errorf(ErrMsgInvalidInt, key, raw, err)
		return def
	}
	return v
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" || p.err != nil {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.err = fmt.Errorf(ErrMsgInvalidDuration, key, raw, err)
		return def
	}
	return v
}

func (p *parser) bool(key string, def bool) bool {
	raw := getEnv(key, "")
	if raw == "" || p.err != nil {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.err = fmt.Errorf(ErrMsgInvalidBool, key, raw, err)
		return def
	}
	return v
}
