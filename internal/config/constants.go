package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvEnvironment       = "ENVIRONMENT"
	EnvVersion           = "VERSION"
	EnvServiceName       = "SERVICE_NAME"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdle     = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLife     = "DB_MAX_CONN_LIFE"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvRateLimit         = "RATE_LIMIT"
	EnvRateWindow        = "RATE_WINDOW"
	EnvTimezone          = "TIMEZONE"
	EnvWaterCooldown     = "WATER_COOLDOWN"
	EnvFertilizeCooldown = "FERTILIZE_COOLDOWN"
	EnvDevMode           = "DEV_MODE"
	EnvCatalogPath       = "CATALOG_PATH"
	EnvDeadLetterPath    = "EVENT_DEADLETTER_PATH"
	EnvEventMaxRetries   = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay   = "EVENT_RETRY_DELAY"
	EnvUserCacheSize     = "USER_CACHE_SIZE"
	EnvUserCacheTTL      = "USER_CACHE_TTL"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultVersion         = "dev"
	DefaultServiceName     = "coffeegarden"
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = "5432"
	DefaultDBName          = "coffeegarden"
	DefaultDBMaxConns      = 20
	DefaultDBMaxConnIdle   = 5 * time.Minute
	DefaultDBMaxConnLife   = time.Hour
	DefaultTimezone        = "Asia/Shanghai"
	DefaultDeadLetterPath  = "logs/event_deadletter.jsonl"
	DefaultEventMaxRetries = 5
	DefaultEventRetryDelay = 2 * time.Second
	DefaultUserCacheSize   = 1000
	DefaultUserCacheTTL    = 5 * time.Minute
)

// Error messages
const (
	ErrMsgInvalidInt      = "invalid %s value %q: %w"
	ErrMsgInvalidDuration = "invalid %s value %q: %w"
	ErrMsgInvalidBool     = "invalid %s value %q: %w"
	ErrMsgAPIKeyRequired  = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig   = "invalid configuration: %w"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
