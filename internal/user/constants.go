package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema.
// Increment it when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// MaxUsernameLength bounds stored display names
const MaxUsernameLength = 64

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUserCacheHit       = "User cache hit"
	LogMsgUserFound          = "Found existing user"
	LogMsgAutoRegistering    = "Auto-registering new user"
	LogMsgUserRegistered     = "User auto-registered"
	LogMsgUsernameChanged    = "Username changed, refreshing user"
	LogErrInvalidIdentity    = "Invalid platform identity"
	LogErrFailedToLookupUser = "Failed to get user by platform ID"
	LogErrFailedToUpsertUser = "Failed to upsert user"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgLookupUser   = "failed to get user: %w"
	ErrMsgRegisterUser = "failed to register user: %w"
)
