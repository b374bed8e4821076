package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
	// DefaultAppName is the application_name used when none is configured
	DefaultAppName = "coffeegarden"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToCreateMigrator   = "failed to create migrator"
	ErrMsgFailedToApplyMigrations  = "failed to apply migrations"
	ErrMsgFailedToRevertMigration  = "failed to revert migration"
	ErrMsgFailedToReadMigrationLog = "failed to read migration status"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationReverted               = "Migration reverted"
	LogMsgSchemaUpToDate                  = "Database schema is up to date"
)
