package garden

// Activity log paging
const (
	DefaultLogLimit = 20
	MaxLogLimit     = 100
)

// Log messages
const (
	LogMsgPlantCalled     = "Plant called"
	LogMsgTreePlanted     = "Tree planted"
	LogMsgCareCalled      = "Care action called"
	LogMsgCareApplied     = "Care action applied"
	LogMsgCareOnCooldown  = "Care action on cooldown"
	LogMsgHarvestCalled   = "Harvest called"
	LogMsgTreeHarvested   = "Tree harvested"
	LogMsgHarvestNotReady = "Harvest attempted before maturity"
	LogMsgOwnerMismatch   = "Tree requested by a user who does not own it"
)

// Error message formats
const (
	ErrMsgBeginTx       = "failed to begin transaction: %w"
	ErrMsgCommitTx      = "failed to commit transaction: %w"
	ErrMsgInsertTree    = "failed to insert tree: %w"
	ErrMsgLoadTree      = "failed to load tree: %w"
	ErrMsgApplyCare     = "failed to apply %s: %w"
	ErrMsgMarkHarvested = "failed to mark tree harvested: %w"
	ErrMsgAddResources  = "failed to credit reward: %w"
	ErrMsgAppendLog     = "failed to append activity: %w"
	ErrMsgNotMature     = "%w: stage %s (%d/%d), %d%% through"
	ErrMsgUnknownAction = "%w: unknown care action %q"
)
