package catalog

// Error message formats
const (
	ErrMsgReadCatalog      = "failed to read catalog %s: %w"
	ErrMsgDecodeCatalog    = "failed to decode catalog: %w"
	ErrMsgEmptyCatalog     = "catalog has no varieties"
	ErrMsgVarietyNameEmpty = "variety name is empty"
	ErrMsgDuplicateVariety = "duplicate variety %q"
	ErrMsgNoStages         = "variety %q has no stages"
	ErrMsgBadStageDays     = "variety %q stage %q must last at least one day"
	ErrMsgBadMultiplier    = "variety %q harvest multiplier must be positive"
)
