package cooldown

import "time"

const (
	// DefaultCooldownDuration applies to actions without a configured window
	DefaultCooldownDuration = 0 * time.Second
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"
)

// =============================================================================
// Error Message Format Strings (for CooldownError.Error())
// =============================================================================

const (
	ErrFmtCooldownWithHours   = "action '%s' on cooldown: %dh %dm remaining"
	ErrFmtCooldownWithMinutes = "action '%s' on cooldown: %dm %ds remaining"
	ErrFmtCooldownSecondsOnly = "action '%s' on cooldown: %ds remaining"
)
