package checkin

// History paging
const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 100
)

// DefaultTimezone decides which calendar day a check-in counts for
const DefaultTimezone = "Asia/Shanghai"

// Log messages
const (
	LogMsgCheckinCalled     = "Checkin called"
	LogMsgCheckinCompleted  = "Checkin completed"
	LogMsgAlreadyCheckedIn  = "User already checked in today"
	LogMsgMilestoneReached  = "Streak milestone reached"
	LogMsgMilestoneReclaim  = "Milestone already claimed, no bonus granted"
	LogMsgCalendarRequested = "Calendar requested"
)

// Error message formats
const (
	ErrMsgBeginTx        = "failed to begin transaction: %w"
	ErrMsgCommitTx       = "failed to commit transaction: %w"
	ErrMsgLoadStreak     = "failed to load streak: %w"
	ErrMsgInsertCheckin  = "failed to record check-in: %w"
	ErrMsgSaveStreak     = "failed to save streak: %w"
	ErrMsgClaimMilestone = "failed to claim milestone: %w"
	ErrMsgAddResources   = "failed to credit reward: %w"
	ErrMsgAppendLog      = "failed to append activity: %w"
	ErrMsgLoadCalendar   = "failed to load check-in dates: %w"
	ErrMsgLoadMilestones = "failed to load claimed milestones: %w"
	ErrMsgBadPaging      = "%w: offset must not be negative"
)
