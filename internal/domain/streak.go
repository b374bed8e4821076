package domain

import (
	"time"

	"github.com/golang-sql/civil"
)

// StreakRecord tracks a user's check-in continuity by calendar date
type StreakRecord struct {
	UserID          string     `json:"user_id"`
	LastCheckinDate civil.Date `json:"last_checkin_date"`
	ConsecutiveDays int        `json:"consecutive_days"`
	TotalDays       int        `json:"total_days"`
}

// Milestone is a streak threshold with its one-time bonus
type Milestone struct {
	Threshold int          `json:"threshold"`
	Bonus     RewardBundle `json:"bonus"`
}

// MilestoneStatus is a milestone as seen by one user
type MilestoneStatus struct {
	Milestone
	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}

// CheckinEntry is one persisted daily check-in
type CheckinEntry struct {
	UserID          string       `json:"user_id"`
	Date            civil.Date   `json:"date"`
	ConsecutiveDays int          `json:"consecutive_days"`
	Reward          RewardBundle `json:"reward"`
	CreatedAt       time.Time    `json:"created_at"`
}

// CheckinResult is returned by a successful check-in
type CheckinResult struct {
	Date       civil.Date   `json:"date"`
	Gap        string       `json:"gap"`
	Streak     StreakRecord `json:"streak"`
	Multiplier string       `json:"multiplier"`
	Reward     RewardBundle `json:"reward"`
	Milestone  *Milestone   `json:"milestone,omitempty"`
	Total      RewardBundle `json:"total"`
}

// CheckinStatus is the display state of a user's streak on a given day.
// ConsecutiveDays is 0 when the streak is already broken.
type CheckinStatus struct {
	Today           civil.Date  `json:"today"`
	CheckedInToday  bool        `json:"checked_in_today"`
	ConsecutiveDays int         `json:"consecutive_days"`
	TotalDays       int         `json:"total_days"`
	LastCheckinDate *civil.Date `json:"last_checkin_date,omitempty"`
	NextMilestone   *Milestone  `json:"next_milestone,omitempty"`
	DaysToMilestone int         `json:"days_to_milestone,omitempty"`
}

// CalendarCell is one of the 42 cells of a month grid
type CalendarCell struct {
	Date    civil.Date `json:"date"`
	Day     int        `json:"day"`
	InMonth bool       `json:"in_month"`
	Checked bool       `json:"checked"`
	Today   bool       `json:"today"`
}

// Calendar is a 6x7 month grid starting on Sunday
type Calendar struct {
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	Cells        []CalendarCell `json:"cells"`
	CheckedCount int            `json:"checked_count"`
}
