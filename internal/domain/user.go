package domain

import "time"

// User represents a registered player
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Platform   string    `json:"platform"`
	PlatformID string    `json:"platform_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityEntry is one append-only audit row. TreeID is empty for check-ins.
type ActivityEntry struct {
	ID        int64        `json:"id"`
	UserID    string       `json:"user_id"`
	TreeID    string       `json:"tree_id,omitempty"`
	Action    string       `json:"action"`
	Reward    RewardBundle `json:"reward"`
	Quality   string       `json:"quality,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
