package domain

import "time"

// Platform identifiers accepted by the identity layer
const (
	PlatformWeChat = "wechat"
	PlatformQQ     = "qq"
	PlatformWeb    = "web"
)

// Action names. They key cooldown windows, activity log rows and metrics labels.
const (
	ActionPlant     = "plant"
	ActionWater     = "water"
	ActionFertilize = "fertilize"
	ActionHarvest   = "harvest"
	ActionCheckin   = "checkin"
	ActionMilestone = "milestone"
)

// Default cooldown windows for care actions
const (
	WaterCooldownDuration     = 24 * time.Hour
	FertilizeCooldownDuration = 48 * time.Hour
)

// Day is the unit of growth and decay
const Day = 24 * time.Hour

// StageNameMature is reported once a tree has exhausted its stage list
const StageNameMature = "mature"

// Harvest quality labels, best first
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityNormal    = "normal"
	QualityPoor      = "poor"
)

// Day-gap classification between two check-in dates
const (
	GapFirst       = "first"
	GapSameDay     = "same-day"
	GapConsecutive = "consecutive"
	GapBroken      = "broken"
)
