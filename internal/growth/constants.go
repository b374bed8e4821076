package growth

import "time"

// Care recency thresholds
const (
	// FreshWindow is the age at or under which a care action counts as fresh
	FreshWindow = 24 * time.Hour

	// NeglectWindow is the age at or over which a care action counts as neglected
	NeglectWindow = 7 * 24 * time.Hour
)

// Care multipliers expressed in halves so growth can be integrated in integers.
const (
	rateNeglected = 1 // x0.5
	rateNormal    = 2 // x1.0
	rateFresh     = 3 // x1.5

	rateDenominator = 2

	// unitsPerDay is one day of growth at x1.0
	unitsPerDay = int64(24*time.Hour) * rateDenominator
)

// Health decay
const (
	DefaultHealthBaseline = 100
	MaxHealth             = 100
	MinHealth             = 0

	WaterGraceDays         = 3
	WaterPenaltyPerDay     = 10
	FertilizeGraceDays     = 7
	FertilizePenaltyPerDay = 10
)

// Field names reported in InvalidTimeError
const (
	fieldNow              = "now"
	fieldLastWateredAt    = "last_watered_at"
	fieldLastFertilizedAt = "last_fertilized_at"
	fieldCheckpointAt     = "growth_checkpoint_at"
)

// Error messages
const (
	ErrMsgNegativeCheckpoint = "growth checkpoint units must not be negative"
)
