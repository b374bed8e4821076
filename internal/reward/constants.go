package reward

import "github.com/osse101/CoffeeGarden_Go/internal/domain"

// Care rewards
const (
	WaterExperience     = 10
	FertilizeExperience = 20
)

// Harvest formula: coin = floor(HarvestBaseCoin * variety * health), experience = floor(coin * rate)
const (
	HarvestBaseCoin       = 100
	harvestExperienceRate = "0.5"
)

// CheckinBase is the daily check-in bundle before the streak multiplier
var CheckinBase = domain.RewardBundle{Water: 10, Fertilizer: 5, Coin: 20, Experience: 10}

// Error messages
const (
	ErrMsgUnknownCareAction = "unknown care action"
	ErrMsgNegativeHealth    = "health out of range"
	ErrMsgNegativeStreak    = "streak must not be negative"
)
