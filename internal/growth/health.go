package growth

import (
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// Health scores neglect on a 0-100 scale. Each full day past the grace period
// since the last watering (or planting) costs WaterPenaltyPerDay; fertilizer
// decays independently with its own grace period and rate.
func Health(in Input) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	health := DefaultHealthBaseline
	if in.HealthBaseline != nil {
		health = *in.HealthBaseline
	}

	health -= penalty(in.Now.Sub(in.waterAnchor()), WaterGraceDays, WaterPenaltyPerDay)
	health -= penalty(in.Now.Sub(in.fertilizeAnchor()), FertilizeGraceDays, FertilizePenaltyPerDay)

	return clamp(health), nil
}

func penalty(age time.Duration, graceDays, perDay int) int {
	days := int(age / domain.Day)
	if days <= graceDays {
		return 0
	}
	return (days - graceDays) * perDay
}

func clamp(h int) int {
	if h < MinHealth {
		return MinHealth
	}
	if h > MaxHealth {
		return MaxHealth
	}
	return h
}
