package reward

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// healthTier maps a minimum health to a harvest multiplier and quality label
type healthTier struct {
	MinHealth  int
	Multiplier decimal.Decimal
	Quality    string
}

// streakTier maps a minimum consecutive-day count to a check-in multiplier
type streakTier struct {
	MinDays    int
	Multiplier decimal.Decimal
}

// getHealthTiers returns the harvest tiers, best first
func getHealthTiers() []healthTier {
	return []healthTier{
		{MinHealth: 90, Multiplier: decimal.RequireFromString("1.5"), Quality: domain.QualityExcellent},
		{MinHealth: 70, Multiplier: decimal.RequireFromString("1.2"), Quality: domain.QualityGood},
		{MinHealth: 50, Multiplier: decimal.NewFromInt(1), Quality: domain.QualityNormal},
		{MinHealth: 0, Multiplier: decimal.RequireFromString("0.7"), Quality: domain.QualityPoor},
	}
}

// getStreakTiers returns the check-in multiplier tiers, highest first
func getStreakTiers() []streakTier {
	return []streakTier{
		{MinDays: 100, Multiplier: decimal.NewFromInt(3)},
		{MinDays: 60, Multiplier: decimal.RequireFromString("2.5")},
		{MinDays: 30, Multiplier: decimal.NewFromInt(2)},
		{MinDays: 14, Multiplier: decimal.RequireFromString("1.5")},
		{MinDays: 7, Multiplier: decimal.RequireFromString("1.2")},
		{MinDays: 0, Multiplier: decimal.NewFromInt(1)},
	}
}

// getMilestones returns the one-time streak bonuses, lowest threshold first
func getMilestones() []domain.Milestone {
	return []domain.Milestone{
		// 1 week
		{Threshold: 7, Bonus: domain.RewardBundle{Water: 50, Fertilizer: 20, Coin: 100, Experience: 50}},
		// 2 weeks
		{Threshold: 14, Bonus: domain.RewardBundle{Water: 100, Fertilizer: 50, Coin: 200, Experience: 100}},
		// 1 month
		{Threshold: 30, Bonus: domain.RewardBundle{Water: 200, Fertilizer: 100, Coin: 500, Experience: 200}},
		{Threshold: 60, Bonus: domain.RewardBundle{Water: 500, Fertilizer: 200, Coin: 1000, Experience: 500}},
		{Threshold: 100, Bonus: domain.RewardBundle{Water: 1000, Fertilizer: 500, Coin: 2000, Experience: 1000}},
	}
}
