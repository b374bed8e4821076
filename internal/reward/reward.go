// Package reward computes the resource bundles granted for care, harvest and
// daily check-in. All multiplications are exact decimals floored to integers.
package reward

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// ForCare returns the reward for a successful water or fertilize action
func ForCare(action string) (domain.RewardBundle, error) {
	switch action {
	case domain.ActionWater:
		return domain.RewardBundle{Experience: WaterExperience}, nil
	case domain.ActionFertilize:
		return domain.RewardBundle{Experience: FertilizeExperience}, nil
	}
	return domain.RewardBundle{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownCareAction, action)
}

// HealthMultiplier returns the harvest multiplier for a health score
func HealthMultiplier(health int) decimal.Decimal {
	return tierFor(health).Multiplier
}

// QualityFor returns the quality label for a health score
func QualityFor(health int) string {
	return tierFor(health).Quality
}

func tierFor(health int) healthTier {
	tiers := getHealthTiers()
	for _, t := range tiers {
		if health >= t.MinHealth {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// ForHarvest returns the harvest bundle and quality label for a tree of the
// given variety and health.
func ForHarvest(variety domain.Variety, health int) (domain.RewardBundle, string, error) {
	if health < 0 || health > 100 {
		return domain.RewardBundle{}, "", fmt.Errorf("%w: %s: %d", domain.ErrInvalidInput, ErrMsgNegativeHealth, health)
	}
	if !variety.HarvestMultiplier.IsPositive() {
		return domain.RewardBundle{}, "", domain.UnknownVarietyError{Variety: variety.Name}
	}

	tier := tierFor(health)
	coin := decimal.NewFromInt(HarvestBaseCoin).
		Mul(variety.HarvestMultiplier).
		Mul(tier.Multiplier).
		Floor()
	exp := coin.Mul(decimal.RequireFromString(harvestExperienceRate)).Floor()

	return domain.RewardBundle{
		Coin:       int(coin.IntPart()),
		Experience: int(exp.IntPart()),
	}, tier.Quality, nil
}

// StreakMultiplier returns the check-in multiplier for a consecutive-day count
func StreakMultiplier(consecutiveDays int) decimal.Decimal {
	tiers := getStreakTiers()
	for _, t := range tiers {
		if consecutiveDays >= t.MinDays {
			return t.Multiplier
		}
	}
	return tiers[len(tiers)-1].Multiplier
}

// ForCheckin returns the daily bundle for a streak that has just reached
// consecutiveDays, along with the multiplier applied.
func ForCheckin(consecutiveDays int) (domain.RewardBundle, decimal.Decimal, error) {
	if consecutiveDays < 0 {
		return domain.RewardBundle{}, decimal.Zero, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeStreak)
	}
	m := StreakMultiplier(consecutiveDays)
	return Scale(CheckinBase, m), m, nil
}

// Scale multiplies every amount of b by m, flooring each result at zero or above
func Scale(b domain.RewardBundle, m decimal.Decimal) domain.RewardBundle {
	scale := func(v int) int {
		out := decimal.NewFromInt(int64(v)).Mul(m).Floor()
		if out.IsNegative() {
			return 0
		}
		return int(out.IntPart())
	}
	return domain.RewardBundle{
		Water:      scale(b.Water),
		Fertilizer: scale(b.Fertilizer),
		Coin:       scale(b.Coin),
		Experience: scale(b.Experience),
	}
}

// Milestones lists every streak milestone, lowest threshold first
func Milestones() []domain.Milestone {
	return getMilestones()
}

// MilestoneAt returns the milestone whose threshold is exactly consecutiveDays, or nil
func MilestoneAt(consecutiveDays int) *domain.Milestone {
	for _, m := range getMilestones() {
		if m.Threshold == consecutiveDays {
			return &m
		}
	}
	return nil
}

// NextMilestone returns the first milestone above consecutiveDays, or nil past the last one
func NextMilestone(consecutiveDays int) *domain.Milestone {
	for _, m := range getMilestones() {
		if m.Threshold > consecutiveDays {
			return &m
		}
	}
	return nil
}
