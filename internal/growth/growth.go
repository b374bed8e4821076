// Package growth derives a tree's stage and health from its planting and care
// timestamps. Nothing here is stored or mutated; every result is recomputed
// from inputs on demand.
package growth

import (
	"fmt"
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// Input is everything the calculators read. It is usually built with FromTree.
type Input struct {
	PlantedAt              time.Time
	LastWateredAt          *time.Time
	LastFertilizedAt       *time.Time
	WaterApplications      int
	FertilizerApplications int
	Now                    time.Time

	// HealthBaseline overrides DefaultHealthBaseline when set
	HealthBaseline *int

	// Checkpoint is the growth frozen at the latest care action, if any
	Checkpoint *domain.GrowthCheckpoint
}

// FromTree builds an Input for a stored tree at instant now
func FromTree(t domain.Tree, now time.Time) Input {
	return Input{
		PlantedAt:              t.PlantedAt,
		LastWateredAt:          t.LastWateredAt,
		LastFertilizedAt:       t.LastFertilizedAt,
		WaterApplications:      t.WaterApplications,
		FertilizerApplications: t.FertilizerApplications,
		Now:                    now,
		Checkpoint:             t.Checkpoint,
	}
}

// Validate rejects temporally inconsistent inputs
func (in Input) Validate() error {
	if in.Now.Before(in.PlantedAt) {
		return domain.InvalidTimeError{Field: fieldNow, At: in.Now, Ref: in.PlantedAt}
	}
	care := []struct {
		field string
		at    *time.Time
	}{
		{fieldLastWateredAt, in.LastWateredAt},
		{fieldLastFertilizedAt, in.LastFertilizedAt},
	}
	if cp := in.Checkpoint; cp != nil {
		if cp.DayUnits < 0 || cp.PartialUnits < 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeCheckpoint)
		}
		care = append(care, struct {
			field string
			at    *time.Time
		}{fieldCheckpointAt, &cp.At})
	}
	for _, c := range care {
		at := c.at
		if at == nil {
			continue
		}
		if at.Before(in.PlantedAt) {
			return domain.InvalidTimeError{Field: c.field, At: *at, Ref: in.PlantedAt}
		}
		if in.Now.Before(*at) {
			return domain.InvalidTimeError{Field: fieldNow, At: in.Now, Ref: *at}
		}
	}
	return nil
}

// DaysElapsed is the number of whole days since planting
func (in Input) DaysElapsed() int {
	if in.Now.Before(in.PlantedAt) {
		return 0
	}
	return int(in.Now.Sub(in.PlantedAt) / domain.Day)
}

// waterAnchor is the last watering, or planting when the tree was never watered
func (in Input) waterAnchor() time.Time {
	if in.LastWateredAt != nil {
		return *in.LastWateredAt
	}
	return in.PlantedAt
}

func (in Input) fertilizeAnchor() time.Time {
	if in.LastFertilizedAt != nil {
		return *in.LastFertilizedAt
	}
	return in.PlantedAt
}

func (in Input) tracks() (water, fertilizer track) {
	return newTrack(in.PlantedAt, in.LastWateredAt, in.WaterApplications),
		newTrack(in.PlantedAt, in.LastFertilizedAt, in.FertilizerApplications)
}

// Calculate walks the variety's stages against the care-weighted elapsed time.
//
// Growth accrues over whole elapsed days at the care rate in effect at each
// instant, so for fixed care inputs the result never moves backwards as now
// advances.
func Calculate(variety domain.Variety, in Input) (domain.GrowthSnapshot, error) {
	if len(variety.Stages) == 0 {
		return domain.GrowthSnapshot{}, domain.UnknownVarietyError{Variety: variety.Name}
	}
	if err := in.Validate(); err != nil {
		return domain.GrowthSnapshot{}, err
	}

	total := totalUnits(variety)
	days := in.DaysElapsed()
	end := dayBoundary(in.PlantedAt, in.Now)
	water, fertilizer := in.tracks()
	acc := in.accrued(end, total)

	snap := domain.GrowthSnapshot{
		StageCount:     len(variety.Stages),
		DaysElapsed:    days,
		EffectiveDays:  float64(acc) / float64(unitsPerDay),
		CareMultiplier: float64(careRate(water.at(in.Now), fertilizer.at(in.Now))) / rateDenominator,
	}

	remaining := acc
	for i, s := range variety.Stages {
		stageUnits := int64(s.Days) * unitsPerDay
		if remaining < stageUnits {
			snap.StageIndex = i
			snap.StageName = s.Name
			snap.ProgressPercent = int(remaining * 100 / stageUnits)
			return snap, nil
		}
		remaining -= stageUnits
	}

	snap.StageIndex = len(variety.Stages)
	snap.StageName = domain.StageNameMature
	snap.ProgressPercent = 100
	snap.IsMature = true
	return snap, nil
}

// Checkpoint freezes the growth accrued up to at under the current inputs.
// Stores take one with every care action, so a later application never
// re-rates time that has already passed.
func Checkpoint(variety domain.Variety, in Input, at time.Time) (domain.GrowthCheckpoint, error) {
	if len(variety.Stages) == 0 {
		return domain.GrowthCheckpoint{}, domain.UnknownVarietyError{Variety: variety.Name}
	}
	in.Now = at
	if err := in.Validate(); err != nil {
		return domain.GrowthCheckpoint{}, err
	}

	total := totalUnits(variety)
	day := in.accrued(dayBoundary(in.PlantedAt, at), total)
	upTo := in.accrued(at, total)
	return domain.GrowthCheckpoint{At: at, DayUnits: day, PartialUnits: upTo - day}, nil
}

// accrued returns the care-weighted units from planting to t, capped at limit.
// With a checkpoint, only the span after it is integrated; instants before it
// resolve to its whole-day value.
func (in Input) accrued(t time.Time, limit int64) int64 {
	water, fertilizer := in.tracks()
	cp := in.Checkpoint
	if cp == nil {
		acc, _ := integrate(in.PlantedAt, t, water, fertilizer, limit)
		return acc
	}
	if t.Before(cp.At) {
		return min(cp.DayUnits, limit)
	}

	base := cp.DayUnits + cp.PartialUnits
	if base >= limit {
		return limit
	}
	acc, _ := integrate(cp.At, t, water, fertilizer, limit-base)
	return base + acc
}

func totalUnits(variety domain.Variety) int64 {
	var total int64
	for _, s := range variety.Stages {
		total += int64(s.Days) * unitsPerDay
	}
	return total
}

// dayBoundary is the last whole-day mark since planting at or before t
func dayBoundary(plantedAt, t time.Time) time.Time {
	if t.Before(plantedAt) {
		return plantedAt
	}
	return plantedAt.Add(t.Sub(plantedAt) / domain.Day * domain.Day)
}
