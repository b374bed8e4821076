package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage is one ordered growth phase of a variety
type Stage struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

// Variety is a catalog entry fixing stage durations and the harvest multiplier
type Variety struct {
	Name              string            `json:"name"`
	DisplayNames      map[string]string `json:"display_names"`
	Description       string            `json:"description"`
	HarvestMultiplier decimal.Decimal   `json:"harvest_multiplier"`
	Stages            []Stage           `json:"stages"`
}

// TotalDays is the unmodified growth duration
func (v Variety) TotalDays() int {
	total := 0
	for _, s := range v.Stages {
		total += s.Days
	}
	return total
}

// Tree is a planted entity. Its stage is never stored; see growth.Calculate.
type Tree struct {
	ID                     string     `json:"id"`
	UserID                 string     `json:"user_id"`
	Variety                string     `json:"variety"`
	PlantedAt              time.Time  `json:"planted_at"`
	LastWateredAt          *time.Time `json:"last_watered_at,omitempty"`
	LastFertilizedAt       *time.Time `json:"last_fertilized_at,omitempty"`
	WaterApplications      int        `json:"water_applications"`
	FertilizerApplications int        `json:"fertilizer_applications"`
	Harvested              bool       `json:"harvested"`
	HarvestedAt            *time.Time `json:"harvested_at,omitempty"`

	// Checkpoint is the growth frozen at the latest care action, nil before any
	Checkpoint *GrowthCheckpoint `json:"-"`
}

// GrowthCheckpoint freezes care-weighted growth at a care action so that the
// new care inputs only shape growth after it. Units are nanoseconds times the
// care rate in halves.
type GrowthCheckpoint struct {
	At time.Time

	// DayUnits is the growth through the last whole day boundary at or before At
	DayUnits int64

	// PartialUnits is the growth between that boundary and At
	PartialUnits int64
}

// LastCare returns the last application time of a care action, or nil
func (t *Tree) LastCare(action string) *time.Time {
	switch action {
	case ActionWater:
		return t.LastWateredAt
	case ActionFertilize:
		return t.LastFertilizedAt
	}
	return nil
}

// GrowthSnapshot is the derived stage state of a tree at an instant
type GrowthSnapshot struct {
	StageIndex      int     `json:"stage_index"`
	StageName       string  `json:"stage_name"`
	StageCount      int     `json:"stage_count"`
	ProgressPercent int     `json:"progress_percent"`
	IsMature        bool    `json:"is_mature"`
	DaysElapsed     int     `json:"days_elapsed"`
	EffectiveDays   float64 `json:"effective_days"`
	CareMultiplier  float64 `json:"care_multiplier"`
}

// TreeView is the read-only snapshot returned to clients
type TreeView struct {
	Tree                 Tree           `json:"tree"`
	Growth               GrowthSnapshot `json:"growth"`
	Health               int            `json:"health"`
	Quality              string         `json:"quality"`
	WaterAvailableAt     time.Time      `json:"water_available_at"`
	FertilizeAvailableAt time.Time      `json:"fertilize_available_at"`
	ComputedAt           time.Time      `json:"computed_at"`
}

// CareResult is returned by water and fertilize
type CareResult struct {
	Action string       `json:"action"`
	View   TreeView     `json:"view"`
	Reward RewardBundle `json:"reward"`
}

// HarvestResult is returned by a successful harvest
type HarvestResult struct {
	View    TreeView     `json:"view"`
	Reward  RewardBundle `json:"reward"`
	Quality string       `json:"quality"`
	Health  int          `json:"health"`
}
