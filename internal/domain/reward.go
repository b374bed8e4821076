package domain

// ResourceKind names one of the fixed resources a reward can carry
type ResourceKind string

const (
	ResourceWater      ResourceKind = "water"
	ResourceFertilizer ResourceKind = "fertilizer"
	ResourceCoin       ResourceKind = "coin"
	ResourceExperience ResourceKind = "experience"
)

// ResourceKinds lists every kind in display order
var ResourceKinds = []ResourceKind{ResourceWater, ResourceFertilizer, ResourceCoin, ResourceExperience}

// RewardBundle is a set of non-negative increments, one field per resource kind.
// The zero value is an empty reward.
type RewardBundle struct {
	Water      int `json:"water"`
	Fertilizer int `json:"fertilizer"`
	Coin       int `json:"coin"`
	Experience int `json:"experience"`
}

// Amount returns the increment for a single kind
func (b RewardBundle) Amount(kind ResourceKind) int {
	switch kind {
	case ResourceWater:
		return b.Water
	case ResourceFertilizer:
		return b.Fertilizer
	case ResourceCoin:
		return b.Coin
	case ResourceExperience:
		return b.Experience
	}
	return 0
}

// Plus returns the field-wise sum of two bundles
func (b RewardBundle) Plus(o RewardBundle) RewardBundle {
	return RewardBundle{
		Water:      b.Water + o.Water,
		Fertilizer: b.Fertilizer + o.Fertilizer,
		Coin:       b.Coin + o.Coin,
		Experience: b.Experience + o.Experience,
	}
}

// IsZero reports whether the bundle grants nothing
func (b RewardBundle) IsZero() bool {
	return b == RewardBundle{}
}

// Valid reports whether every amount is non-negative
func (b RewardBundle) Valid() bool {
	return b.Water >= 0 && b.Fertilizer >= 0 && b.Coin >= 0 && b.Experience >= 0
}

// Resources is a user's current balance, built from applied RewardBundles
type Resources struct {
	UserID string `json:"user_id"`
	RewardBundle
}
