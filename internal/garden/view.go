package garden

import (
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/growth"
	"github.com/osse101/CoffeeGarden_Go/internal/reward"
)

// view derives the read-only snapshot of a tree at now. A harvested tree is
// frozen at its harvest instant.
func (s *service) view(tree domain.Tree, now time.Time) (*domain.TreeView, error) {
	variety, err := s.catalog.Get(tree.Variety)
	if err != nil {
		return nil, err
	}

	at := now
	if tree.Harvested && tree.HarvestedAt != nil && tree.HarvestedAt.Before(now) {
		at = *tree.HarvestedAt
	}

	in := growth.FromTree(tree, at)
	snap, err := growth.Calculate(variety, in)
	if err != nil {
		return nil, err
	}
	health, err := growth.Health(in)
	if err != nil {
		return nil, err
	}

	return &domain.TreeView{
		Tree:                 tree,
		Growth:               snap,
		Health:               health,
		Quality:              reward.QualityFor(health),
		WaterAvailableAt:     s.cooldowns.AvailableAt(domain.ActionWater, tree.LastWateredAt),
		FertilizeAvailableAt: s.cooldowns.AvailableAt(domain.ActionFertilize, tree.LastFertilizedAt),
		ComputedAt:           now,
	}, nil
}
