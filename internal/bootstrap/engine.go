package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/catalog"
	"github.com/osse101/CoffeeGarden_Go/internal/checkin"
	"github.com/osse101/CoffeeGarden_Go/internal/config"
	"github.com/osse101/CoffeeGarden_Go/internal/cooldown"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// LoadCatalog reads cfg.CatalogPath when set and falls back to the embedded
// catalog otherwise.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	source := cfg.CatalogPath
	var (
		cat *catalog.Catalog
		err error
	)
	if source == "" {
		source = CatalogSourceEmbedded
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded, "source", source, "varieties", len(cat.List()))
	return cat, nil
}

// NewCooldownPolicy builds the care cooldown policy from config
func NewCooldownPolicy(cfg *config.Config) *cooldown.Policy {
	policy := cooldown.NewPolicy(cooldown.Config{
		DevMode: cfg.DevMode,
		Cooldowns: map[string]time.Duration{
			domain.ActionWater:     cfg.WaterCooldown,
			domain.ActionFertilize: cfg.FertilizeCooldown,
		},
	})

	slog.Info(LogMsgCooldownPolicy,
		"water", policy.Window(domain.ActionWater),
		"fertilize", policy.Window(domain.ActionFertilize),
		"dev_mode", cfg.DevMode)
	return policy
}

// LoadTimezone resolves the zone that decides calendar days for check-ins
func LoadTimezone(cfg *config.Config) (*time.Location, error) {
	loc, err := checkin.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidTimezone, err)
	}
	return loc, nil
}
