package repository

import (
	"context"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// UpsertUser creates the user, its platform link and a zero resource row on
	// first sight of (platform, platform_id). On return user.ID is the stored ID.
	UpsertUser(ctx context.Context, user *domain.User) error
	GetUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
