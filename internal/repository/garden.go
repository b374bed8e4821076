package repository

import (
	"context"
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// Garden handles tree persistence and the activity log
type Garden interface {
	// GetTree returns domain.ErrTreeNotFound when no row exists
	GetTree(ctx context.Context, treeID string) (*domain.Tree, error)

	// ListTrees returns a user's trees, newest first
	ListTrees(ctx context.Context, userID string, includeHarvested bool) ([]domain.Tree, error)

	// ListActivity returns log rows for a user, newest first. An empty treeID
	// means every row of the user.
	ListActivity(ctx context.Context, userID, treeID string, limit int) ([]domain.ActivityEntry, error)

	// GetResources returns the user's balances, all zero when no row exists
	GetResources(ctx context.Context, userID string) (*domain.Resources, error)

	// Transaction support
	BeginTx(ctx context.Context) (GardenTx, error)
}

// GardenTx defines the interface for garden transactions
type GardenTx interface {
	Tx

	InsertTree(ctx context.Context, tree *domain.Tree) error

	// GetTreeForUpdate retrieves the tree with FOR UPDATE lock
	GetTreeForUpdate(ctx context.Context, treeID string) (*domain.Tree, error)

	// ApplyCare stamps a water or fertilize action at `at` and bumps its
	// counter, only while the tree is unharvested and the previous application
	// is absent or not after cutoff. It returns domain.ErrCooldownActive or
	// domain.ErrAlreadyHarvested when the guard fails. The checkpoint is stored
	// in the same update.
	ApplyCare(ctx context.Context, treeID, action string, at, cutoff time.Time, checkpoint domain.GrowthCheckpoint) (*domain.Tree, error)

	// MarkHarvested flips the one-way flag. It returns
	// domain.ErrAlreadyHarvested when the tree was already harvested.
	MarkHarvested(ctx context.Context, treeID string, at time.Time) error

	// Shared balance and log writes
	ResourceWriter
}

// ResourceWriter applies reward increments and appends audit rows
type ResourceWriter interface {
	AddResources(ctx context.Context, userID string, bundle domain.RewardBundle) (*domain.Resources, error)
	AppendActivity(ctx context.Context, entry *domain.ActivityEntry) error
}
