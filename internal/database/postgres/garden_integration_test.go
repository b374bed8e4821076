package postgres

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

func plantTestTree(t *testing.T, repo *GardenRepository, userID string, plantedAt time.Time) *domain.Tree {
	t.Helper()
	ctx := context.Background()

	tree := &domain.Tree{ID: uuid.NewString(), UserID: userID, Variety: "arabica", PlantedAt: plantedAt}
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	require.NoError(t, tx.InsertTree(ctx, tree))
	require.NoError(t, tx.Commit(ctx))
	return tree
}

func TestGardenRepository_PlantAndRead(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewGardenRepository(pool)
	user := createTestUser(t, pool, "planter")

	plantedAt := time.Now().UTC().Truncate(time.Microsecond)
	tree := plantTestTree(t, repo, user.ID, plantedAt)

	got, err := repo.GetTree(ctx, tree.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "arabica", got.Variety)
	assert.True(t, plantedAt.Equal(got.PlantedAt))
	assert.Nil(t, got.LastWateredAt)
	assert.Nil(t, got.Checkpoint)
	assert.False(t, got.Harvested)

	_, err = repo.GetTree(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrTreeNotFound)
	_, err = repo.GetTree(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGardenRepository_ApplyCareGuards(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewGardenRepository(pool)
	user := createTestUser(t, pool, "carer")

	t0 := time.Now().UTC().Add(-72 * time.Hour).Truncate(time.Microsecond)
	tree := plantTestTree(t, repo, user.ID, t0)

	apply := func(at time.Time) (*domain.Tree, error) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		cp := domain.GrowthCheckpoint{At: at, DayUnits: 7, PartialUnits: 3}
		updated, err := tx.ApplyCare(ctx, tree.ID, domain.ActionWater, at, at.Add(-24*time.Hour), cp)
		if err != nil {
			return nil, err
		}
		return updated, tx.Commit(ctx)
	}

	first := t0.Add(time.Hour)
	updated, err := apply(first)
	require.NoError(t, err)
	require.NotNil(t, updated.LastWateredAt)
	assert.True(t, first.Equal(*updated.LastWateredAt))
	assert.Equal(t, 1, updated.WaterApplications)
	require.NotNil(t, updated.Checkpoint)
	assert.True(t, first.Equal(updated.Checkpoint.At))
	assert.Equal(t, int64(7), updated.Checkpoint.DayUnits)
	assert.Equal(t, int64(3), updated.Checkpoint.PartialUnits)

	stored, err := repo.GetTree(ctx, tree.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Checkpoint)
	assert.True(t, first.Equal(stored.Checkpoint.At))

	_, err = apply(first.Add(2 * time.Hour))
	assert.ErrorIs(t, err, domain.ErrCooldownActive)

	// Exactly one window later is allowed
	updated, err = apply(first.Add(24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, updated.WaterApplications)
}

func TestGardenRepository_ConcurrentCareAppliesOnce(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewGardenRepository(pool)
	user := createTestUser(t, pool, "racer")
	tree := plantTestTree(t, repo, user.ID, time.Now().UTC().Add(-time.Hour))

	now := time.Now().UTC()
	var successes, cooldowns int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := repo.BeginTx(ctx)
			if err != nil {
				t.Errorf("begin: %v", err)
				return
			}
			defer repository.SafeRollback(ctx, tx)

			_, err = tx.ApplyCare(ctx, tree.ID, domain.ActionFertilize, now, now.Add(-48*time.Hour), domain.GrowthCheckpoint{At: now})
			switch {
			case err == nil:
				if err := tx.Commit(ctx); err == nil {
					atomic.AddInt32(&successes, 1)
				}
			case errors.Is(err, domain.ErrCooldownActive):
				atomic.AddInt32(&cooldowns, 1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)
	assert.Equal(t, int32(9), cooldowns)

	got, err := repo.GetTree(ctx, tree.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FertilizerApplications)
}

func TestGardenRepository_HarvestOnce(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewGardenRepository(pool)
	user := createTestUser(t, pool, "harvester")
	tree := plantTestTree(t, repo, user.ID, time.Now().UTC().Add(-30*24*time.Hour))

	harvest := func() error {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)
		if err := tx.MarkHarvested(ctx, tree.ID, time.Now().UTC()); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	require.NoError(t, harvest())
	assert.ErrorIs(t, harvest(), domain.ErrAlreadyHarvested)

	// Care after harvest reports the harvest, not a cooldown
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	now := time.Now().UTC()
	_, err = tx.ApplyCare(ctx, tree.ID, domain.ActionWater, now, now.Add(-24*time.Hour), domain.GrowthCheckpoint{At: now})
	assert.ErrorIs(t, err, domain.ErrAlreadyHarvested)

	active, err := repo.ListTrees(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.ListTrees(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Harvested)
	assert.NotNil(t, all[0].HarvestedAt)
}

func TestGardenRepository_ResourcesAndActivity(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewGardenRepository(pool)
	user := createTestUser(t, pool, "rich")
	tree := plantTestTree(t, repo, user.ID, time.Now().UTC().Add(-time.Hour))

	res, err := repo.GetResources(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, res.IsZero())

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.AddResources(ctx, user.ID, domain.RewardBundle{Coin: 100, Experience: 50})
	require.NoError(t, err)
	balance, err := tx.AddResources(ctx, user.ID, domain.RewardBundle{Water: 3, Experience: 10})
	require.NoError(t, err)
	assert.Equal(t, domain.RewardBundle{Water: 3, Coin: 100, Experience: 60}, balance.RewardBundle)

	_, err = tx.AddResources(ctx, user.ID, domain.RewardBundle{Coin: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	base := time.Now().UTC().Truncate(time.Microsecond)
	entries := []*domain.ActivityEntry{
		{UserID: user.ID, TreeID: tree.ID, Action: domain.ActionPlant, CreatedAt: base.Add(-2 * time.Minute)},
		{UserID: user.ID, TreeID: tree.ID, Action: domain.ActionWater, Reward: domain.RewardBundle{Experience: 10}, CreatedAt: base.Add(-time.Minute)},
		{UserID: user.ID, Action: domain.ActionCheckin, Reward: domain.RewardBundle{Coin: 20}, CreatedAt: base},
	}
	for _, e := range entries {
		require.NoError(t, tx.AppendActivity(ctx, e))
		assert.NotZero(t, e.ID)
	}
	require.NoError(t, tx.Commit(ctx))

	treeLog, err := repo.ListActivity(ctx, user.ID, tree.ID, 10)
	require.NoError(t, err)
	require.Len(t, treeLog, 2)
	assert.Equal(t, domain.ActionWater, treeLog[0].Action)
	assert.Equal(t, domain.ActionPlant, treeLog[1].Action)

	all, err := repo.ListActivity(ctx, user.ID, "", 2)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.ActionCheckin, all[0].Action)
	assert.Empty(t, all[0].TreeID)

	res, err = repo.GetResources(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Coin)
}
