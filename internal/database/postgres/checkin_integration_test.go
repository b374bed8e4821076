package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

func TestCheckinRepository_StreakLifecycle(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewCheckinRepository(pool)
	user := createTestUser(t, pool, "streaker")

	rec, err := repo.GetStreak(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, rec)

	day1 := civil.Date{Year: 2024, Month: time.March, Day: 1}
	first := domain.StreakRecord{UserID: user.ID, LastCheckinDate: day1, ConsecutiveDays: 1, TotalDays: 1}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetStreakForUpdate(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, locked)

	require.NoError(t, tx.InsertCheckin(ctx, &domain.CheckinEntry{UserID: user.ID, Date: day1, ConsecutiveDays: 1, Reward: domain.RewardBundle{Coin: 20}}))
	require.NoError(t, tx.SaveStreak(ctx, nil, first))
	require.NoError(t, tx.Commit(ctx))

	stored, err := repo.GetStreak(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first, *stored)

	// Same day again: both guards reject
	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	err = tx.InsertCheckin(ctx, &domain.CheckinEntry{UserID: user.ID, Date: day1, ConsecutiveDays: 2})
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	repository.SafeRollback(ctx, tx)

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	err = tx.SaveStreak(ctx, nil, first)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	repository.SafeRollback(ctx, tx)

	// Stale prev loses
	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	stale := domain.StreakRecord{UserID: user.ID, LastCheckinDate: day1.AddDays(-1)}
	err = tx.SaveStreak(ctx, &stale, domain.StreakRecord{UserID: user.ID, LastCheckinDate: day1.AddDays(1), ConsecutiveDays: 2, TotalDays: 2})
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	repository.SafeRollback(ctx, tx)

	// Next day advances
	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	day2 := day1.AddDays(1)
	require.NoError(t, tx.InsertCheckin(ctx, &domain.CheckinEntry{UserID: user.ID, Date: day2, ConsecutiveDays: 2, Reward: domain.RewardBundle{Coin: 20}}))
	require.NoError(t, tx.SaveStreak(ctx, stored, domain.StreakRecord{UserID: user.ID, LastCheckinDate: day2, ConsecutiveDays: 2, TotalDays: 2}))
	require.NoError(t, tx.Commit(ctx))

	dates, err := repo.ListCheckinDates(ctx, user.ID, day1, day1.AddDays(30))
	require.NoError(t, err)
	assert.Equal(t, []civil.Date{day1, day2}, dates)

	history, err := repo.ListCheckins(ctx, user.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, day2, history[0].Date)
	assert.Equal(t, 2, history[0].ConsecutiveDays)

	history, err = repo.ListCheckins(ctx, user.ID, 10, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, day1, history[0].Date)
}

func TestCheckinRepository_MilestoneClaimedOnce(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewCheckinRepository(pool)
	user := createTestUser(t, pool, "milestoner")

	claim := func() bool {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)
		ok, err := tx.ClaimMilestone(ctx, user.ID, 7, time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
		return ok
	}

	assert.True(t, claim())
	assert.False(t, claim())

	claimed, err := repo.ListClaimedMilestones(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, claimed, 1)
	assert.Contains(t, claimed, 7)
}
