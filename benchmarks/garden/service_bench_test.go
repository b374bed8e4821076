package garden_bench

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"

	"github.com/osse101/CoffeeGarden_Go/internal/calendar"
	"github.com/osse101/CoffeeGarden_Go/internal/catalog"
	"github.com/osse101/CoffeeGarden_Go/internal/checkin"
	"github.com/osse101/CoffeeGarden_Go/internal/cooldown"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/event"
	"github.com/osse101/CoffeeGarden_Go/internal/garden"
	"github.com/osse101/CoffeeGarden_Go/internal/growth"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

const (
	benchUserID = "7f1c2a9e-0000-4000-8000-000000000001"
	benchTreeID = "7f1c2a9e-0000-4000-8000-0000000000aa"
)

var benchNow = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

func benchTree() *domain.Tree {
	// Fresh object per call so services may mutate it safely
	watered := benchNow.Add(-30 * time.Hour)
	fertilized := benchNow.Add(-50 * time.Hour)
	return &domain.Tree{
		ID:                     benchTreeID,
		UserID:                 benchUserID,
		Variety:                "arabica",
		PlantedAt:              benchNow.Add(-10 * domain.Day),
		LastWateredAt:          &watered,
		LastFertilizedAt:       &fertilized,
		WaterApplications:      6,
		FertilizerApplications: 3,
	}
}

type stubResources struct{}

func (stubResources) AddResources(context.Context, string, domain.RewardBundle) (*domain.Resources, error) {
	return &domain.Resources{}, nil
}
func (stubResources) AppendActivity(context.Context, *domain.ActivityEntry) error { return nil }

type stubGardenTx struct{ stubResources }

func (stubGardenTx) Commit(context.Context) error                           { return nil }
func (stubGardenTx) Rollback(context.Context) error                         { return nil }
func (stubGardenTx) InsertTree(context.Context, *domain.Tree) error         { return nil }
func (stubGardenTx) MarkHarvested(context.Context, string, time.Time) error { return nil }
func (stubGardenTx) GetTreeForUpdate(context.Context, string) (*domain.Tree, error) {
	return benchTree(), nil
}
func (stubGardenTx) ApplyCare(_ context.Context, _ string, action string, at, _ time.Time, cp domain.GrowthCheckpoint) (*domain.Tree, error) {
	t := benchTree()
	t.Checkpoint = &cp
	if action == domain.ActionWater {
		t.LastWateredAt = &at
		t.WaterApplications++
	} else {
		t.LastFertilizedAt = &at
		t.FertilizerApplications++
	}
	return t, nil
}

type stubGardenRepo struct{}

func (stubGardenRepo) GetTree(context.Context, string) (*domain.Tree, error) { return benchTree(), nil }
func (stubGardenRepo) ListTrees(context.Context, string, bool) ([]domain.Tree, error) {
	return []domain.Tree{*benchTree(), *benchTree(), *benchTree()}, nil
}
func (stubGardenRepo) ListActivity(context.Context, string, string, int) ([]domain.ActivityEntry, error) {
	return nil, nil
}
func (stubGardenRepo) GetResources(context.Context, string) (*domain.Resources, error) {
	return &domain.Resources{}, nil
}
func (stubGardenRepo) BeginTx(context.Context) (repository.GardenTx, error) {
	return stubGardenTx{}, nil
}

type stubCheckinTx struct{ stubResources }

func (stubCheckinTx) Commit(context.Context) error   { return nil }
func (stubCheckinTx) Rollback(context.Context) error { return nil }
func (stubCheckinTx) GetStreakForUpdate(context.Context, string) (*domain.StreakRecord, error) {
	return &domain.StreakRecord{
		UserID:          benchUserID,
		LastCheckinDate: civil.DateOf(benchNow).AddDays(-1),
		ConsecutiveDays: 6,
		TotalDays:       40,
	}, nil
}
func (stubCheckinTx) InsertCheckin(context.Context, *domain.CheckinEntry) error { return nil }
func (stubCheckinTx) SaveStreak(context.Context, *domain.StreakRecord, domain.StreakRecord) error {
	return nil
}
func (stubCheckinTx) ClaimMilestone(context.Context, string, int, time.Time) (bool, error) {
	return true, nil
}

type stubCheckinRepo struct{}

func (stubCheckinRepo) GetStreak(context.Context, string) (*domain.StreakRecord, error) {
	return nil, nil
}
func (stubCheckinRepo) ListCheckinDates(context.Context, string, civil.Date, civil.Date) ([]civil.Date, error) {
	return nil, nil
}
func (stubCheckinRepo) ListCheckins(context.Context, string, int, int) ([]domain.CheckinEntry, error) {
	return nil, nil
}
func (stubCheckinRepo) ListClaimedMilestones(context.Context, string) (map[int]time.Time, error) {
	return nil, nil
}
func (stubCheckinRepo) BeginTx(context.Context) (repository.CheckinTx, error) {
	return stubCheckinTx{}, nil
}

// StubPublisher drops every event
type StubPublisher struct{}

func (StubPublisher) PublishWithRetry(context.Context, event.Event) {}

func newGardenService(b *testing.B) garden.Service {
	b.Helper()
	cat, err := catalog.Default()
	if err != nil {
		b.Fatalf("catalog: %v", err)
	}
	return garden.NewService(stubGardenRepo{}, cat, cooldown.NewPolicy(cooldown.Config{}), StubPublisher{},
		garden.WithClock(func() time.Time { return benchNow }))
}

// --- Benchmark Functions ---

// BenchmarkWater measures one full care transaction against stubbed storage.
func BenchmarkWater(b *testing.B) {
	svc := newGardenService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Water(ctx, benchUserID, benchTreeID); err != nil {
			b.Fatalf("Water failed: %v", err)
		}
	}
}

// BenchmarkListTrees measures view computation for a small garden.
func BenchmarkListTrees(b *testing.B) {
	svc := newGardenService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ListTrees(ctx, benchUserID, true); err != nil {
			b.Fatalf("ListTrees failed: %v", err)
		}
	}
}

// BenchmarkCheckin measures a consecutive-day check-in that lands on a milestone.
func BenchmarkCheckin(b *testing.B) {
	svc := checkin.NewService(stubCheckinRepo{}, time.UTC, StubPublisher{},
		checkin.WithClock(func() time.Time { return benchNow }))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Checkin(ctx, benchUserID); err != nil {
			b.Fatalf("Checkin failed: %v", err)
		}
	}
}

// BenchmarkCalculate_LongNeglect integrates growth over a year of sparse care.
func BenchmarkCalculate_LongNeglect(b *testing.B) {
	cat, err := catalog.Default()
	if err != nil {
		b.Fatalf("catalog: %v", err)
	}
	variety, err := cat.Get("liberica")
	if err != nil {
		b.Fatalf("variety: %v", err)
	}
	planted := benchNow.AddDate(-1, 0, 0)
	watered := planted.Add(3 * domain.Day)
	in := growth.Input{
		PlantedAt:         planted,
		LastWateredAt:     &watered,
		WaterApplications: 1,
		Now:               benchNow,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := growth.Calculate(variety, in); err != nil {
			b.Fatalf("Calculate failed: %v", err)
		}
	}
}

// BenchmarkCalendarBuild lays out a month with every day checked.
func BenchmarkCalendarBuild(b *testing.B) {
	checked := make([]civil.Date, 31)
	first := civil.Date{Year: 2024, Month: time.March, Day: 1}
	for i := range checked {
		checked[i] = first.AddDays(i)
	}
	today := civil.DateOf(benchNow)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calendar.Build(2024, 3, checked, today); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
