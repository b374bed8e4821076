package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/user"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Resolve(ctx context.Context, platform, platformID, username string) (*domain.User, error) {
	args := m.Called(ctx, platform, platformID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Lookup(ctx context.Context, platform, platformID string) (*domain.User, error) {
	args := m.Called(ctx, platform, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	args := m.Called()
	return args.Get(0).(user.CacheStats)
}

// MockGardenService mocks garden.Service
type MockGardenService struct {
	mock.Mock
}

func (m *MockGardenService) Plant(ctx context.Context, userID, variety string) (*domain.TreeView, error) {
	args := m.Called(ctx, userID, variety)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreeView), args.Error(1)
}

func (m *MockGardenService) Water(ctx context.Context, userID, treeID string) (*domain.CareResult, error) {
	args := m.Called(ctx, userID, treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareResult), args.Error(1)
}

func (m *MockGardenService) Fertilize(ctx context.Context, userID, treeID string) (*domain.CareResult, error) {
	args := m.Called(ctx, userID, treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareResult), args.Error(1)
}

func (m *MockGardenService) Harvest(ctx context.Context, userID, treeID string) (*domain.HarvestResult, error) {
	args := m.Called(ctx, userID, treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestResult), args.Error(1)
}

func (m *MockGardenService) GetTreeView(ctx context.Context, userID, treeID string) (*domain.TreeView, error) {
	args := m.Called(ctx, userID, treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreeView), args.Error(1)
}

func (m *MockGardenService) ListTrees(ctx context.Context, userID string, includeHarvested bool) ([]domain.TreeView, error) {
	args := m.Called(ctx, userID, includeHarvested)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TreeView), args.Error(1)
}

func (m *MockGardenService) GetTreeLog(ctx context.Context, userID, treeID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, userID, treeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

func (m *MockGardenService) GetResources(ctx context.Context, userID string) (*domain.Resources, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resources), args.Error(1)
}

func (m *MockGardenService) ListVarieties() []domain.Variety {
	args := m.Called()
	return args.Get(0).([]domain.Variety)
}

// MockCheckinService mocks checkin.Service
type MockCheckinService struct {
	mock.Mock
}

func (m *MockCheckinService) Checkin(ctx context.Context, userID string) (*domain.CheckinResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckinResult), args.Error(1)
}

func (m *MockCheckinService) GetStatus(ctx context.Context, userID string) (*domain.CheckinStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckinStatus), args.Error(1)
}

func (m *MockCheckinService) GetCalendar(ctx context.Context, userID string, year, month int) (*domain.Calendar, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

func (m *MockCheckinService) GetHistory(ctx context.Context, userID string, limit, offset int) ([]domain.CheckinEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckinEntry), args.Error(1)
}

func (m *MockCheckinService) ListMilestones(ctx context.Context, userID string) ([]domain.MilestoneStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MilestoneStatus), args.Error(1)
}
