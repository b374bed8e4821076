// Package mocks holds testify mocks for the repository and publisher
// interfaces. Regenerate with mockery when an interface changes.
package mocks

import (
	"context"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

// MockRepositoryUser implements repository.User
type MockRepositoryUser struct {
	mock.Mock
}

// NewMockRepositoryUser creates a mock that asserts its expectations on cleanup
func NewMockRepositoryUser(t testingT) *MockRepositoryUser {
	m := &MockRepositoryUser{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepositoryUser) UpsertUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepositoryUser) GetUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error) {
	args := m.Called(ctx, platform, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepositoryUser) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRepositoryGarden implements repository.Garden
type MockRepositoryGarden struct {
	mock.Mock
}

// NewMockRepositoryGarden creates a mock that asserts its expectations on cleanup
func NewMockRepositoryGarden(t testingT) *MockRepositoryGarden {
	m := &MockRepositoryGarden{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepositoryGarden) GetTree(ctx context.Context, treeID string) (*domain.Tree, error) {
	args := m.Called(ctx, treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockRepositoryGarden) ListTrees(ctx context.Context, userID string, includeHarvested bool) ([]domain.Tree, error) {
	args := m.Called(ctx, userID, includeHarvested)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tree), args.Error(1)
}

func (m *MockRepositoryGarden) ListActivity(ctx context.Context, userID, treeID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, userID, treeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

func (m *MockRepositoryGarden) GetResources(ctx context.Context, userID string) (*domain.Resources, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resources), args.Error(1)
}

func (m *MockRepositoryGarden) BeginTx(ctx context.Context) (repository.GardenTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GardenTx), args.Error(1)
}

// MockRepositoryGardenTx implements repository.GardenTx. Expectations for
// AddResources and AppendActivity are set on the same mock.
type MockRepositoryGardenTx struct {
	mock.Mock
}

// NewMockRepositoryGardenTx creates a mock that asserts its expectations on cleanup
func NewMockRepositoryGardenTx(t testingT) *MockRepositoryGardenTx {
	m := &MockRepositoryGardenTx{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepositoryGardenTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepositoryGardenTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepositoryGardenTx) InsertTree(ctx context.Context, tree *domain.Tree) error {
	args := m.Called(ctx, tree)
	return args.Error(0)
}

func (m *MockRepositoryGardenTx) GetTreeForUpdate(ctx context.Context, treeID string) (*domain.Tree, error) {
	args := m.Called(ctx, treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockRepositoryGardenTx) ApplyCare(ctx context.Context, treeID, action string, at, cutoff time.Time, checkpoint domain.GrowthCheckpoint) (*domain.Tree, error) {
	args := m.Called(ctx, treeID, action, at, cutoff, checkpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockRepositoryGardenTx) MarkHarvested(ctx context.Context, treeID string, at time.Time) error {
	args := m.Called(ctx, treeID, at)
	return args.Error(0)
}

func (m *MockRepositoryGardenTx) AddResources(ctx context.Context, userID string, bundle domain.RewardBundle) (*domain.Resources, error) {
	args := m.Called(ctx, userID, bundle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resources), args.Error(1)
}

func (m *MockRepositoryGardenTx) AppendActivity(ctx context.Context, entry *domain.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockRepositoryCheckin implements repository.Checkin
type MockRepositoryCheckin struct {
	mock.Mock
}

// NewMockRepositoryCheckin creates a mock that asserts its expectations on cleanup
func NewMockRepositoryCheckin(t testingT) *MockRepositoryCheckin {
	m := &MockRepositoryCheckin{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepositoryCheckin) GetStreak(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakRecord), args.Error(1)
}

func (m *MockRepositoryCheckin) ListCheckinDates(ctx context.Context, userID string, from, to civil.Date) ([]civil.Date, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]civil.Date), args.Error(1)
}

func (m *MockRepositoryCheckin) ListCheckins(ctx context.Context, userID string, limit, offset int) ([]domain.CheckinEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckinEntry), args.Error(1)
}

func (m *MockRepositoryCheckin) ListClaimedMilestones(ctx context.Context, userID string) (map[int]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]time.Time), args.Error(1)
}

func (m *MockRepositoryCheckin) BeginTx(ctx context.Context) (repository.CheckinTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CheckinTx), args.Error(1)
}

// MockRepositoryCheckinTx implements repository.CheckinTx
type MockRepositoryCheckinTx struct {
	mock.Mock
}

// NewMockRepositoryCheckinTx creates a mock that asserts its expectations on cleanup
func NewMockRepositoryCheckinTx(t testingT) *MockRepositoryCheckinTx {
	m := &MockRepositoryCheckinTx{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepositoryCheckinTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepositoryCheckinTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepositoryCheckinTx) GetStreakForUpdate(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakRecord), args.Error(1)
}

func (m *MockRepositoryCheckinTx) InsertCheckin(ctx context.Context, entry *domain.CheckinEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepositoryCheckinTx) SaveStreak(ctx context.Context, prev *domain.StreakRecord, next domain.StreakRecord) error {
	args := m.Called(ctx, prev, next)
	return args.Error(0)
}

func (m *MockRepositoryCheckinTx) ClaimMilestone(ctx context.Context, userID string, threshold int, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, threshold, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepositoryCheckinTx) AddResources(ctx context.Context, userID string, bundle domain.RewardBundle) (*domain.Resources, error) {
	args := m.Called(ctx, userID, bundle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resources), args.Error(1)
}

func (m *MockRepositoryCheckinTx) AppendActivity(ctx context.Context, entry *domain.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var (
	_ repository.User      = (*MockRepositoryUser)(nil)
	_ repository.Garden    = (*MockRepositoryGarden)(nil)
	_ repository.GardenTx  = (*MockRepositoryGardenTx)(nil)
	_ repository.Checkin   = (*MockRepositoryCheckin)(nil)
	_ repository.CheckinTx = (*MockRepositoryCheckinTx)(nil)
)
