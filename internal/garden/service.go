// Package garden plants, tends and harvests trees. Growth and health are
// never stored: every response recomputes them from the tree's timestamps.
package garden

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CoffeeGarden_Go/internal/catalog"
	"github.com/osse101/CoffeeGarden_Go/internal/cooldown"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/event"
	"github.com/osse101/CoffeeGarden_Go/internal/growth"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
	"github.com/osse101/CoffeeGarden_Go/internal/reward"
)

// Service defines the garden business logic. userID is always the caller;
// a tree owned by someone else is reported as domain.ErrTreeNotFound.
type Service interface {
	Plant(ctx context.Context, userID, variety string) (*domain.TreeView, error)
	Water(ctx context.Context, userID, treeID string) (*domain.CareResult, error)
	Fertilize(ctx context.Context, userID, treeID string) (*domain.CareResult, error)
	Harvest(ctx context.Context, userID, treeID string) (*domain.HarvestResult, error)

	GetTreeView(ctx context.Context, userID, treeID string) (*domain.TreeView, error)
	ListTrees(ctx context.Context, userID string, includeHarvested bool) ([]domain.TreeView, error)
	GetTreeLog(ctx context.Context, userID, treeID string, limit int) ([]domain.ActivityEntry, error)
	GetResources(ctx context.Context, userID string) (*domain.Resources, error)
	ListVarieties() []domain.Variety
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Option customizes a service
type Option func(*service)

// WithClock replaces time.Now, for tests and simulations
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	repo      repository.Garden
	catalog   *catalog.Catalog
	cooldowns *cooldown.Policy
	publisher EventPublisher
	now       func() time.Time
}

// NewService creates a new garden service. publisher may be nil.
func NewService(repo repository.Garden, cat *catalog.Catalog, cooldowns *cooldown.Policy, publisher EventPublisher, opts ...Option) Service {
	s := &service{
		repo:      repo,
		catalog:   cat,
		cooldowns: cooldowns,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// clock returns the current instant at the precision the store keeps
func (s *service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(context.WithoutCancel(ctx), evt)
	}
}

func (s *service) Plant(ctx context.Context, userID, varietyName string) (*domain.TreeView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlantCalled, "user_id", userID, "variety", varietyName)

	variety, err := s.catalog.Get(varietyName)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	tree := domain.Tree{
		ID:        uuid.NewString(),
		UserID:    userID,
		Variety:   variety.Name,
		PlantedAt: now,
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertTree(ctx, &tree); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertTree, err)
	}
	if err := tx.AppendActivity(ctx, &domain.ActivityEntry{
		UserID:    userID,
		TreeID:    tree.ID,
		Action:    domain.ActionPlant,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgAppendLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}

	log.Info(LogMsgTreePlanted, "user_id", userID, "tree_id", tree.ID, "variety", tree.Variety)
	s.publish(ctx, event.NewTreePlantedEvent(tree))

	return s.view(tree, now)
}

func (s *service) Water(ctx context.Context, userID, treeID string) (*domain.CareResult, error) {
	return s.care(ctx, userID, treeID, domain.ActionWater)
}

func (s *service) Fertilize(ctx context.Context, userID, treeID string) (*domain.CareResult, error) {
	return s.care(ctx, userID, treeID, domain.ActionFertilize)
}

// care applies one water or fertilize action. The cooldown is checked against
// the locked row first for a precise error, and enforced again by the store's
// conditional update.
func (s *service) care(ctx context.Context, userID, treeID, action string) (*domain.CareResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCareCalled, "user_id", userID, "tree_id", treeID, "action", action)

	bundle, err := reward.ForCare(action)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUnknownAction, domain.ErrInvalidInput, action)
	}

	now := s.clock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	tree, err := s.lockOwnedTree(ctx, tx, userID, treeID)
	if err != nil {
		return nil, err
	}
	if tree.Harvested {
		return nil, domain.ErrAlreadyHarvested
	}
	if err := s.cooldowns.Check(ctx, action, tree.LastCare(action), now); err != nil {
		log.Info(LogMsgCareOnCooldown, "tree_id", treeID, "action", action, "error", err)
		return nil, err
	}

	variety, err := s.catalog.Get(tree.Variety)
	if err != nil {
		return nil, err
	}
	checkpoint, err := growth.Checkpoint(variety, growth.FromTree(*tree, now), now)
	if err != nil {
		return nil, err
	}

	updated, err := tx.ApplyCare(ctx, treeID, action, now, s.cooldowns.Cutoff(action, now), checkpoint)
	if err != nil {
		if errors.Is(err, domain.ErrCooldownActive) {
			return nil, s.cooldownError(action, tree.LastCare(action), now)
		}
		if errors.Is(err, domain.ErrAlreadyHarvested) || errors.Is(err, domain.ErrTreeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgApplyCare, action, err)
	}

	if _, err := tx.AddResources(ctx, userID, bundle); err != nil {
		return nil, fmt.Errorf(ErrMsgAddResources, err)
	}
	if err := tx.AppendActivity(ctx, &domain.ActivityEntry{
		UserID:    userID,
		TreeID:    treeID,
		Action:    action,
		Reward:    bundle,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgAppendLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}

	log.Info(LogMsgCareApplied, "user_id", userID, "tree_id", treeID, "action", action)
	s.publish(ctx, event.NewTreeCaredEvent(*updated, action, bundle, now))

	view, err := s.view(*updated, now)
	if err != nil {
		return nil, err
	}
	return &domain.CareResult{Action: action, View: *view, Reward: bundle}, nil
}

// cooldownError rebuilds the typed error when the store rejects an action
// that passed the in-process check. last may already be stale; a zero
// remaining time is still reported as a cooldown.
func (s *service) cooldownError(action string, last *time.Time, now time.Time) error {
	if err := s.cooldowns.Check(context.Background(), action, last, now); err != nil {
		return err
	}
	return cooldown.CooldownError{Action: action, AvailableAt: now}
}

func (s *service) Harvest(ctx context.Context, userID, treeID string) (*domain.HarvestResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgHarvestCalled, "user_id", userID, "tree_id", treeID)

	now := s.clock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	tree, err := s.lockOwnedTree(ctx, tx, userID, treeID)
	if err != nil {
		return nil, err
	}
	if tree.Harvested {
		return nil, domain.ErrAlreadyHarvested
	}

	variety, err := s.catalog.Get(tree.Variety)
	if err != nil {
		return nil, err
	}
	in := growth.FromTree(*tree, now)
	snap, err := growth.Calculate(variety, in)
	if err != nil {
		return nil, err
	}
	if !snap.IsMature {
		log.Info(LogMsgHarvestNotReady, "tree_id", treeID, "stage", snap.StageName)
		return nil, fmt.Errorf(ErrMsgNotMature, domain.ErrNotMature,
			snap.StageName, snap.StageIndex+1, snap.StageCount, snap.ProgressPercent)
	}
	health, err := growth.Health(in)
	if err != nil {
		return nil, err
	}
	bundle, quality, err := reward.ForHarvest(variety, health)
	if err != nil {
		return nil, err
	}

	if err := tx.MarkHarvested(ctx, treeID, now); err != nil {
		if errors.Is(err, domain.ErrAlreadyHarvested) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgMarkHarvested, err)
	}
	if _, err := tx.AddResources(ctx, userID, bundle); err != nil {
		return nil, fmt.Errorf(ErrMsgAddResources, err)
	}
	if err := tx.AppendActivity(ctx, &domain.ActivityEntry{
		UserID:    userID,
		TreeID:    treeID,
		Action:    domain.ActionHarvest,
		Reward:    bundle,
		Quality:   quality,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgAppendLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}

	harvested := *tree
	harvested.Harvested = true
	harvested.HarvestedAt = &now

	log.Info(LogMsgTreeHarvested, "user_id", userID, "tree_id", treeID, "quality", quality, "coin", bundle.Coin)
	s.publish(ctx, event.NewTreeHarvestedEvent(harvested, health, quality, bundle, now))

	view, err := s.view(harvested, now)
	if err != nil {
		return nil, err
	}
	return &domain.HarvestResult{View: *view, Reward: bundle, Quality: quality, Health: health}, nil
}

// lockOwnedTree loads the tree FOR UPDATE and hides trees owned by others
func (s *service) lockOwnedTree(ctx context.Context, tx repository.GardenTx, userID, treeID string) (*domain.Tree, error) {
	tree, err := tx.GetTreeForUpdate(ctx, treeID)
	if err != nil {
		if errors.Is(err, domain.ErrTreeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgLoadTree, err)
	}
	if tree.UserID != userID {
		logger.FromContext(ctx).Warn(LogMsgOwnerMismatch, "user_id", userID, "tree_id", treeID)
		return nil, domain.ErrTreeNotFound
	}
	return tree, nil
}

func (s *service) ownedTree(ctx context.Context, userID, treeID string) (*domain.Tree, error) {
	tree, err := s.repo.GetTree(ctx, treeID)
	if err != nil {
		if errors.Is(err, domain.ErrTreeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgLoadTree, err)
	}
	if tree.UserID != userID {
		logger.FromContext(ctx).Warn(LogMsgOwnerMismatch, "user_id", userID, "tree_id", treeID)
		return nil, domain.ErrTreeNotFound
	}
	return tree, nil
}

func (s *service) GetTreeView(ctx context.Context, userID, treeID string) (*domain.TreeView, error) {
	tree, err := s.ownedTree(ctx, userID, treeID)
	if err != nil {
		return nil, err
	}
	return s.view(*tree, s.clock())
}

func (s *service) ListTrees(ctx context.Context, userID string, includeHarvested bool) ([]domain.TreeView, error) {
	trees, err := s.repo.ListTrees(ctx, userID, includeHarvested)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	views := make([]domain.TreeView, 0, len(trees))
	for _, t := range trees {
		v, err := s.view(t, now)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *service) GetTreeLog(ctx context.Context, userID, treeID string, limit int) ([]domain.ActivityEntry, error) {
	if _, err := s.ownedTree(ctx, userID, treeID); err != nil {
		return nil, err
	}
	return s.repo.ListActivity(ctx, userID, treeID, clampLimit(limit))
}

func (s *service) GetResources(ctx context.Context, userID string) (*domain.Resources, error) {
	return s.repo.GetResources(ctx, userID)
}

func (s *service) ListVarieties() []domain.Variety {
	return s.catalog.List()
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLogLimit
	case limit > MaxLogLimit:
		return MaxLogLimit
	default:
		return limit
	}
}
