package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

// GardenRepository implements repository.Garden for PostgreSQL
type GardenRepository struct {
	db *pgxpool.Pool
}

// NewGardenRepository creates a new garden repository
func NewGardenRepository(db *pgxpool.Pool) *GardenRepository {
	return &GardenRepository{db: db}
}

// GetTree retrieves a tree without locking
func (r *GardenRepository) GetTree(ctx context.Context, treeID string) (*domain.Tree, error) {
	return fetchTree(ctx, r.db, SQLSelectTree, treeID)
}

// ListTrees returns a user's trees, newest first
func (r *GardenRepository) ListTrees(ctx context.Context, userID string, includeHarvested bool) ([]domain.Tree, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, SQLSelectTreesByUser, uid, includeHarvested)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryTree, err)
	}
	defer rows.Close()

	trees := make([]domain.Tree, 0)
	for rows.Next() {
		t, err := scanTree(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgQueryTree, err)
		}
		trees = append(trees, *t)
	}
	return trees, rows.Err()
}

// ListActivity returns the newest activity rows for a user, optionally one tree
func (r *GardenRepository) ListActivity(ctx context.Context, userID, treeID string, limit int) ([]domain.ActivityEntry, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var treeParam any
	if treeID != "" {
		tid, err := parseTreeUUID(treeID)
		if err != nil {
			return nil, err
		}
		treeParam = tid
	}

	rows, err := r.db.Query(ctx, SQLSelectActivity, uid, treeParam, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryActivity, err)
	}
	defer rows.Close()

	entries := make([]domain.ActivityEntry, 0)
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.TreeID, &e.Action,
			&e.Reward.Water, &e.Reward.Fertilizer, &e.Reward.Coin, &e.Reward.Experience,
			&e.Quality, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgQueryActivity, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetResources returns the user's balances, all zero when no row exists
func (r *GardenRepository) GetResources(ctx context.Context, userID string) (*domain.Resources, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	res := domain.Resources{UserID: userID}
	err = r.db.QueryRow(ctx, SQLSelectResources, uid).
		Scan(&res.Water, &res.Fertilizer, &res.Coin, &res.Experience)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryResources, err)
	}
	return &res, nil
}

// BeginTx starts a transaction and returns a GardenTx
func (r *GardenRepository) BeginTx(ctx context.Context) (repository.GardenTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	return &gardenTx{tx: tx, resourceWriter: resourceWriter{tx: tx}}, nil
}

// gardenTx implements repository.GardenTx
type gardenTx struct {
	tx pgx.Tx
	resourceWriter
}

// Commit commits the transaction
func (t *gardenTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *gardenTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// InsertTree stores a freshly planted tree
func (t *gardenTx) InsertTree(ctx context.Context, tree *domain.Tree) error {
	id, err := parseTreeUUID(tree.ID)
	if err != nil {
		return err
	}
	uid, err := parseUserUUID(tree.UserID)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, SQLInsertTree, id, uid, tree.Variety, tree.PlantedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertTree, err)
	}
	return nil
}

// GetTreeForUpdate retrieves the tree with FOR UPDATE lock
func (t *gardenTx) GetTreeForUpdate(ctx context.Context, treeID string) (*domain.Tree, error) {
	return fetchTree(ctx, t.tx, SQLSelectTreeForUpdate, treeID)
}

// ApplyCare stamps a care action and its growth checkpoint under the cooldown
// and harvest guards
func (t *gardenTx) ApplyCare(ctx context.Context, treeID, action string, at, cutoff time.Time, cp domain.GrowthCheckpoint) (*domain.Tree, error) {
	var query string
	switch action {
	case domain.ActionWater:
		query = SQLApplyWater
	case domain.ActionFertilize:
		query = SQLApplyFertilize
	default:
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnsupportedCareKind, action)
	}

	id, err := parseTreeUUID(treeID)
	if err != nil {
		return nil, err
	}

	tree, err := scanTree(t.tx.QueryRow(ctx, query, id, at, cutoff, cp.At, cp.DayUnits, cp.PartialUnits))
	if err == nil {
		return tree, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrMsgApplyCare, err)
	}

	// The guard failed; report which one.
	current, err := fetchTree(ctx, t.tx, SQLSelectTree, treeID)
	if err != nil {
		return nil, err
	}
	if current.Harvested {
		return nil, domain.ErrAlreadyHarvested
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrCooldownActive, action)
}

// MarkHarvested flips the harvested flag exactly once
func (t *gardenTx) MarkHarvested(ctx context.Context, treeID string, at time.Time) error {
	id, err := parseTreeUUID(treeID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, SQLMarkHarvested, id, at)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarkHarvested, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyHarvested
	}
	return nil
}
