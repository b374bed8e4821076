package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByPlatformID resolves a platform identity
func (r *UserRepository) GetUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, SQLSelectUserByPlatform, platform, platformID))
}

// GetUserByID loads a user with its first platform link
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return scanUser(r.db.QueryRow(ctx, SQLSelectUserByID, uid))
}

// UpsertUser creates the user on first sight of its platform identity, or
// refreshes the username of the existing one.
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	existing, err := scanUser(tx.QueryRow(ctx, SQLSelectUserByPlatform, user.Platform, user.PlatformID))
	switch {
	case err == nil:
		if user.Username != "" {
			if _, err := tx.Exec(ctx, SQLUpdateUsername, existing.ID, user.Username); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgInsertUser, err)
			}
			existing.Username = user.Username
		}
		*user = *existing
		return tx.Commit(ctx)
	case !errors.Is(err, domain.ErrUserNotFound):
		return err
	}

	id := uuid.New()
	now := time.Now().UTC()
	if _, err := tx.Exec(ctx, SQLInsertUser, id, user.Username, now); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertUser, err)
	}
	tag, err := tx.Exec(ctx, SQLInsertPlatformLink, id, user.Platform, user.PlatformID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertUser, err)
	}
	if tag.RowsAffected() == 0 {
		// A concurrent request linked this identity first; use its user.
		repository.SafeRollback(ctx, tx)
		winner, err := r.GetUserByPlatformID(ctx, user.Platform, user.PlatformID)
		if err != nil {
			return err
		}
		*user = *winner
		return nil
	}
	if _, err := tx.Exec(ctx, SQLInsertResources, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertUser, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertUser, err)
	}

	user.ID = id.String()
	user.CreatedAt = now
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Platform, &u.PlatformID, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryUser, err)
	}
	return &u, nil
}
