package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidUserID, err)
	}
	return u, nil
}

// parseTreeUUID maps a malformed tree ID to not found; no such tree can exist.
func parseTreeUUID(treeID string) (uuid.UUID, error) {
	u, err := uuid.Parse(treeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, treeID)
	}
	return u, nil
}

// dateParam converts a civil date to the value bound to a DATE column
func dateParam(d civil.Date) time.Time {
	return d.In(time.UTC)
}

// dateOf reads a DATE column value back as a civil date
func dateOf(t time.Time) civil.Date {
	return civil.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTree(row rowScanner) (*domain.Tree, error) {
	var (
		t            domain.Tree
		checkpointAt *time.Time
		dayUnits     int64
		partialUnits int64
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Variety, &t.PlantedAt,
		&t.LastWateredAt, &t.LastFertilizedAt,
		&t.WaterApplications, &t.FertilizerApplications,
		&t.Harvested, &t.HarvestedAt,
		&checkpointAt, &dayUnits, &partialUnits,
	)
	if err != nil {
		return nil, err
	}
	if checkpointAt != nil {
		t.Checkpoint = &domain.GrowthCheckpoint{At: *checkpointAt, DayUnits: dayUnits, PartialUnits: partialUnits}
	}
	return &t, nil
}

func scanStreak(row rowScanner) (*domain.StreakRecord, error) {
	var (
		rec  domain.StreakRecord
		last time.Time
	)
	if err := row.Scan(&rec.UserID, &last, &rec.ConsecutiveDays, &rec.TotalDays); err != nil {
		return nil, err
	}
	rec.LastCheckinDate = dateOf(last)
	return &rec, nil
}

// fetchTree loads one tree, translating a missing row to domain.ErrTreeNotFound
func fetchTree(ctx context.Context, q querier, query, treeID string) (*domain.Tree, error) {
	id, err := parseTreeUUID(treeID)
	if err != nil {
		return nil, err
	}
	tree, err := scanTree(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, treeID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryTree, err)
	}
	return tree, nil
}

// resourceWriter implements repository.ResourceWriter on an open transaction
type resourceWriter struct {
	tx pgx.Tx
}

// AddResources applies reward increments to the user's balance row
func (w resourceWriter) AddResources(ctx context.Context, userID string, b domain.RewardBundle) (*domain.Resources, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: negative reward", domain.ErrInvalidInput)
	}
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	res := domain.Resources{UserID: userID}
	err = w.tx.QueryRow(ctx, SQLAddResources, uid, b.Water, b.Fertilizer, b.Coin, b.Experience).
		Scan(&res.Water, &res.Fertilizer, &res.Coin, &res.Experience)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAddResources, err)
	}
	return &res, nil
}

// AppendActivity inserts an audit row and sets entry.ID
func (w resourceWriter) AppendActivity(ctx context.Context, entry *domain.ActivityEntry) error {
	uid, err := parseUserUUID(entry.UserID)
	if err != nil {
		return err
	}

	var treeID any
	if entry.TreeID != "" {
		tid, err := parseTreeUUID(entry.TreeID)
		if err != nil {
			return err
		}
		treeID = tid
	}

	var quality any
	if entry.Quality != "" {
		quality = entry.Quality
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err = w.tx.QueryRow(ctx, SQLInsertActivity,
		uid, treeID, entry.Action,
		entry.Reward.Water, entry.Reward.Fertilizer, entry.Reward.Coin, entry.Reward.Experience,
		quality, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgAppendActivity, err)
	}
	return nil
}
