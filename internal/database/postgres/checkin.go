package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-sql/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

// CheckinRepository implements repository.Checkin for PostgreSQL
type CheckinRepository struct {
	db *pgxpool.Pool
}

// NewCheckinRepository creates a new check-in repository
func NewCheckinRepository(db *pgxpool.Pool) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// GetStreak returns the stored streak, or nil when the user never checked in
func (r *CheckinRepository) GetStreak(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	return fetchStreak(ctx, r.db, SQLSelectStreak, userID)
}

// ListCheckinDates returns check-in dates within [from, to], ascending
func (r *CheckinRepository) ListCheckinDates(ctx context.Context, userID string, from, to civil.Date) ([]civil.Date, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, SQLSelectCheckinDates, uid, dateParam(from), dateParam(to))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryCheckins, err)
	}
	defer rows.Close()

	dates := make([]civil.Date, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgQueryCheckins, err)
		}
		dates = append(dates, dateOf(d))
	}
	return dates, rows.Err()
}

// ListCheckins pages through check-ins, newest first
func (r *CheckinRepository) ListCheckins(ctx context.Context, userID string, limit, offset int) ([]domain.CheckinEntry, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, SQLSelectCheckins, uid, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryCheckins, err)
	}
	defer rows.Close()

	entries := make([]domain.CheckinEntry, 0)
	for rows.Next() {
		var (
			e domain.CheckinEntry
			d time.Time
		)
		if err := rows.Scan(&e.UserID, &d, &e.ConsecutiveDays,
			&e.Reward.Water, &e.Reward.Fertilizer, &e.Reward.Coin, &e.Reward.Experience,
			&e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgQueryCheckins, err)
		}
		e.Date = dateOf(d)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListClaimedMilestones maps each claimed threshold to its claim time
func (r *CheckinRepository) ListClaimedMilestones(ctx context.Context, userID string) (map[int]time.Time, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, SQLSelectMilestones, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryMilestones, err)
	}
	defer rows.Close()

	claimed := make(map[int]time.Time)
	for rows.Next() {
		var (
			threshold int
			at        time.Time
		)
		if err := rows.Scan(&threshold, &at); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgQueryMilestones, err)
		}
		claimed[threshold] = at
	}
	return claimed, rows.Err()
}

// BeginTx starts a transaction and returns a CheckinTx
func (r *CheckinRepository) BeginTx(ctx context.Context) (repository.CheckinTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	return &checkinTx{tx: tx, resourceWriter: resourceWriter{tx: tx}}, nil
}

// checkinTx implements repository.CheckinTx
type checkinTx struct {
	tx pgx.Tx
	resourceWriter
}

// Commit commits the transaction
func (t *checkinTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *checkinTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetStreakForUpdate retrieves the streak with FOR UPDATE lock
func (t *checkinTx) GetStreakForUpdate(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	return fetchStreak(ctx, t.tx, SQLSelectStreakForUpdate, userID)
}

// InsertCheckin writes the daily row; the (user, date) key rejects repeats
func (t *checkinTx) InsertCheckin(ctx context.Context, e *domain.CheckinEntry) error {
	uid, err := parseUserUUID(e.UserID)
	if err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	tag, err := t.tx.Exec(ctx, SQLInsertCheckin, uid, dateParam(e.Date), e.ConsecutiveDays,
		e.Reward.Water, e.Reward.Fertilizer, e.Reward.Coin, e.Reward.Experience, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertCheckin, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyCheckedIn, e.Date)
	}
	return nil
}

// SaveStreak writes next only if the stored record still matches prev
func (t *checkinTx) SaveStreak(ctx context.Context, prev *domain.StreakRecord, next domain.StreakRecord) error {
	uid, err := parseUserUUID(next.UserID)
	if err != nil {
		return err
	}

	var affected int64
	if prev == nil {
		tag, err := t.tx.Exec(ctx, SQLInsertStreak, uid, dateParam(next.LastCheckinDate), next.ConsecutiveDays, next.TotalDays)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveStreak, err)
		}
		affected = tag.RowsAffected()
	} else {
		tag, err := t.tx.Exec(ctx, SQLUpdateStreak, uid, dateParam(next.LastCheckinDate),
			next.ConsecutiveDays, next.TotalDays, dateParam(prev.LastCheckinDate))
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveStreak, err)
		}
		affected = tag.RowsAffected()
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyCheckedIn, next.LastCheckinDate)
	}
	return nil
}

// ClaimMilestone records a threshold; false when it was already claimed
func (t *checkinTx) ClaimMilestone(ctx context.Context, userID string, threshold int, at time.Time) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	tag, err := t.tx.Exec(ctx, SQLClaimMilestone, uid, threshold, at)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgClaimMilestone, err)
	}
	return tag.RowsAffected() == 1, nil
}

func fetchStreak(ctx context.Context, q querier, query, userID string) (*domain.StreakRecord, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rec, err := scanStreak(q.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryStreak, err)
	}
	return rec, nil
}
