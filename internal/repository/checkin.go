package repository

import (
	"context"
	"time"

	"github.com/golang-sql/civil"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// Checkin handles streak, daily check-in and milestone persistence
type Checkin interface {
	// GetStreak returns nil, nil when the user has never checked in
	GetStreak(ctx context.Context, userID string) (*domain.StreakRecord, error)

	// ListCheckinDates returns the dates checked in within [from, to]
	ListCheckinDates(ctx context.Context, userID string, from, to civil.Date) ([]civil.Date, error)

	// ListCheckins pages through check-ins, newest first
	ListCheckins(ctx context.Context, userID string, limit, offset int) ([]domain.CheckinEntry, error)

	// ListClaimedMilestones maps threshold to claim time
	ListClaimedMilestones(ctx context.Context, userID string) (map[int]time.Time, error)

	// Transaction support
	BeginTx(ctx context.Context) (CheckinTx, error)
}

// CheckinTx defines the interface for check-in transactions
type CheckinTx interface {
	Tx

	// GetStreakForUpdate retrieves the streak with FOR UPDATE lock, nil when absent
	GetStreakForUpdate(ctx context.Context, userID string) (*domain.StreakRecord, error)

	// InsertCheckin writes the (user, date) row. It returns
	// domain.ErrAlreadyCheckedIn on a duplicate date.
	InsertCheckin(ctx context.Context, entry *domain.CheckinEntry) error

	// SaveStreak writes next only if the stored record still equals prev
	// (absent when prev is nil). It returns domain.ErrAlreadyCheckedIn when a
	// concurrent check-in won.
	SaveStreak(ctx context.Context, prev *domain.StreakRecord, next domain.StreakRecord) error

	// ClaimMilestone records a threshold once per user; false means it was
	// already claimed.
	ClaimMilestone(ctx context.Context, userID string, threshold int, at time.Time) (bool, error)

	// Shared balance and log writes
	ResourceWriter
}
