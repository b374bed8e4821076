// Package checkin records daily check-ins, advances streaks and grants the
// streak multiplier and one-time milestone bonuses.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/calendar"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/event"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
	"github.com/osse101/CoffeeGarden_Go/internal/reward"
	"github.com/osse101/CoffeeGarden_Go/internal/streak"
)

// Service defines the check-in business logic
type Service interface {
	Checkin(ctx context.Context, userID string) (*domain.CheckinResult, error)
	GetStatus(ctx context.Context, userID string) (*domain.CheckinStatus, error)
	// GetCalendar builds a month grid; a zero year or month means the current one
	GetCalendar(ctx context.Context, userID string, year, month int) (*domain.Calendar, error)
	GetHistory(ctx context.Context, userID string, limit, offset int) ([]domain.CheckinEntry, error)
	ListMilestones(ctx context.Context, userID string) ([]domain.MilestoneStatus, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Option customizes a service
type Option func(*service)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	repo      repository.Checkin
	loc       *time.Location
	publisher EventPublisher
	now       func() time.Time
}

// NewService creates a check-in service. Days roll over at midnight in loc;
// a nil loc means UTC.
func NewService(repo repository.Checkin, loc *time.Location, publisher EventPublisher, opts ...Option) Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &service{
		repo:      repo,
		loc:       loc,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(context.WithoutCancel(ctx), evt)
	}
}

func (s *service) Checkin(ctx context.Context, userID string) (*domain.CheckinResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCheckinCalled, "user_id", userID)

	now := s.clock()
	today := calendar.Today(now, s.loc)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	prev, err := tx.GetStreakForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStreak, err)
	}

	next, gap, err := streak.Advance(prev, userID, today)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			log.Info(LogMsgAlreadyCheckedIn, "user_id", userID, "date", today.String())
		}
		return nil, err
	}

	daily, multiplier, err := reward.ForCheckin(next.ConsecutiveDays)
	if err != nil {
		return nil, err
	}

	result := &domain.CheckinResult{
		Date:       today,
		Gap:        gap,
		Streak:     next,
		Multiplier: multiplier.String(),
		Reward:     daily,
		Total:      daily,
	}

	if m := reward.MilestoneAt(next.ConsecutiveDays); m != nil {
		claimed, err := tx.ClaimMilestone(ctx, userID, m.Threshold, now)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgClaimMilestone, err)
		}
		if claimed {
			result.Milestone = m
			result.Total = daily.Plus(m.Bonus)
		} else {
			log.Info(LogMsgMilestoneReclaim, "user_id", userID, "threshold", m.Threshold)
		}
	}

	if err := tx.InsertCheckin(ctx, &domain.CheckinEntry{
		UserID:          userID,
		Date:            today,
		ConsecutiveDays: next.ConsecutiveDays,
		Reward:          result.Total,
		CreatedAt:       now,
	}); err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgInsertCheckin, err)
	}
	if err := tx.SaveStreak(ctx, prev, next); err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgSaveStreak, err)
	}

	if _, err := tx.AddResources(ctx, userID, result.Total); err != nil {
		return nil, fmt.Errorf(ErrMsgAddResources, err)
	}
	if err := tx.AppendActivity(ctx, &domain.ActivityEntry{
		UserID:    userID,
		Action:    domain.ActionCheckin,
		Reward:    daily,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgAppendLog, err)
	}
	if result.Milestone != nil {
		if err := tx.AppendActivity(ctx, &domain.ActivityEntry{
			UserID:    userID,
			Action:    domain.ActionMilestone,
			Reward:    result.Milestone.Bonus,
			CreatedAt: now,
		}); err != nil {
			return nil, fmt.Errorf(ErrMsgAppendLog, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}

	log.Info(LogMsgCheckinCompleted, "user_id", userID, "date", today.String(),
		"consecutive_days", next.ConsecutiveDays, "gap", gap)
	s.publish(ctx, event.NewCheckinCompletedEvent(userID, *result, now))
	if result.Milestone != nil {
		log.Info(LogMsgMilestoneReached, "user_id", userID, "threshold", result.Milestone.Threshold)
		s.publish(ctx, event.NewMilestoneReachedEvent(userID, *result.Milestone, now))
	}

	return result, nil
}

func (s *service) GetStatus(ctx context.Context, userID string) (*domain.CheckinStatus, error) {
	rec, err := s.repo.GetStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStreak, err)
	}
	status, err := streak.Status(rec, calendar.Today(s.clock(), s.loc))
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *service) GetCalendar(ctx context.Context, userID string, year, month int) (*domain.Calendar, error) {
	today := calendar.Today(s.clock(), s.loc)
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = int(today.Month)
	}
	logger.FromContext(ctx).Debug(LogMsgCalendarRequested, "user_id", userID, "year", year, "month", month)

	first, last, err := calendar.MonthBounds(year, month)
	if err != nil {
		return nil, err
	}
	dates, err := s.repo.ListCheckinDates(ctx, userID, first, last)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCalendar, err)
	}

	cal, err := calendar.Build(year, month, dates, today)
	if err != nil {
		return nil, err
	}
	return &cal, nil
}

func (s *service) GetHistory(ctx context.Context, userID string, limit, offset int) ([]domain.CheckinEntry, error) {
	if offset < 0 {
		return nil, fmt.Errorf(ErrMsgBadPaging, domain.ErrInvalidInput)
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.ListCheckins(ctx, userID, limit, offset)
}

func (s *service) ListMilestones(ctx context.Context, userID string) ([]domain.MilestoneStatus, error) {
	claimed, err := s.repo.ListClaimedMilestones(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadMilestones, err)
	}

	milestones := reward.Milestones()
	out := make([]domain.MilestoneStatus, 0, len(milestones))
	for _, m := range milestones {
		ms := domain.MilestoneStatus{Milestone: m}
		if at, ok := claimed[m.Threshold]; ok {
			ms.Claimed = true
			ms.ClaimedAt = &at
		}
		out = append(out, ms)
	}
	return out, nil
}

// LoadLocation resolves a timezone name, falling back to DefaultTimezone when empty
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q", domain.ErrInvalidInput, name)
	}
	return loc, nil
}
