// Package streak advances and reports daily check-in streaks. It is pure:
// callers load the stored record, call Advance, and persist the result with a
// conditional write.
package streak

import (
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/osse101/CoffeeGarden_Go/internal/calendar"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/reward"
)

// Advance returns the record after a check-in on today, and the gap kind.
// A nil prev starts a new streak. A same-day repeat is rejected.
func Advance(prev *domain.StreakRecord, userID string, today civil.Date) (domain.StreakRecord, string, error) {
	if prev == nil {
		return domain.StreakRecord{
			UserID:          userID,
			LastCheckinDate: today,
			ConsecutiveDays: 1,
			TotalDays:       1,
		}, domain.GapFirst, nil
	}

	gap, err := calendar.Classify(&prev.LastCheckinDate, today)
	if err != nil {
		return domain.StreakRecord{}, "", err
	}

	next := *prev
	next.LastCheckinDate = today
	next.TotalDays++

	switch gap {
	case domain.GapSameDay:
		return domain.StreakRecord{}, gap, fmt.Errorf("%w: %s", domain.ErrAlreadyCheckedIn, today)
	case domain.GapConsecutive:
		next.ConsecutiveDays++
	default:
		next.ConsecutiveDays = 1
	}
	return next, gap, nil
}

// Status reports the displayable streak on today. A streak whose last
// check-in is older than yesterday shows 0 consecutive days.
func Status(rec *domain.StreakRecord, today civil.Date) (domain.CheckinStatus, error) {
	status := domain.CheckinStatus{Today: today}
	if rec != nil {
		gap, err := calendar.Classify(&rec.LastCheckinDate, today)
		if err != nil {
			return domain.CheckinStatus{}, err
		}

		last := rec.LastCheckinDate
		status.LastCheckinDate = &last
		status.TotalDays = rec.TotalDays
		status.CheckedInToday = gap == domain.GapSameDay
		if gap == domain.GapSameDay || gap == domain.GapConsecutive {
			status.ConsecutiveDays = rec.ConsecutiveDays
		}
	}

	if next := reward.NextMilestone(status.ConsecutiveDays); next != nil {
		status.NextMilestone = next
		status.DaysToMilestone = next.Threshold - status.ConsecutiveDays
	}
	return status, nil
}
