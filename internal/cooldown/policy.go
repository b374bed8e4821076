// Package cooldown decides whether a care action is allowed given the time it
// was last applied. It holds no state; the store enforces the same window with
// a conditional update built from Cutoff.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
)

// CooldownError is returned when an action is still on cooldown
type CooldownError struct {
	Action      string
	Remaining   time.Duration
	AvailableAt time.Time
}

func (e CooldownError) Error() string {
	remaining := e.Remaining.Round(time.Second)
	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60
	seconds := int(remaining.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	default:
		return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
	}
}

// Is allows errors.Is(err, domain.ErrCooldownActive)
func (e CooldownError) Is(target error) bool {
	if target == domain.ErrCooldownActive {
		return true
	}
	_, ok := target.(CooldownError)
	return ok
}

// Policy evaluates cooldown windows
type Policy struct {
	config Config
}

// NewPolicy creates a cooldown policy
func NewPolicy(config Config) *Policy {
	return &Policy{config: config}
}

// Window returns the effective cooldown for an action. It is zero in dev mode.
func (p *Policy) Window(action string) time.Duration {
	if p.config.DevMode {
		return 0
	}
	return p.config.GetCooldownDuration(action)
}

// Cutoff is the latest last-applied time that still permits the action at now
func (p *Policy) Cutoff(action string, now time.Time) time.Time {
	return now.Add(-p.Window(action))
}

// AvailableAt is when the action next becomes allowed. A nil last means it
// has never been applied, so the zero time is returned.
func (p *Policy) AvailableAt(action string, last *time.Time) time.Time {
	if last == nil {
		return time.Time{}
	}
	return last.Add(p.Window(action))
}

// Check returns a CooldownError when the action was applied less than one
// window before now. Exactly one window later is allowed.
func (p *Policy) Check(ctx context.Context, action string, last *time.Time, now time.Time) error {
	if p.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action)
		return nil
	}
	if last == nil {
		return nil
	}

	available := p.AvailableAt(action, last)
	if now.Before(available) {
		return CooldownError{
			Action:      action,
			Remaining:   available.Sub(now),
			AvailableAt: available,
		}
	}
	return nil
}
