package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound     = "not found"
	ErrMsgUserNotFound = "user not found"
	ErrMsgTreeNotFound = "tree not found"

	// Catalog errors
	ErrMsgUnknownVariety = "unknown variety"

	// Care and harvest errors
	ErrMsgCooldownActive   = "action on cooldown"
	ErrMsgAlreadyHarvested = "tree already harvested"
	ErrMsgNotMature        = "tree is not mature yet"

	// Check-in errors
	ErrMsgAlreadyCheckedIn = "already checked in today"

	// Temporal errors
	ErrMsgInvalidTime = "invalid time"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Platform errors
	ErrMsgInvalidPlatform = "invalid platform"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrUserNotFound = fmt.Errorf("%w: %s", ErrNotFound, "user")
	ErrTreeNotFound = fmt.Errorf("%w: %s", ErrNotFound, "tree")

	ErrUnknownVariety = errors.New(ErrMsgUnknownVariety)

	ErrCooldownActive   = errors.New(ErrMsgCooldownActive)
	ErrAlreadyHarvested = errors.New(ErrMsgAlreadyHarvested)
	ErrNotMature        = errors.New(ErrMsgNotMature)

	ErrAlreadyCheckedIn = errors.New(ErrMsgAlreadyCheckedIn)

	ErrInvalidTime = errors.New(ErrMsgInvalidTime)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)

// UnknownVarietyError reports a catalog lookup miss.
type UnknownVarietyError struct {
	Variety string
}

func (e UnknownVarietyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgUnknownVariety, e.Variety)
}

// Is allows errors.Is(err, ErrUnknownVariety)
func (e UnknownVarietyError) Is(target error) bool {
	return target == ErrUnknownVariety
}

// InvalidTimeError reports a temporal inconsistency between two instants,
// e.g. a query time that precedes the planting time.
type InvalidTimeError struct {
	Field string
	At    time.Time
	Ref   time.Time
}

func (e InvalidTimeError) Error() string {
	return fmt.Sprintf("%s: %s (%s) precedes %s", ErrMsgInvalidTime, e.Field,
		e.At.Format(time.RFC3339), e.Ref.Format(time.RFC3339))
}

// Is allows errors.Is(err, ErrInvalidTime)
func (e InvalidTimeError) Is(target error) bool {
	return target == ErrInvalidTime
}
