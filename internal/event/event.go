package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata, or nil
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Garden and check-in event types
const (
	TreePlanted      Type = domain.EventTypeTreePlanted
	TreeCared        Type = domain.EventTypeTreeCared
	TreeHarvested    Type = domain.EventTypeTreeHarvested
	CheckinCompleted Type = domain.EventTypeCheckinCompleted
	MilestoneReached Type = domain.EventTypeMilestoneReached
)

// Typed event payloads for type safety

// TreePlantedPayloadV1 is the typed payload for tree planted events
type TreePlantedPayloadV1 struct {
	UserID    string `json:"user_id"`
	TreeID    string `json:"tree_id"`
	Variety   string `json:"variety"`
	Timestamp int64  `json:"timestamp"`
}

// TreeCaredPayloadV1 is the typed payload for water and fertilize events
type TreeCaredPayloadV1 struct {
	UserID     string `json:"user_id"`
	TreeID     string `json:"tree_id"`
	Action     string `json:"action"`
	Experience int    `json:"experience"`
	Timestamp  int64  `json:"timestamp"`
}

// TreeHarvestedPayloadV1 is the typed payload for harvest events
type TreeHarvestedPayloadV1 struct {
	UserID     string `json:"user_id"`
	TreeID     string `json:"tree_id"`
	Variety    string `json:"variety"`
	Health     int    `json:"health"`
	Quality    string `json:"quality"`
	Coin       int    `json:"coin"`
	Experience int    `json:"experience"`
	Timestamp  int64  `json:"timestamp"`
}

// CheckinCompletedPayloadV1 is the typed payload for check-in events
type CheckinCompletedPayloadV1 struct {
	UserID          string              `json:"user_id"`
	Date            string              `json:"date"`
	Gap             string              `json:"gap"`
	ConsecutiveDays int                 `json:"consecutive_days"`
	Multiplier      string              `json:"multiplier"`
	Reward          domain.RewardBundle `json:"reward"`
	Timestamp       int64               `json:"timestamp"`
}

// MilestoneReachedPayloadV1 is the typed payload for streak milestone events
type MilestoneReachedPayloadV1 struct {
	UserID    string              `json:"user_id"`
	Threshold int                 `json:"threshold"`
	Bonus     domain.RewardBundle `json:"bonus"`
	Timestamp int64               `json:"timestamp"`
}

// Type-safe event constructors. Each takes the instant of the action so
// callers with an injected clock produce reproducible events.

// NewTreePlantedEvent creates a tree planted event
func NewTreePlantedEvent(tree domain.Tree) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TreePlanted,
		Payload: TreePlantedPayloadV1{
			UserID:    tree.UserID,
			TreeID:    tree.ID,
			Variety:   tree.Variety,
			Timestamp: tree.PlantedAt.Unix(),
		},
	}
}

// NewTreeCaredEvent creates a care event for a water or fertilize action
func NewTreeCaredEvent(tree domain.Tree, action string, reward domain.RewardBundle, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TreeCared,
		Payload: TreeCaredPayloadV1{
			UserID:     tree.UserID,
			TreeID:     tree.ID,
			Action:     action,
			Experience: reward.Experience,
			Timestamp:  at.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyAction: action,
		},
	}
}

// NewTreeHarvestedEvent creates a harvest event
func NewTreeHarvestedEvent(tree domain.Tree, health int, quality string, reward domain.RewardBundle, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TreeHarvested,
		Payload: TreeHarvestedPayloadV1{
			UserID:     tree.UserID,
			TreeID:     tree.ID,
			Variety:    tree.Variety,
			Health:     health,
			Quality:    quality,
			Coin:       reward.Coin,
			Experience: reward.Experience,
			Timestamp:  at.Unix(),
		},
	}
}

// NewCheckinCompletedEvent creates a check-in event
func NewCheckinCompletedEvent(userID string, res domain.CheckinResult, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CheckinCompleted,
		Payload: CheckinCompletedPayloadV1{
			UserID:          userID,
			Date:            res.Date.String(),
			Gap:             res.Gap,
			ConsecutiveDays: res.Streak.ConsecutiveDays,
			Multiplier:      res.Multiplier,
			Reward:          res.Reward,
			Timestamp:       at.Unix(),
		},
	}
}

// NewMilestoneReachedEvent creates a milestone event
func NewMilestoneReachedEvent(userID string, m domain.Milestone, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MilestoneReached,
		Payload: MilestoneReachedPayloadV1{
			UserID:    userID,
			Threshold: m.Threshold,
			Bonus:     m.Bonus,
			Timestamp: at.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyThreshold: m.Threshold,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
