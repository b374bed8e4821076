package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/CoffeeGarden_Go/internal/event"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every garden and check-in event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.TreePlanted,
		event.TreeCared,
		event.TreeHarvested,
		event.CheckinCompleted,
		event.MilestoneReached,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.TreePlanted:
		var p event.TreePlantedPayloadV1
		if p, err = event.DecodePayload[event.TreePlantedPayloadV1](evt.Payload); err == nil {
			TreesPlanted.WithLabelValues(p.Variety).Inc()
		}

	case event.TreeCared:
		var p event.TreeCaredPayloadV1
		if p, err = event.DecodePayload[event.TreeCaredPayloadV1](evt.Payload); err == nil {
			CareActions.WithLabelValues(p.Action).Inc()
			ExperienceAwarded.Add(float64(p.Experience))
		}

	case event.TreeHarvested:
		var p event.TreeHarvestedPayloadV1
		if p, err = event.DecodePayload[event.TreeHarvestedPayloadV1](evt.Payload); err == nil {
			Harvests.WithLabelValues(p.Variety, p.Quality).Inc()
			CoinAwarded.Add(float64(p.Coin))
			ExperienceAwarded.Add(float64(p.Experience))
		}

	case event.CheckinCompleted:
		var p event.CheckinCompletedPayloadV1
		if p, err = event.DecodePayload[event.CheckinCompletedPayloadV1](evt.Payload); err == nil {
			Checkins.WithLabelValues(p.Gap).Inc()
			CoinAwarded.Add(float64(p.Reward.Coin))
			ExperienceAwarded.Add(float64(p.Reward.Experience))
		}

	case event.MilestoneReached:
		var p event.MilestoneReachedPayloadV1
		if p, err = event.DecodePayload[event.MilestoneReachedPayloadV1](evt.Payload); err == nil {
			MilestonesReached.WithLabelValues(strconv.Itoa(p.Threshold)).Inc()
			CoinAwarded.Add(float64(p.Bonus.Coin))
			ExperienceAwarded.Add(float64(p.Bonus.Experience))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
