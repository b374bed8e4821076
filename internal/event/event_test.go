package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(TreePlanted, func(_ context.Context, evt Event) error {
		got = append(got, evt)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), plantedEvent()))
	require.NoError(t, bus.Publish(context.Background(), Event{Type: TreeHarvested}))

	require.Len(t, got, 1)
	assert.Equal(t, TreePlanted, got[0].Type)
	payload, ok := got[0].Payload.(TreePlantedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "arabica", payload.Variety)
}

func TestMemoryBus_AllHandlersRunAndErrorsAggregate(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	bus.Subscribe(TreeCared, func(context.Context, Event) error {
		calls++
		return errors.New("first")
	})
	bus.Subscribe(TreeCared, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: TreeCared})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
	assert.Equal(t, 2, calls)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), Event{Type: "nobody.listens"}))
}

func TestConstructors(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	tree := domain.Tree{ID: "t1", UserID: "u1", Variety: "robusta", PlantedAt: at.Add(-time.Hour)}

	t.Run("care", func(t *testing.T) {
		evt := NewTreeCaredEvent(tree, domain.ActionFertilize, domain.RewardBundle{Experience: 20}, at)
		assert.Equal(t, TreeCared, evt.Type)
		assert.Equal(t, EventSchemaVersion, evt.Version)
		assert.Equal(t, domain.ActionFertilize, evt.GetMetadataValue(MetadataKeyAction))

		p := evt.Payload.(TreeCaredPayloadV1)
		assert.Equal(t, 20, p.Experience)
		assert.Equal(t, at.Unix(), p.Timestamp)
	})

	t.Run("harvest", func(t *testing.T) {
		evt := NewTreeHarvestedEvent(tree, 95, domain.QualityExcellent, domain.RewardBundle{Coin: 150, Experience: 75}, at)
		p := evt.Payload.(TreeHarvestedPayloadV1)
		assert.Equal(t, "robusta", p.Variety)
		assert.Equal(t, 150, p.Coin)
		assert.Equal(t, domain.QualityExcellent, p.Quality)
		assert.Nil(t, evt.GetMetadataValue(MetadataKeyAction))
	})

	t.Run("checkin", func(t *testing.T) {
		res := domain.CheckinResult{
			Date:       civil.Date{Year: 2024, Month: time.March, Day: 15},
			Gap:        domain.GapConsecutive,
			Streak:     domain.StreakRecord{ConsecutiveDays: 7},
			Multiplier: "1.2",
		}
		p := NewCheckinCompletedEvent("u1", res, at).Payload.(CheckinCompletedPayloadV1)
		assert.Equal(t, "2024-03-15", p.Date)
		assert.Equal(t, 7, p.ConsecutiveDays)
	})

	t.Run("milestone", func(t *testing.T) {
		m := domain.Milestone{Threshold: 7, Bonus: domain.RewardBundle{Coin: 100}}
		evt := NewMilestoneReachedEvent("u1", m, at)
		assert.Equal(t, 7, evt.GetMetadataValue(MetadataKeyThreshold))
		assert.Equal(t, 100, evt.Payload.(MilestoneReachedPayloadV1).Bonus.Coin)
	})
}

func TestDecodePayload(t *testing.T) {
	direct, err := DecodePayload[TreeCaredPayloadV1](TreeCaredPayloadV1{TreeID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "t1", direct.TreeID)

	fromMap, err := DecodePayload[TreeCaredPayloadV1](map[string]interface{}{"tree_id": "t2", "experience": 10})
	require.NoError(t, err)
	assert.Equal(t, "t2", fromMap.TreeID)
	assert.Equal(t, 10, fromMap.Experience)

	_, err = DecodePayload[TreeCaredPayloadV1](make(chan int))
	assert.Error(t, err)
}
