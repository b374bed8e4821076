package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	tree := domain.Tree{ID: "t1", UserID: "u1", Variety: "liberica", PlantedAt: at}

	planted := testutil.ToFloat64(TreesPlanted.WithLabelValues("liberica"))
	watered := testutil.ToFloat64(CareActions.WithLabelValues(domain.ActionWater))
	harvested := testutil.ToFloat64(Harvests.WithLabelValues("liberica", domain.QualityGood))
	coin := testutil.ToFloat64(CoinAwarded)
	milestones := testutil.ToFloat64(MilestonesReached.WithLabelValues("7"))

	require.NoError(t, bus.Publish(ctx, event.NewTreePlantedEvent(tree)))
	require.NoError(t, bus.Publish(ctx, event.NewTreeCaredEvent(tree, domain.ActionWater, domain.RewardBundle{Experience: 10}, at)))
	require.NoError(t, bus.Publish(ctx, event.NewTreeHarvestedEvent(tree, 75, domain.QualityGood,
		domain.RewardBundle{Coin: 156, Experience: 78}, at)))
	require.NoError(t, bus.Publish(ctx, event.NewMilestoneReachedEvent("u1",
		domain.Milestone{Threshold: 7, Bonus: domain.RewardBundle{Coin: 100}}, at)))

	assert.Equal(t, planted+1, testutil.ToFloat64(TreesPlanted.WithLabelValues("liberica")))
	assert.Equal(t, watered+1, testutil.ToFloat64(CareActions.WithLabelValues(domain.ActionWater)))
	assert.Equal(t, harvested+1, testutil.ToFloat64(Harvests.WithLabelValues("liberica", domain.QualityGood)))
	assert.Equal(t, milestones+1, testutil.ToFloat64(MilestonesReached.WithLabelValues("7")))
	assert.Equal(t, coin+256, testutil.ToFloat64(CoinAwarded))
}

func TestEventMetricsCollector_UndecodablePayload(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.TreeCared)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.TreeCared,
		Payload: "not a payload",
	})

	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.TreeCared))))
}

func TestMiddleware_LabelsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/garden/tree/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/garden/tree/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/garden/tree/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/garden/tree/{id}", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_Unmatched(t *testing.T) {
	h := Middleware(http.NotFoundHandler())
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404")))
}
