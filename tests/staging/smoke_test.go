//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type varietyResponse struct {
	Name      string `json:"name"`
	TotalDays int    `json:"total_days"`
}

type treeViewResponse struct {
	Tree struct {
		ID      string `json:"id"`
		Variety string `json:"variety"`
	} `json:"tree"`
	Growth struct {
		StageIndex int  `json:"stage_index"`
		IsMature   bool `json:"is_mature"`
	} `json:"growth"`
	Health int `json:"health"`
}

func TestVarieties(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/garden/varieties", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var varieties []varietyResponse
	if err := json.Unmarshal(body, &varieties); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(varieties) == 0 {
		t.Fatal("Expected at least one variety")
	}
	for _, v := range varieties {
		if v.TotalDays <= 0 {
			t.Errorf("Variety %q has non-positive total days", v.Name)
		}
	}
}

func TestPlantWaterFlow(t *testing.T) {
	id := stagingIdentity(t)

	plant := map[string]interface{}{}
	for k, v := range id {
		plant[k] = v
	}
	plant["variety"] = "arabica"

	resp, body := makeRequest(t, "POST", "/api/v1/garden/plant", plant)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Plant: expected status 201, got %d: %s", resp.StatusCode, body)
	}
	var view treeViewResponse
	if err := json.Unmarshal(body, &view); err != nil {
		t.Fatalf("Failed to unmarshal plant response: %v", err)
	}
	if view.Growth.StageIndex != 0 || view.Growth.IsMature {
		t.Errorf("Fresh tree should be a seed, got stage %d mature=%v", view.Growth.StageIndex, view.Growth.IsMature)
	}

	water := map[string]interface{}{"tree_id": view.Tree.ID}
	for k, v := range id {
		water[k] = v
	}
	resp, body = makeRequest(t, "POST", "/api/v1/garden/water", water)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Water: expected status 200, got %d: %s", resp.StatusCode, body)
	}

	// A second watering lands inside the cooldown unless the server runs in dev mode
	resp, _ = makeRequest(t, "POST", "/api/v1/garden/water", water)
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusOK {
		t.Errorf("Second water: expected 429 or 200, got %d", resp.StatusCode)
	}

	resp, body = makeRequest(t, "GET", "/api/v1/garden/tree?"+identityQuery(id)+"&tree_id="+view.Tree.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Tree view: expected status 200, got %d: %s", resp.StatusCode, body)
	}
}

func TestCheckinTwice(t *testing.T) {
	id := stagingIdentity(t)

	resp, body := makeRequest(t, "POST", "/api/v1/checkin", id)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Checkin: expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var res struct {
		Gap    string `json:"gap"`
		Streak struct {
			ConsecutiveDays int `json:"consecutive_days"`
		} `json:"streak"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("Failed to unmarshal checkin response: %v", err)
	}
	if res.Streak.ConsecutiveDays != 1 {
		t.Errorf("First check-in should start a streak of 1, got %d", res.Streak.ConsecutiveDays)
	}

	resp, _ = makeRequest(t, "POST", "/api/v1/checkin", id)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Second checkin: expected status 409, got %d", resp.StatusCode)
	}

	resp, _ = makeRequest(t, "GET", "/api/v1/checkin/calendar?"+identityQuery(id), nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Calendar: expected status 200, got %d", resp.StatusCode)
	}
}

func TestUnknownCallerReadsAre404(t *testing.T) {
	id := stagingIdentity(t)
	resp, _ := makeRequest(t, "GET", "/api/v1/checkin/status?"+identityQuery(id), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
