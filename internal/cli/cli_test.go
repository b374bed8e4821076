package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoffeeGarden_Go/internal/catalog"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "gardenctl", cmd.Use)

	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "status"},
		{"simulate", "tree"},
		{"calendar"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, FormatText, format.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "calendar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSimulateTree(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	t.Run("cared tree matures and is harvestable", func(t *testing.T) {
		res, err := SimulateTree(cat, simulateOptions{
			variety:        "arabica",
			days:           60,
			waterEvery:     domain.WaterCooldownDuration,
			fertilizeEvery: domain.FertilizeCooldownDuration,
		})
		require.NoError(t, err)
		require.Len(t, res.Days, 61)
		assert.True(t, res.Days[0].Watered)
		assert.True(t, res.Days[0].Fertilized)
		assert.False(t, res.Days[1].Fertilized, "fertilizer interval not yet passed")
		require.NotNil(t, res.MatureDay)
		require.NotNil(t, res.Harvest)
		assert.Positive(t, res.Harvest.Coin)
		assert.NotEmpty(t, res.Quality)
		assert.Equal(t, domain.StageNameMature, res.FinalStage)
	})

	t.Run("progress never moves backwards", func(t *testing.T) {
		res, err := SimulateTree(cat, simulateOptions{variety: "robusta", days: 40})
		require.NoError(t, err)
		for i := 1; i < len(res.Days); i++ {
			prev, cur := res.Days[i-1], res.Days[i]
			if cur.Stage == prev.Stage {
				assert.GreaterOrEqual(t, cur.Progress, prev.Progress, "day %d", cur.Day)
			}
		}
		first, last := res.Days[0], res.Days[len(res.Days)-1]
		assert.Less(t, last.Health, first.Health, "a neglected tree loses health")
	})

	t.Run("unknown variety", func(t *testing.T) {
		_, err := SimulateTree(cat, simulateOptions{variety: "decaf", days: 1})
		assert.ErrorIs(t, err, domain.ErrUnknownVariety)
	})

	t.Run("negative days", func(t *testing.T) {
		_, err := SimulateTree(cat, simulateOptions{variety: "arabica", days: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSimulateCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "simulate", "tree", "--variety", "robusta", "--days", "3")
	require.NoError(t, err)

	var res SimulationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "robusta", res.Variety)
	assert.Len(t, res.Days, 4)
}

func TestSimulateCommand_Text(t *testing.T) {
	out, err := execute(t, "simulate", "tree", "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "variety: arabica")
	assert.Contains(t, out, "not mature after 2 days")
}

func TestBuildCalendar(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	cal, err := BuildCalendar(calendarOptions{checked: []string{"2024-03-01", " 2024-03-02", "2024-02-29"}}, now)
	require.NoError(t, err)
	assert.Equal(t, 2024, cal.Year)
	assert.Equal(t, 3, cal.Month)
	assert.Equal(t, 2, cal.CheckedCount)

	cal, err = BuildCalendar(calendarOptions{year: 2024, month: 2, today: "2024-02-29"}, now)
	require.NoError(t, err)
	var today civil.Date
	for _, c := range cal.Cells {
		if c.Today {
			today = c.Date
		}
	}
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, today)

	_, err = BuildCalendar(calendarOptions{checked: []string{"03/01/2024"}}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = BuildCalendar(calendarOptions{year: 2024, month: 13}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalendarCommand(t *testing.T) {
	out, err := execute(t, "calendar", "--year", "2024", "--month", "3", "--today", "2024-03-02", "--checked", "2024-03-01,2024-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "2#")
	assert.Contains(t, out, "checked: 2")
}
