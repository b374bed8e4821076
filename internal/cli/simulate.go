package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/CoffeeGarden_Go/internal/catalog"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/growth"
	"github.com/osse101/CoffeeGarden_Go/internal/reward"
)

// simulationEpoch is the planting instant of every simulated tree
var simulationEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type simulateOptions struct {
	variety        string
	days           int
	waterEvery     time.Duration
	fertilizeEvery time.Duration
}

// SimulationDay is the state of a simulated tree at the start of one day
type SimulationDay struct {
	Day            int     `json:"day"`
	Watered        bool    `json:"watered"`
	Fertilized     bool    `json:"fertilized"`
	Stage          string  `json:"stage"`
	Progress       int     `json:"progress_percent"`
	CareMultiplier float64 `json:"care_multiplier"`
	Health         int     `json:"health"`
	Mature         bool    `json:"mature"`
}

// SimulationResult is the full run plus the harvest it would yield
type SimulationResult struct {
	Variety    string               `json:"variety"`
	Days       []SimulationDay      `json:"days"`
	MatureDay  *int                 `json:"mature_day,omitempty"`
	Harvest    *domain.RewardBundle `json:"harvest,omitempty"`
	Quality    string               `json:"quality,omitempty"`
	FinalStage string               `json:"final_stage"`
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Dry-run engine rules",
	}

	opts := &simulateOptions{}
	tree := &cobra.Command{
		Use:   "tree",
		Short: "Grow one tree under a fixed care schedule and print each day",
		Long: `Plants a tree of the chosen variety and steps through whole days.
Care is applied at the start of a day whenever the interval since the last
application has passed; a zero interval means the action is never taken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(rootOpts.Catalog)
			if err != nil {
				return err
			}
			res, err := SimulateTree(cat, *opts)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), rootOpts.Format, res, func(w io.Writer) error {
				return renderSimulation(w, res)
			})
		},
	}
	tree.Flags().StringVar(&opts.variety, "variety", "arabica", "variety to plant")
	tree.Flags().IntVar(&opts.days, "days", 60, "number of days to simulate")
	tree.Flags().DurationVar(&opts.waterEvery, "water-every", domain.WaterCooldownDuration, "watering interval (0 disables)")
	tree.Flags().DurationVar(&opts.fertilizeEvery, "fertilize-every", domain.FertilizeCooldownDuration, "fertilizing interval (0 disables)")

	cmd.AddCommand(tree)
	return cmd
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// SimulateTree runs the growth and health calculators day by day
func SimulateTree(cat *catalog.Catalog, opts simulateOptions) (*SimulationResult, error) {
	if opts.days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative", domain.ErrInvalidInput)
	}
	variety, err := cat.Get(opts.variety)
	if err != nil {
		return nil, err
	}

	tree := domain.Tree{Variety: variety.Name, PlantedAt: simulationEpoch}
	res := &SimulationResult{Variety: variety.Name}

	for day := 0; day <= opts.days; day++ {
		now := simulationEpoch.Add(time.Duration(day) * domain.Day)
		row := SimulationDay{Day: day}

		waterDue := due(tree.LastWateredAt, opts.waterEvery, now)
		fertilizeDue := due(tree.LastFertilizedAt, opts.fertilizeEvery, now)
		if waterDue || fertilizeDue {
			cp, err := growth.Checkpoint(variety, growth.FromTree(tree, now), now)
			if err != nil {
				return nil, err
			}
			tree.Checkpoint = &cp
		}
		if waterDue {
			at := now
			tree.LastWateredAt = &at
			tree.WaterApplications++
			row.Watered = true
		}
		if fertilizeDue {
			at := now
			tree.LastFertilizedAt = &at
			tree.FertilizerApplications++
			row.Fertilized = true
		}

		in := growth.FromTree(tree, now)
		snap, err := growth.Calculate(variety, in)
		if err != nil {
			return nil, err
		}
		health, err := growth.Health(in)
		if err != nil {
			return nil, err
		}

		row.Stage = snap.StageName
		row.Progress = snap.ProgressPercent
		row.CareMultiplier = snap.CareMultiplier
		row.Health = health
		row.Mature = snap.IsMature
		res.Days = append(res.Days, row)
		res.FinalStage = snap.StageName

		if snap.IsMature && res.MatureDay == nil {
			d := day
			res.MatureDay = &d
			bundle, quality, err := reward.ForHarvest(variety, health)
			if err != nil {
				return nil, err
			}
			res.Harvest = &bundle
			res.Quality = quality
		}
	}

	return res, nil
}

func due(last *time.Time, every time.Duration, now time.Time) bool {
	if every <= 0 {
		return false
	}
	return last == nil || now.Sub(*last) >= every
}

func renderSimulation(w io.Writer, res *SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "variety: %s\n", res.Variety)
	fmt.Fprintln(tw, "DAY\tCARE\tSTAGE\tPROGRESS\tMULT\tHEALTH")
	for _, d := range res.Days {
		care := "-"
		switch {
		case d.Watered && d.Fertilized:
			care = "W+F"
		case d.Watered:
			care = "W"
		case d.Fertilized:
			care = "F"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d%%\t%.2f\t%d\n", d.Day, care, d.Stage, d.Progress, d.CareMultiplier, d.Health)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.MatureDay == nil {
		_, err := fmt.Fprintf(w, "not mature after %d days (stage %s)\n", len(res.Days)-1, res.FinalStage)
		return err
	}
	_, err := fmt.Fprintf(w, "mature on day %d: harvest %d coin, %d exp (%s)\n",
		*res.MatureDay, res.Harvest.Coin, res.Harvest.Experience, res.Quality)
	return err
}
