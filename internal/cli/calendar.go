package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/spf13/cobra"

	"github.com/osse101/CoffeeGarden_Go/internal/calendar"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

type calendarOptions struct {
	year    int
	month   int
	today   string
	checked []string
}

// NewCalendarCommand creates the calendar command.
func NewCalendarCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &calendarOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Short:   "Render a check-in month grid",
		Example: `  gardenctl calendar --year 2024 --month 3 --checked 2024-03-01,2024-03-02 --today 2024-03-02`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := BuildCalendar(*opts, time.Now())
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), rootOpts.Format, cal, func(w io.Writer) error {
				_, err := io.WriteString(w, calendar.Render(cal))
				return err
			})
		},
	}

	cmd.Flags().IntVar(&opts.year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&opts.month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().StringVar(&opts.today, "today", "", "date to mark as today, YYYY-MM-DD (default current UTC date)")
	cmd.Flags().StringSliceVar(&opts.checked, "checked", nil, "checked-in dates, YYYY-MM-DD")

	return cmd
}

// BuildCalendar parses the flag values and lays out the grid
func BuildCalendar(opts calendarOptions, now time.Time) (domain.Calendar, error) {
	today := calendar.Today(now, time.UTC)
	if opts.today != "" {
		d, err := civil.ParseDate(strings.TrimSpace(opts.today))
		if err != nil {
			return domain.Calendar{}, fmt.Errorf("%w: today: %v", domain.ErrInvalidInput, err)
		}
		today = d
	}

	year, month := opts.year, opts.month
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = int(today.Month)
	}

	checked := make([]civil.Date, 0, len(opts.checked))
	for _, raw := range opts.checked {
		d, err := civil.ParseDate(strings.TrimSpace(raw))
		if err != nil {
			return domain.Calendar{}, fmt.Errorf("%w: checked: %v", domain.ErrInvalidInput, err)
		}
		checked = append(checked, d)
	}

	return calendar.Build(year, month, checked, today)
}
