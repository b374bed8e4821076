// Package calendar builds month grids and classifies the day gap between
// check-ins. Dates are civil dates already resolved in the service timezone.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// Today is the calendar date of now in loc
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now.In(loc))
}

// MonthBounds returns the first and last day of a month
func MonthBounds(year, month int) (civil.Date, civil.Date, error) {
	if err := validateMonth(year, month); err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	first := civil.Date{Year: year, Month: time.Month(month), Day: 1}
	next := civil.DateOf(first.In(time.UTC).AddDate(0, 1, 0))
	return first, next.AddDays(-1), nil
}

// Build lays out a 42-cell grid starting on the Sunday on or before the 1st.
// Only in-month dates found in checked are flagged; today marks whichever
// cell carries that date.
func Build(year, month int, checked []civil.Date, today civil.Date) (domain.Calendar, error) {
	first, last, err := MonthBounds(year, month)
	if err != nil {
		return domain.Calendar{}, err
	}

	marked := make(map[civil.Date]bool, len(checked))
	for _, d := range checked {
		marked[d] = true
	}

	lead := int(first.In(time.UTC).Weekday())
	start := first.AddDays(-lead)

	cal := domain.Calendar{
		Year:  year,
		Month: month,
		Cells: make([]domain.CalendarCell, GridCells),
	}
	for i := range cal.Cells {
		d := start.AddDays(i)
		inMonth := !d.Before(first) && !d.After(last)
		cell := domain.CalendarCell{
			Date:    d,
			Day:     d.Day,
			InMonth: inMonth,
			Checked: inMonth && marked[d],
			Today:   d == today,
		}
		if cell.Checked {
			cal.CheckedCount++
		}
		cal.Cells[i] = cell
	}
	return cal, nil
}

// Classify names the gap between the previous check-in and today.
// A nil last means the user has never checked in.
func Classify(last *civil.Date, today civil.Date) (string, error) {
	if last == nil {
		return domain.GapFirst, nil
	}
	switch gap := today.DaysSince(*last); {
	case gap < 0:
		return "", domain.InvalidTimeError{
			Field: fieldToday,
			At:    today.In(time.UTC),
			Ref:   last.In(time.UTC),
		}
	case gap == 0:
		return domain.GapSameDay, nil
	case gap == 1:
		return domain.GapConsecutive, nil
	default:
		return domain.GapBroken, nil
	}
}

// Render draws the grid as fixed-width text. In-month checked days carry a
// '*', today carries '<' (or '#' when also checked), out-of-month days show '.'.
func Render(cal domain.Calendar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", time.Month(cal.Month), cal.Year)
	b.WriteString(weekdayHeader)
	b.WriteByte('\n')

	for row := 0; row*7 < len(cal.Cells); row++ {
		cells := cal.Cells[row*7 : min(row*7+7, len(cal.Cells))]
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = renderCell(c)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, ""), " "))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "checked: %d\n", cal.CheckedCount)
	return b.String()
}

func renderCell(c domain.CalendarCell) string {
	day := "."
	if c.InMonth {
		day = strconv.Itoa(c.Day)
	}

	mark := " "
	switch {
	case c.Today && c.Checked:
		mark = "#"
	case c.Today:
		mark = "<"
	case c.Checked:
		mark = "*"
	}
	return fmt.Sprintf("%3s%s", day, mark)
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %s %d", domain.ErrInvalidInput, ErrMsgInvalidMonth, month)
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %s %d", domain.ErrInvalidInput, ErrMsgInvalidYear, year)
	}
	return nil
}
