package calendar

import "time"

// LegacyDays is the number of day cells the legacy grid always places,
// whatever the real length of the month.
const LegacyDays = 31

type Cell struct {
	Day    int
	Row    int
	Column int
}

// Layout is the placement of one month on a 7-column grid. Row 0 holds the
// weekday headers, so day cells start at row 1.
type Layout struct {
	Year   int
	Month  time.Month
	Offset int
	Days   int
	Weeks  int
	Cells  []Cell
}

func ComputeLayout(year int, month time.Month) Layout {
	return layout(year, month, DaysIn(year, month))
}

// ComputeLegacyLayout places LegacyDays cells regardless of the month, so
// short months end with days that do not exist.
func ComputeLegacyLayout(year int, month time.Month) Layout {
	return layout(year, month, LegacyDays)
}

func layout(year int, month time.Month, days int) Layout {
	offset := FirstWeekday(year, month)
	l := Layout{
		Year:   year,
		Month:  month,
		Offset: offset,
		Days:   days,
		Weeks:  (days + offset + 6) / 7,
		Cells:  make([]Cell, 0, days),
	}
	for d := 1; d <= days; d++ {
		idx := d - 1 + offset
		l.Cells = append(l.Cells, Cell{Day: d, Row: idx/7 + 1, Column: idx % 7})
	}
	return l
}

// FirstWeekday returns the weekday of day 1, 0 for Sunday through 6 for Saturday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (l Layout) Position(day int) (row, col int, ok bool) {
	if day < 1 || day > l.Days {
		return 0, 0, false
	}
	c := l.Cells[day-1]
	return c.Row, c.Column, true
}

func (l Layout) CellAt(row, col int) (Cell, bool) {
	if row < 1 || col < 0 || col > 6 {
		return Cell{}, false
	}
	day := (row-1)*7 + col - l.Offset + 1
	if day < 1 || day > l.Days {
		return Cell{}, false
	}
	return l.Cells[day-1], true
}

// Valid reports whether day exists in the real calendar month. Legacy
// layouts can hold cells for which this is false.
func (l Layout) Valid(day int) bool {
	return day >= 1 && day <= DaysIn(l.Year, l.Month)
}
