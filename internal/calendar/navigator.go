package calendar

import "time"

// YearSpan is how many years the selector offers on each side of the
// current year. The window is [current-YearSpan, current+YearSpan).
const YearSpan = 100

// Navigator holds the selected month and year. The year window is fixed
// when the navigator is created and never regenerated.
type Navigator struct {
	month   time.Month
	year    int
	minYear int
	maxYear int
	legacy  bool
	today   time.Time
}

func NewNavigator(today time.Time, legacy bool) *Navigator {
	y := today.Year()
	return &Navigator{
		month:   today.Month(),
		year:    y,
		minYear: y - YearSpan,
		maxYear: y + YearSpan - 1,
		legacy:  legacy,
		today:   today,
	}
}

func (n *Navigator) Month() time.Month { return n.month }

func (n *Navigator) Year() int { return n.year }

// Years lists the selectable years in ascending order.
func (n *Navigator) Years() []int {
	ys := make([]int, 0, n.maxYear-n.minYear+1)
	for y := n.minYear; y <= n.maxYear; y++ {
		ys = append(ys, y)
	}
	return ys
}

func (n *Navigator) InWindow(year int) bool {
	return year >= n.minYear && year <= n.maxYear
}

func (n *Navigator) Layout() Layout {
	if n.legacy {
		return ComputeLegacyLayout(n.year, n.month)
	}
	return ComputeLayout(n.year, n.month)
}

func (n *Navigator) SetMonth(m time.Month) bool {
	if m < time.January || m > time.December {
		return false
	}
	n.month = m
	return true
}

func (n *Navigator) SetYear(y int) bool {
	if !n.InWindow(y) {
		return false
	}
	n.year = y
	return true
}

// NextMonth advances one month, carrying into the next year. It reports
// false and changes nothing at the end of the year window.
func (n *Navigator) NextMonth() bool {
	if n.month == time.December {
		if !n.InWindow(n.year + 1) {
			return false
		}
		n.year++
		n.month = time.January
		return true
	}
	n.month++
	return true
}

func (n *Navigator) PrevMonth() bool {
	if n.month == time.January {
		if !n.InWindow(n.year - 1) {
			return false
		}
		n.year--
		n.month = time.December
		return true
	}
	n.month--
	return true
}

func (n *Navigator) NextYear() bool { return n.SetYear(n.year + 1) }
func (n *Navigator) PrevYear() bool { return n.SetYear(n.year - 1) }

// Today selects the month the navigator was created in.
func (n *Navigator) Today() {
	n.month = n.today.Month()
	n.year = n.today.Year()
}

// IsToday reports whether day of the selected month is the creation date.
func (n *Navigator) IsToday(day int) bool {
	return n.year == n.today.Year() && n.month == n.today.Month() && day == n.today.Day()
}
