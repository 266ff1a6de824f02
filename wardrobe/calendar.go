package wardrobe

import (
	"errors"
	"time"

	"github.com/maya-reeves/wardrobe-api/models"
)

// ErrInvalidMonth is returned for month values outside [1,12] or
// non-positive years. It is a client-input error, not a server fault.
var ErrInvalidMonth = errors.New("month must be between 1 and 12 and year must be positive")

// MonthRange returns the half-open window [year-month-01 00:00, next
// month 00:00) in the given location.
func MonthRange(year, month int, loc *time.Location) (start, end time.Time, err error) {
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0)
	return start, end, nil
}

// DayRange returns the half-open window [D 00:00, D+1 00:00) containing t,
// in the given location. Using a half-open range avoids the last-second
// gap of a [00:00:00, 23:59:59] window.
func DayRange(t time.Time, loc *time.Location) (start, end time.Time) {
	t = t.In(loc)
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end = start.AddDate(0, 0, 1)
	return start, end
}

// Calendar is a day-indexed view of a month's outfits, used to render the
// month grid.
type Calendar struct {
	Year  int
	Month int
	byDay map[int][]models.Outfit
}

// NewCalendar builds a calendar from outfits already restricted to the
// month window. Outfits are indexed by the day of their Date in loc;
// relative order within a day is preserved.
func NewCalendar(year, month int, outfits []models.Outfit, loc *time.Location) *Calendar {
	byDay := make(map[int][]models.Outfit)
	for _, outfit := range outfits {
		day := outfit.Date.In(loc).Day()
		byDay[day] = append(byDay[day], outfit)
	}
	return &Calendar{Year: year, Month: month, byDay: byDay}
}

// ByDay returns the outfits recorded on the given day of the month, or
// nil when the day is empty.
func (c *Calendar) ByDay(day int) []models.Outfit {
	return c.byDay[day]
}

// Days returns the number of days in the calendar's month.
func (c *Calendar) Days() int {
	first := time.Date(c.Year, time.Month(c.Month), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
