package wardrobe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maya-reeves/wardrobe-api/models"
)

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange(2024, 2, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRangeDecemberWrapsYear(t *testing.T) {
	start, end, err := MonthRange(2024, 12, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRangeInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2024, 0},
		{"month thirteen", 2024, 13},
		{"negative month", 2024, -1},
		{"year zero", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := MonthRange(tt.year, tt.month, time.UTC)
			assert.ErrorIs(t, err, ErrInvalidMonth)
		})
	}
}

func TestDayRangeHalfOpen(t *testing.T) {
	noon := time.Date(2024, 7, 15, 12, 30, 45, 0, time.UTC)
	start, end := DayRange(noon, time.UTC)

	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC), end)

	// 23:59:59.5 falls inside the window; midnight of the next day does not
	lastMoment := time.Date(2024, 7, 15, 23, 59, 59, 500_000_000, time.UTC)
	assert.True(t, !lastMoment.Before(start) && lastMoment.Before(end))
	assert.False(t, end.Before(end), "end bound is exclusive")
}

func TestDayRangeRespectsLocation(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	assert.NoError(t, err)

	// 2024-07-16 03:00 UTC is still July 15 in Chicago
	utcEarlyMorning := time.Date(2024, 7, 16, 3, 0, 0, 0, time.UTC)
	start, end := DayRange(utcEarlyMorning, chicago)

	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, chicago), start)
	assert.Equal(t, time.Date(2024, 7, 16, 0, 0, 0, 0, chicago), end)
}

func TestNewCalendarIndexesByDay(t *testing.T) {
	outfits := []models.Outfit{
		{ID: 1, Name: "first", Date: time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "second", Date: time.Date(2024, 2, 3, 18, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "third", Date: time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)},
	}

	cal := NewCalendar(2024, 2, outfits, time.UTC)

	day3 := cal.ByDay(3)
	assert.Len(t, day3, 2)
	assert.Equal(t, uint(1), day3[0].ID, "relative order within a day is preserved")
	assert.Equal(t, uint(2), day3[1].ID)

	assert.Len(t, cal.ByDay(29), 1)
	assert.Nil(t, cal.ByDay(4), "empty day returns nil")
}

func TestCalendarDays(t *testing.T) {
	assert.Equal(t, 29, NewCalendar(2024, 2, nil, time.UTC).Days(), "2024 is a leap year")
	assert.Equal(t, 28, NewCalendar(2023, 2, nil, time.UTC).Days())
	assert.Equal(t, 31, NewCalendar(2024, 1, nil, time.UTC).Days())
	assert.Equal(t, 30, NewCalendar(2024, 4, nil, time.UTC).Days())
}
