package availability

import (
	"testing"
	"time"

	"janseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string) *models.TimeWindow {
	return &models.TimeWindow{Enabled: true, StartTime: start, EndTime: end}
}

func disabledWindow(start, end string) *models.TimeWindow {
	return &models.TimeWindow{Enabled: false, StartTime: start, EndTime: end}
}

func testConfig(mutate func(*models.AvailabilityConfig)) *models.AvailabilityConfig {
	cfg := models.NewDefaultAvailabilityConfig("CMP000042", "")
	if mutate != nil {
		mutate(&cfg)
	}
	return &cfg
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func findDate(dates []models.AvailableDate, iso string) *models.AvailableDate {
	for i := range dates {
		if dates[i].Date == iso {
			return &dates[i]
		}
	}
	return nil
}

func TestComputeAvailableDates_NilConfigDefaults(t *testing.T) {
	// January 2025, anchored on Wed Jan 1.
	dates := ComputeAvailableDates(nil, 2025, 0, date(2025, time.January, 1))
	require.NotEmpty(t, dates)

	jan1 := findDate(dates, "2025-01-01")
	require.NotNil(t, jan1, "Jan 1 is a Wednesday and must be bookable")
	assert.Equal(t, []string{"09:00-12:00", "14:00-17:00"}, jan1.Slots)

	assert.Nil(t, findDate(dates, "2025-01-04"), "Saturday must be excluded")
	assert.Nil(t, findDate(dates, "2025-01-05"), "Sunday must be excluded")

	// The 30-day advance window from Jan 1 covers the whole month; Jan 31 is
	// a Friday and must be the last entry.
	assert.Equal(t, "2025-01-31", dates[len(dates)-1].Date)
}

func TestComputeAvailableDates_PastDatesExcluded(t *testing.T) {
	dates := ComputeAvailableDates(nil, 2025, 0, date(2025, time.January, 15))

	assert.Nil(t, findDate(dates, "2025-01-14"))
	assert.Nil(t, findDate(dates, "2025-01-10"))
	require.NotEmpty(t, dates)
	assert.Equal(t, "2025-01-15", dates[0].Date, "today itself is bookable")
}

func TestComputeAvailableDates_AdvanceWindowBoundary(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.MaxAdvanceBookingDays = 5
	})

	// Wed Jan 1 + 5 days = Mon Jan 6, inclusive.
	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	require.NotEmpty(t, dates)
	assert.Equal(t, "2025-01-06", dates[len(dates)-1].Date)
	assert.Nil(t, findDate(dates, "2025-01-07"))
}

func TestComputeAvailableDates_OutputStrictlyAscending(t *testing.T) {
	dates := ComputeAvailableDates(nil, 2025, 5, date(2025, time.June, 1))
	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1].Date, dates[i].Date)
	}
}

func TestComputeAvailableDates_HolidayOverrideWins(t *testing.T) {
	// Weekly template marks Sunday available, but Jan 26 2025 (a Sunday) is a
	// holiday override.
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.WeeklySchedule.Sunday = &models.DaySchedule{
			IsAvailable: true,
			Morning:     window("10:00", "13:00"),
		}
		c.SpecialDates = []models.SpecialDate{
			{Date: date(2025, time.January, 26), Name: "Republic Day", IsAvailable: false},
		}
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	assert.Nil(t, findDate(dates, "2025-01-26"))
	// Other Sundays keep the template.
	sunday := findDate(dates, "2025-01-12")
	require.NotNil(t, sunday)
	assert.Equal(t, []string{"10:00-13:00"}, sunday.Slots)
}

func TestComputeAvailableDates_CustomOverrideReplacesTemplate(t *testing.T) {
	// Mon Jan 6 gets a one-off evening-only schedule; the template's Monday
	// windows must not leak through.
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.SpecialDates = []models.SpecialDate{
			{
				Date:        date(2025, time.January, 6),
				IsAvailable: true,
				Evening:     window("18:00", "20:00"),
			},
		}
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	monday := findDate(dates, "2025-01-06")
	require.NotNil(t, monday)
	assert.Equal(t, []string{"18:00-20:00"}, monday.Slots)
}

func TestComputeAvailableDates_OverrideMatchesStoredTimeComponent(t *testing.T) {
	// Overrides persisted with a time-of-day still match their calendar date.
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.SpecialDates = []models.SpecialDate{
			{Date: time.Date(2025, time.January, 8, 15, 30, 0, 0, time.UTC), IsAvailable: false},
		}
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	assert.Nil(t, findDate(dates, "2025-01-08"))
}

func TestComputeAvailableDates_DuplicateOverridesFirstWins(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.SpecialDates = []models.SpecialDate{
			{Date: date(2025, time.January, 6), IsAvailable: true, Morning: window("08:00", "10:00")},
			{Date: date(2025, time.January, 6), IsAvailable: false},
		}
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	monday := findDate(dates, "2025-01-06")
	require.NotNil(t, monday)
	assert.Equal(t, []string{"08:00-10:00"}, monday.Slots)
}

func TestComputeAvailableDates_UnavailableWeekdayExcluded(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.WeeklySchedule.Wednesday = &models.DaySchedule{IsAvailable: false, Morning: window("09:00", "12:00")}
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	assert.Nil(t, findDate(dates, "2025-01-01"), "Wednesdays are closed")
	assert.Nil(t, findDate(dates, "2025-01-08"))
	assert.NotNil(t, findDate(dates, "2025-01-02"), "Thursdays remain open")
}

func TestComputeAvailableDates_AllWindowsDisabledExcluded(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.WeeklySchedule.Monday = &models.DaySchedule{
			IsAvailable: true,
			Morning:     disabledWindow("09:00", "12:00"),
			Afternoon:   disabledWindow("14:00", "17:00"),
			Evening:     disabledWindow("18:00", "20:00"),
		}
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	assert.Nil(t, findDate(dates, "2025-01-06"))
	assert.Nil(t, findDate(dates, "2025-01-13"))
}

func TestComputeAvailableDates_SingleAfternoonWindow(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.WeeklySchedule.Monday = &models.DaySchedule{
			IsAvailable: true,
			Afternoon:   window("14:00", "16:00"),
		}
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	monday := findDate(dates, "2025-01-06")
	require.NotNil(t, monday)
	assert.Equal(t, []string{"14:00-16:00"}, monday.Slots)
}

func TestComputeAvailableDates_MissingWeekdayEntryTreatedUnavailable(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.WeeklySchedule.Friday = nil
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	assert.Nil(t, findDate(dates, "2025-01-03"))
	assert.Nil(t, findDate(dates, "2025-01-10"))
}

func TestComputeAvailableDates_LeapFebruary(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.MaxAdvanceBookingDays = 60
	})

	dates := ComputeAvailableDates(cfg, 2024, 1, date(2024, time.February, 1))
	// Feb 29 2024 is a Thursday.
	assert.NotNil(t, findDate(dates, "2024-02-29"))
	assert.Equal(t, "2024-02-29", dates[len(dates)-1].Date)
}

func TestComputeAvailableDates_SlotDurationNotConsulted(t *testing.T) {
	// A period is one slot regardless of slotDurationMinutes.
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.SlotDurationMinutes = 15
	})

	dates := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	monday := findDate(dates, "2025-01-06")
	require.NotNil(t, monday)
	assert.Equal(t, []string{"09:00-12:00", "14:00-17:00"}, monday.Slots)
}

func TestComputeAvailableDates_Idempotent(t *testing.T) {
	cfg := testConfig(func(c *models.AvailabilityConfig) {
		c.SpecialDates = []models.SpecialDate{
			{Date: date(2025, time.January, 26), IsAvailable: false},
		}
	})

	first := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	second := ComputeAvailableDates(cfg, 2025, 0, date(2025, time.January, 1))
	assert.Equal(t, first, second)
}

func TestComputeAvailableDates_MonthFullyInPastIsEmpty(t *testing.T) {
	dates := ComputeAvailableDates(nil, 2024, 11, date(2025, time.March, 1))
	assert.Empty(t, dates)
}

func TestComputeAvailableDates_MonthBeyondAdvanceWindowIsEmpty(t *testing.T) {
	dates := ComputeAvailableDates(nil, 2025, 11, date(2025, time.January, 1))
	assert.Empty(t, dates)
}
