package availability

import (
	"fmt"
	"time"

	"janseva/models"
)

// ComputeAvailableDates resolves the bookable dates of one calendar month for a
// tenant's availability configuration. month is 0-based (January = 0) to match
// the dashboard's calendar widget. today anchors the past-date and
// advance-window filters; only its date component is considered.
//
// cfg may be nil (no configuration exists for the scope yet), in which case the
// default weekday template and a 30-day advance window apply. The function is
// pure: no clock reads, no I/O, identical inputs give identical output.
func ComputeAvailableDates(cfg *models.AvailabilityConfig, year, month int, today time.Time) []models.AvailableDate {
	targetMonth := time.Month(month + 1)
	daysInMonth := time.Date(year, targetMonth+1, 0, 0, 0, 0, 0, time.UTC).Day()

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	maxDate := todayDate.AddDate(0, 0, maxAdvanceDays(cfg))

	available := make([]models.AvailableDate, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, targetMonth, day, 0, 0, 0, 0, time.UTC)

		if date.Before(todayDate) {
			continue
		}
		if date.After(maxDate) {
			continue
		}

		schedule, ok := resolveDaySchedule(cfg, date)
		if !ok {
			continue
		}

		slots := buildSlots(schedule)
		if len(slots) == 0 {
			continue
		}

		available = append(available, models.AvailableDate{
			Date:  date.Format("2006-01-02"),
			Slots: slots,
		})
	}
	return available
}

// resolveDaySchedule picks the schedule governing one date: a special-date
// override when present (its windows replace the weekly template outright),
// otherwise the weekly template, otherwise the built-in weekday default.
// The second return is false when the date is closed.
func resolveDaySchedule(cfg *models.AvailabilityConfig, date time.Time) (models.DaySchedule, bool) {
	if cfg != nil {
		// First override matching the calendar date wins; the write path does
		// not enforce uniqueness.
		for i := range cfg.SpecialDates {
			sd := &cfg.SpecialDates[i]
			if !sameCalendarDate(sd.Date, date) {
				continue
			}
			if !sd.IsAvailable {
				return models.DaySchedule{}, false
			}
			return models.DaySchedule{
				IsAvailable: true,
				Morning:     sd.Morning,
				Afternoon:   sd.Afternoon,
				Evening:     sd.Evening,
			}, true
		}

		day := cfg.WeeklySchedule.Day(date.Weekday())
		if day == nil || !day.IsAvailable {
			return models.DaySchedule{}, false
		}
		return *day, true
	}

	defaults := models.DefaultWeeklySchedule()
	day := defaults.Day(date.Weekday())
	if day == nil || !day.IsAvailable {
		return models.DaySchedule{}, false
	}
	return *day, true
}

// buildSlots emits one "HH:MM-HH:MM" string per enabled window, in fixed
// morning/afternoon/evening order. Windows are not subdivided by
// slotDurationMinutes; a period is always a single slot.
func buildSlots(day models.DaySchedule) []string {
	var slots []string
	for _, w := range []*models.TimeWindow{day.Morning, day.Afternoon, day.Evening} {
		if w != nil && w.Enabled {
			slots = append(slots, fmt.Sprintf("%s-%s", w.StartTime, w.EndTime))
		}
	}
	return slots
}

func maxAdvanceDays(cfg *models.AvailabilityConfig) int {
	if cfg == nil || cfg.MaxAdvanceBookingDays <= 0 {
		return models.DefaultMaxAdvanceBookingDays
	}
	return cfg.MaxAdvanceBookingDays
}

func sameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
