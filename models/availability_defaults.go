package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSlotDurationMinutes   = 30
	DefaultMaxAdvanceBookingDays = 30
)

// DefaultWeeklySchedule is the template applied when a tenant has not configured
// anything yet: weekdays 09:00-12:00 and 14:00-17:00, weekends closed.
func DefaultWeeklySchedule() WeeklySchedule {
	weekday := func() *DaySchedule {
		return &DaySchedule{
			IsAvailable: true,
			Morning:     &TimeWindow{Enabled: true, StartTime: "09:00", EndTime: "12:00"},
			Afternoon:   &TimeWindow{Enabled: true, StartTime: "14:00", EndTime: "17:00"},
			Evening:     &TimeWindow{Enabled: false},
		}
	}
	return WeeklySchedule{
		Sunday:    &DaySchedule{IsAvailable: false},
		Monday:    weekday(),
		Tuesday:   weekday(),
		Wednesday: weekday(),
		Thursday:  weekday(),
		Friday:    weekday(),
		Saturday:  &DaySchedule{IsAvailable: false},
	}
}

// NewDefaultAvailabilityConfig builds the document created lazily on first read.
func NewDefaultAvailabilityConfig(companyID, departmentID string) AvailabilityConfig {
	now := time.Now().UTC()
	return AvailabilityConfig{
		ID:                    uuid.New().String(),
		CompanyID:             companyID,
		DepartmentID:          departmentID,
		WeeklySchedule:        DefaultWeeklySchedule(),
		SpecialDates:          []SpecialDate{},
		SlotDurationMinutes:   DefaultSlotDurationMinutes,
		MaxAdvanceBookingDays: DefaultMaxAdvanceBookingDays,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
