package models

import "time"

// TimeWindow is one bookable period within a day, stored as literal "HH:MM" strings.
type TimeWindow struct {
	Enabled   bool   `bson:"enabled" json:"enabled"`
	StartTime string `bson:"startTime" json:"startTime"` // e.g. "09:00"
	EndTime   string `bson:"endTime" json:"endTime"`     // e.g. "12:00"
}

// DaySchedule describes one weekday of the recurring template.
// When IsAvailable is false the windows are ignored entirely.
type DaySchedule struct {
	IsAvailable bool        `bson:"isAvailable" json:"isAvailable"`
	Morning     *TimeWindow `bson:"morning,omitempty" json:"morning,omitempty"`
	Afternoon   *TimeWindow `bson:"afternoon,omitempty" json:"afternoon,omitempty"`
	Evening     *TimeWindow `bson:"evening,omitempty" json:"evening,omitempty"`
}

// WeeklySchedule maps the seven weekdays to their recurring schedules.
type WeeklySchedule struct {
	Sunday    *DaySchedule `bson:"sunday,omitempty" json:"sunday,omitempty"`
	Monday    *DaySchedule `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   *DaySchedule `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday *DaySchedule `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  *DaySchedule `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    *DaySchedule `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  *DaySchedule `bson:"saturday,omitempty" json:"saturday,omitempty"`
}

// Day returns the schedule for the given weekday, nil when the entry is missing.
func (ws *WeeklySchedule) Day(d time.Weekday) *DaySchedule {
	if ws == nil {
		return nil
	}
	switch d {
	case time.Sunday:
		return ws.Sunday
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	}
	return nil
}

// SpecialDate overrides the weekly template for a single calendar date:
// a holiday (IsAvailable false) or a one-off custom schedule with its own windows.
type SpecialDate struct {
	Date        time.Time   `bson:"date" json:"date"`
	Name        string      `bson:"name,omitempty" json:"name,omitempty"`
	IsAvailable bool        `bson:"isAvailable" json:"isAvailable"`
	Morning     *TimeWindow `bson:"morning,omitempty" json:"morning,omitempty"`
	Afternoon   *TimeWindow `bson:"afternoon,omitempty" json:"afternoon,omitempty"`
	Evening     *TimeWindow `bson:"evening,omitempty" json:"evening,omitempty"`
}

// AvailabilityConfig is the per-tenant scheduling configuration.
// DepartmentID is empty for the company-wide config.
type AvailabilityConfig struct {
	ID                    string         `bson:"id" json:"id"`
	CompanyID             string         `bson:"companyId" json:"companyId"`
	DepartmentID          string         `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	WeeklySchedule        WeeklySchedule `bson:"weeklySchedule" json:"weeklySchedule"`
	SpecialDates          []SpecialDate  `bson:"specialDates" json:"specialDates"`
	SlotDurationMinutes   int            `bson:"slotDurationMinutes" json:"slotDurationMinutes"`
	MaxAdvanceBookingDays int            `bson:"maxAdvanceBookingDays" json:"maxAdvanceBookingDays"`
	IsActive              bool           `bson:"isActive" json:"isActive"`
	CreatedAt             time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// AvailableDate is one bookable calendar date with its open slots.
type AvailableDate struct {
	Date  string   `json:"date"`  // "YYYY-MM-DD"
	Slots []string `json:"slots"` // "HH:MM-HH:MM", morning/afternoon/evening order
}

// UpdateAvailabilityRequest carries the mutable settings for a tenant scope.
type UpdateAvailabilityRequest struct {
	DepartmentID          string          `json:"departmentId,omitempty"`
	WeeklySchedule        *WeeklySchedule `json:"weeklySchedule,omitempty"`
	SlotDurationMinutes   *int            `json:"slotDurationMinutes,omitempty"`
	MaxAdvanceBookingDays *int            `json:"maxAdvanceBookingDays,omitempty"`
	IsActive              *bool           `json:"isActive,omitempty"`
}

// AddSpecialDateRequest appends one override to a tenant scope.
type AddSpecialDateRequest struct {
	DepartmentID string      `json:"departmentId,omitempty"`
	SpecialDate  SpecialDate `json:"specialDate" binding:"required"`
}

// RemoveSpecialDateRequest removes overrides matching a calendar date.
type RemoveSpecialDateRequest struct {
	DepartmentID string    `json:"departmentId,omitempty"`
	Date         time.Time `json:"date" binding:"required"`
}
