package availability

import (
	"fmt"

	"janseva/models"
)

// holidayEntry pins a holiday to a month/day; the year is substituted at
// lookup time. Religious holidays shift yearly but carry their last-known
// dates here; the catalog is advisory, not authoritative.
type holidayEntry struct {
	month int
	day   int
	name  string
	typ   string
}

var holidayTable = []holidayEntry{
	{1, 26, "Republic Day", "national"},
	{3, 8, "Maha Shivaratri", "religious"},
	{3, 25, "Holi", "religious"},
	{4, 14, "Ambedkar Jayanti", "national"},
	{4, 17, "Ram Navami", "religious"},
	{4, 21, "Mahavir Jayanti", "religious"},
	{5, 1, "May Day", "national"},
	{5, 23, "Buddha Purnima", "religious"},
	{6, 17, "Eid ul-Fitr", "religious"},
	{7, 17, "Muharram", "religious"},
	{8, 15, "Independence Day", "national"},
	{8, 26, "Janmashtami", "religious"},
	{9, 16, "Milad un-Nabi", "religious"},
	{10, 2, "Gandhi Jayanti", "national"},
	{10, 12, "Dussehra", "religious"},
	{10, 31, "Diwali", "religious"},
	{11, 1, "Diwali Holiday", "religious"},
	{11, 15, "Guru Nanak Jayanti", "religious"},
	{12, 25, "Christmas", "religious"},
}

// Holidays returns the national/regional holiday list for a year.
func Holidays(year int) []models.Holiday {
	holidays := make([]models.Holiday, 0, len(holidayTable))
	for _, h := range holidayTable {
		holidays = append(holidays, models.Holiday{
			Date: fmt.Sprintf("%04d-%02d-%02d", year, h.month, h.day),
			Name: h.name,
			Type: h.typ,
		})
	}
	return holidays
}
