package models

// Holiday is one entry of the static national/regional holiday catalog.
type Holiday struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Name string `json:"name"`
	Type string `json:"type"` // "national" or "religious"
}
