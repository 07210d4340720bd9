package models

// SeedReport counts the sample rows written by a seed run. Rows that already
// existed are counted in Skipped.
type SeedReport struct {
	Districts int `json:"districts"`
	Managers  int `json:"managers"`
	Locations int `json:"locations"`
	Skipped   int `json:"skipped"`
}
