package tz

import "time"

// Lima is the America/Lima location (UTC-5, no DST). It falls back to a
// fixed zone when the system has no tz database.
var Lima *time.Location

func init() {
	var err error
	Lima, err = time.LoadLocation("America/Lima")
	if err != nil {
		Lima = time.FixedZone("PET", -5*60*60)
	}
}

// Year returns the calendar year of t in Lima.
func Year(t time.Time) int {
	return t.In(Lima).Year()
}
