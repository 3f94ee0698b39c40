package entities

import "time"

// Preference is one persisted key/value pair, e.g. the chosen language.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
