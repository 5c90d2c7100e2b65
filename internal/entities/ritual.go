package entities

import "time"

// Ritual is a scheduled ceremony or lodge meeting.
type Ritual struct {
	ID          string
	Title       string
	Kind        string
	Date        time.Time
	Time        string
	Place       string
	Degree      string
	Description string
}

// RitualFilter narrows ritual listings. From keeps rituals on or after the date.
type RitualFilter struct {
	Kind   string
	Degree string
	From   *time.Time
	Page   Page
}
