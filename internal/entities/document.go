package entities

import "time"

// CategoryPlancha marks a written work submitted by a member.
const CategoryPlancha = "plancha"

// Document is an entry of the digital library.
type Document struct {
	ID          string
	Title       string
	Category    string
	Degree      string
	Date        time.Time
	Author      string
	Description string
}

// DocumentFilter narrows library listings.
type DocumentFilter struct {
	Category string
	Degree   string
	Page     Page
}
