package entities

import "time"

// Priority orders announcements.
type Priority string

const (
	PriorityLow    Priority = "baja"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "alta"
)

// Announcement is a notice shown on the dashboard.
type Announcement struct {
	ID       string
	Title    string
	Content  string
	Date     time.Time
	Author   string
	Priority Priority
}

// AnnouncementFilter narrows announcement listings.
type AnnouncementFilter struct {
	Priority Priority
	Page     Page
}
