package entities

import "time"

// DueStatus enumerates due states.
type DueStatus string

const (
	DuePending DueStatus = "pendiente"
	DuePaid    DueStatus = "pagada"
)

// Due is a membership fee owed by a member.
type Due struct {
	ID       string
	MemberID string
	Amount   float64
	Date     time.Time
	Status   DueStatus
	PaidAt   *time.Time
}

// DueFilter narrows due listings.
type DueFilter struct {
	Status   DueStatus
	MemberID string
	Page     Page
}
