package entities

import "time"

// MemberStatus enumerates membership states.
type MemberStatus string

const (
	MemberActive    MemberStatus = "activo"
	MemberInactive  MemberStatus = "inactivo"
	MemberSuspended MemberStatus = "suspendido"
)

// Member is a lodge member in the directory.
type Member struct {
	ID             string
	Name           string
	Degree         string
	Office         string
	Status         MemberStatus
	Email          string
	Phone          string
	InitiationDate *time.Time
}

// MemberFilter narrows member listings. Empty fields match everything.
type MemberFilter struct {
	Status MemberStatus
	Degree string
	Page   Page
}
