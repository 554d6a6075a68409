package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled club event, listed by event date ascending.
type Event struct {
	Base
	Title                 string     `json:"title" db:"title" example:"Intro to Go"`
	Description           string     `json:"description" db:"description"`
	EventDate             time.Time  `json:"eventDate" db:"event_date" example:"2025-03-01T10:00:00Z"`
	Location              *string    `json:"location,omitempty" db:"location"`
	RegistrationLink      *string    `json:"registrationLink,omitempty" db:"registration_link"`
	RegistrationOpenDate  *time.Time `json:"registrationOpenDate,omitempty" db:"registration_open_date"`
	RegistrationCloseDate *time.Time `json:"registrationCloseDate,omitempty" db:"registration_close_date"`
	CreatedBy             *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
}

// EventLess orders by event date ascending.
func EventLess(a, b Event) bool {
	if !a.EventDate.Equal(b.EventDate) {
		return a.EventDate.Before(b.EventDate)
	}
	return olderFirst(a.Base, b.Base)
}

// RegistrationStatus describes whether registration for an event is open at a given instant.
type RegistrationStatus string

const (
	RegistrationNone    RegistrationStatus = "none"
	RegistrationNotOpen RegistrationStatus = "not_open"
	RegistrationOpen    RegistrationStatus = "open"
	RegistrationClosed  RegistrationStatus = "closed"
)

// RegistrationStatusAt reports the registration window state at now.
// An event without a registration link or window has status none.
func (e Event) RegistrationStatusAt(now time.Time) RegistrationStatus {
	if e.RegistrationOpenDate == nil && e.RegistrationCloseDate == nil {
		if e.RegistrationLink != nil {
			return RegistrationOpen
		}
		return RegistrationNone
	}
	if e.RegistrationOpenDate != nil && now.Before(*e.RegistrationOpenDate) {
		return RegistrationNotOpen
	}
	if e.RegistrationCloseDate != nil && !now.Before(*e.RegistrationCloseDate) {
		return RegistrationClosed
	}
	return RegistrationOpen
}

// IsUpcoming reports whether the event starts at or after now.
func (e Event) IsUpcoming(now time.Time) bool {
	return !e.EventDate.Before(now)
}
