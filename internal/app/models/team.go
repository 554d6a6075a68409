package models

import (
	"strings"

	"github.com/google/uuid"
)

// Coordinator is a team member shown on the team page, oldest first.
type Coordinator struct {
	Base
	Name     string     `json:"name" db:"name" example:"Ada Lovelace"`
	Role     string     `json:"role" db:"role" example:"Club Mentor"`
	Contact  *string    `json:"contact,omitempty" db:"contact"`
	PhotoURL *string    `json:"photoUrl,omitempty" db:"photo_url"`
	UserID   *uuid.UUID `json:"userId,omitempty" db:"user_id"`
}

// CoordinatorLess orders by creation time ascending.
func CoordinatorLess(a, b Coordinator) bool { return olderFirst(a.Base, b.Base) }

// IsMentor reports whether the member's role names a mentor.
func (c Coordinator) IsMentor() bool {
	return strings.Contains(strings.ToLower(c.Role), "mentor")
}

// ClubInfo is one section of the about page, ordered by section name.
type ClubInfo struct {
	Base
	Section     string     `json:"section" db:"section" example:"mission"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	CreatedBy   *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
}

// ClubInfoLess orders by section ascending.
func ClubInfoLess(a, b ClubInfo) bool {
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	return olderFirst(a.Base, b.Base)
}
