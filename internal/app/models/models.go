package models

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the server-assigned identity and timestamps shared by every record.
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Key returns the record id.
func (b Base) Key() uuid.UUID { return b.ID }

func (b *Base) GetID() uuid.UUID        { return b.ID }
func (b *Base) SetID(id uuid.UUID)      { b.ID = id }
func (b *Base) GetCreatedAt() time.Time { return b.CreatedAt }

// Meta exposes the base fields for scanning.
func (b *Base) Meta() *Base { return b }

// SetTimestamps stores the values a store assigned on write.
func (b *Base) SetTimestamps(created, updated time.Time) {
	b.CreatedAt = created
	b.UpdatedAt = updated
}

// Keyed is implemented by every stored entity value.
type Keyed interface {
	Key() uuid.UUID
}

// Record is implemented by pointers to every stored entity.
type Record interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
	GetCreatedAt() time.Time
	SetTimestamps(created, updated time.Time)
}

// Entity names, used in errors, logs and notifications.
const (
	EntityEvent       = "event"
	EntityResource    = "resource"
	EntityGallery     = "gallery image"
	EntityCoordinator = "team member"
	EntityClubInfo    = "club info"
	EntityProfile     = "profile"
)

// Table names.
const (
	TableEvents       = "events"
	TableFiles        = "files"
	TableGallery      = "gallery"
	TableCoordinators = "coordinators"
	TableClubInfo     = "club_info"
	TableProfiles     = "profiles"
	TableUsers        = "users"
)

// olderFirst breaks ties on creation time then id so every ordering is total.
func olderFirst(a, b Base) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}

func newerFirst(a, b Base) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}
