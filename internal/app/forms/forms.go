// Package forms holds the editable representations of content records and
// the conversions between the two. Form fields are plain strings, the way
// an edit form holds them; records carry typed, null-normalised values.
package forms

import (
	"strings"
	"time"

	"github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/helpers"
)

// Codec converts between a record and its form.
type Codec[T any, F any] interface {
	// Blank returns the empty create form.
	Blank() F
	// FromRecord pre-populates an edit form.
	FromRecord(rec T) F
	// ToRecord builds the record to submit. original is nil when creating.
	ToRecord(form F, original *T, session auth.Session) (T, error)
}

// Event is the create/edit form for an event. Dates use the local
// datetime input layout (2006-01-02T15:04) in the portal's time zone.
type Event struct {
	Title                 string `json:"title" binding:"required,notblank"`
	Description           string `json:"description" binding:"required,notblank"`
	EventDate             string `json:"eventDate" binding:"required"`
	Location              string `json:"location"`
	RegistrationLink      string `json:"registrationLink" binding:"omitempty,url"`
	RegistrationOpenDate  string `json:"registrationOpenDate"`
	RegistrationCloseDate string `json:"registrationCloseDate"`
}

// EventCodec converts events in the given location.
type EventCodec struct {
	Location *time.Location
}

func (c EventCodec) Blank() Event { return Event{} }

func (c EventCodec) FromRecord(e models.Event) Event {
	return Event{
		Title:                 e.Title,
		Description:           e.Description,
		EventDate:             helpers.ToLocalInput(e.EventDate, c.Location),
		Location:              helpers.ValueOrEmpty(e.Location),
		RegistrationLink:      helpers.ValueOrEmpty(e.RegistrationLink),
		RegistrationOpenDate:  helpers.ToLocalInputPtr(e.RegistrationOpenDate, c.Location),
		RegistrationCloseDate: helpers.ToLocalInputPtr(e.RegistrationCloseDate, c.Location),
	}
}

func (c EventCodec) ToRecord(f Event, original *models.Event, session auth.Session) (models.Event, error) {
	f.RegistrationLink = strings.TrimSpace(f.RegistrationLink)
	if err := Validate(f); err != nil {
		return models.Event{}, err
	}

	var rec models.Event
	var origDate, origOpen, origClose *time.Time
	if original != nil {
		rec = *original
		origDate = &original.EventDate
		origOpen = original.RegistrationOpenDate
		origClose = original.RegistrationCloseDate
	} else {
		rec.CreatedBy = session.ActorID()
	}

	date, err := helpers.KeepIfUnchanged(f.EventDate, origDate, c.Location)
	if err != nil {
		return models.Event{}, apperrors.NewValidationError("eventDate", err.Error())
	}
	if date == nil {
		return models.Event{}, apperrors.NewValidationError("eventDate", "eventDate is required")
	}
	open, err := helpers.KeepIfUnchanged(f.RegistrationOpenDate, origOpen, c.Location)
	if err != nil {
		return models.Event{}, apperrors.NewValidationError("registrationOpenDate", err.Error())
	}
	closing, err := helpers.KeepIfUnchanged(f.RegistrationCloseDate, origClose, c.Location)
	if err != nil {
		return models.Event{}, apperrors.NewValidationError("registrationCloseDate", err.Error())
	}
	if open != nil && closing != nil && closing.Before(*open) {
		return models.Event{}, apperrors.NewValidationError("registrationCloseDate", "registrationCloseDate must not be before registrationOpenDate")
	}

	rec.Title = strings.TrimSpace(f.Title)
	rec.Description = f.Description
	rec.EventDate = *date
	rec.Location = helpers.NullIfEmpty(f.Location)
	rec.RegistrationLink = helpers.NullIfEmpty(f.RegistrationLink)
	rec.RegistrationOpenDate = open
	rec.RegistrationCloseDate = closing
	return rec, nil
}

// TeamMember is the create/edit form for a coordinator. PhotoURL is a plain
// link, not an upload.
type TeamMember struct {
	Name     string `json:"name" binding:"required,notblank"`
	Role     string `json:"role" binding:"required,notblank"`
	Contact  string `json:"contact"`
	PhotoURL string `json:"photoUrl" binding:"omitempty,url"`
}

type TeamMemberCodec struct{}

func (TeamMemberCodec) Blank() TeamMember { return TeamMember{} }

func (TeamMemberCodec) FromRecord(c models.Coordinator) TeamMember {
	return TeamMember{
		Name:     c.Name,
		Role:     c.Role,
		Contact:  helpers.ValueOrEmpty(c.Contact),
		PhotoURL: helpers.ValueOrEmpty(c.PhotoURL),
	}
}

func (TeamMemberCodec) ToRecord(f TeamMember, original *models.Coordinator, _ auth.Session) (models.Coordinator, error) {
	f.PhotoURL = strings.TrimSpace(f.PhotoURL)
	if err := Validate(f); err != nil {
		return models.Coordinator{}, err
	}
	var rec models.Coordinator
	if original != nil {
		rec = *original
	}
	rec.Name = strings.TrimSpace(f.Name)
	rec.Role = strings.TrimSpace(f.Role)
	rec.Contact = helpers.NullIfEmpty(f.Contact)
	rec.PhotoURL = helpers.NullIfEmpty(f.PhotoURL)
	return rec, nil
}

// ClubInfo is the create/edit form for an about-page section. The
// description is stored verbatim so its delimiters survive.
type ClubInfo struct {
	Section     string `json:"section" binding:"required,notblank"`
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
}

type ClubInfoCodec struct{}

func (ClubInfoCodec) Blank() ClubInfo { return ClubInfo{} }

func (ClubInfoCodec) FromRecord(c models.ClubInfo) ClubInfo {
	return ClubInfo{Section: c.Section, Title: c.Title, Description: c.Description}
}

func (ClubInfoCodec) ToRecord(f ClubInfo, original *models.ClubInfo, session auth.Session) (models.ClubInfo, error) {
	if err := Validate(f); err != nil {
		return models.ClubInfo{}, err
	}
	var rec models.ClubInfo
	if original != nil {
		rec = *original
	} else {
		rec.CreatedBy = session.ActorID()
	}
	rec.Section = strings.TrimSpace(f.Section)
	rec.Title = strings.TrimSpace(f.Title)
	rec.Description = f.Description
	return rec, nil
}

// Upload is the metadata form of an upload-backed record. The blob itself
// travels separately and only on create.
type Upload struct {
	Title       string `json:"title" form:"title" binding:"required,notblank"`
	Description string `json:"description" form:"description"`
}

// ResourceCodec edits resource metadata.
type ResourceCodec struct{}

func (ResourceCodec) Blank() Upload { return Upload{} }

func (ResourceCodec) FromRecord(r models.Resource) Upload {
	return Upload{Title: r.Title, Description: helpers.ValueOrEmpty(r.Description)}
}

func (ResourceCodec) ToRecord(f Upload, original *models.Resource, _ auth.Session) (models.Resource, error) {
	if err := Validate(f); err != nil {
		return models.Resource{}, err
	}
	if original == nil {
		return models.Resource{}, apperrors.ErrUploadRequired
	}
	rec := *original
	rec.Title = strings.TrimSpace(f.Title)
	rec.Description = helpers.NullIfEmpty(f.Description)
	return rec, nil
}

// GalleryCodec edits gallery image metadata.
type GalleryCodec struct{}

func (GalleryCodec) Blank() Upload { return Upload{} }

func (GalleryCodec) FromRecord(g models.GalleryImage) Upload {
	return Upload{Title: g.Title, Description: helpers.ValueOrEmpty(g.Description)}
}

func (GalleryCodec) ToRecord(f Upload, original *models.GalleryImage, _ auth.Session) (models.GalleryImage, error) {
	if err := Validate(f); err != nil {
		return models.GalleryImage{}, err
	}
	if original == nil {
		return models.GalleryImage{}, apperrors.ErrUploadRequired
	}
	rec := *original
	rec.Title = strings.TrimSpace(f.Title)
	rec.Description = helpers.NullIfEmpty(f.Description)
	return rec, nil
}
