package forms

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%q): %v", name, err)
	}
	return loc
}

func TestEventCodecCreateNormalisesAndStamps(t *testing.T) {
	codec := EventCodec{Location: mustZone(t, "Asia/Kolkata")}
	session := auth.NewSession(uuid.New(), "mentor@club.edu", &models.Profile{Role: models.RoleClubMentor})

	rec, err := codec.ToRecord(Event{
		Title:       "  Go Workshop ",
		Description: "Hands on",
		EventDate:   "2025-03-01T18:30",
		Location:    "   ",
	}, nil, session)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}

	if rec.Title != "Go Workshop" {
		t.Errorf("title = %q", rec.Title)
	}
	if want := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC); !rec.EventDate.Equal(want) {
		t.Errorf("event date = %v, want %v", rec.EventDate, want)
	}
	if rec.Location != nil || rec.RegistrationLink != nil || rec.RegistrationOpenDate != nil {
		t.Errorf("empty optionals not normalised to nil: %+v", rec)
	}
	if rec.CreatedBy == nil || *rec.CreatedBy != session.UserID {
		t.Errorf("created_by = %v, want %s", rec.CreatedBy, session.UserID)
	}
}

func TestEventCodecEditWithoutChangesIsNoOp(t *testing.T) {
	loc := mustZone(t, "America/New_York")
	codec := EventCodec{Location: loc}
	creator := uuid.New()
	open := time.Date(2025, 1, 10, 4, 15, 42, 123456000, time.UTC)
	location := "Lab 3"
	original := models.Event{
		Base:                 models.Base{ID: uuid.New()},
		Title:                "Hackathon",
		Description:          "24h",
		EventDate:            time.Date(2025, 2, 1, 14, 0, 59, 999000, time.UTC),
		Location:             &location,
		RegistrationOpenDate: &open,
		CreatedBy:            &creator,
	}

	form := codec.FromRecord(original)
	if form.EventDate != "2025-02-01T09:00" {
		t.Errorf("edit form date = %q, want local wall time", form.EventDate)
	}

	rec, err := codec.ToRecord(form, &original, auth.NewSession(uuid.New(), "other@club.edu", nil))
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	if !rec.EventDate.Equal(original.EventDate) {
		t.Errorf("event date drifted: %v -> %v", original.EventDate, rec.EventDate)
	}
	if rec.RegistrationOpenDate == nil || !rec.RegistrationOpenDate.Equal(open) {
		t.Errorf("registration open drifted: %v", rec.RegistrationOpenDate)
	}
	if rec.Location == nil || *rec.Location != location {
		t.Errorf("location changed: %v", rec.Location)
	}
	if rec.CreatedBy == nil || *rec.CreatedBy != creator {
		t.Error("edit must not restamp created_by")
	}
}

func TestEventCodecRejectsInvalidForms(t *testing.T) {
	codec := EventCodec{Location: time.UTC}
	tests := []struct {
		name  string
		form  Event
		field string
	}{
		{"missing title", Event{Description: "d", EventDate: "2025-01-01T10:00"}, "title"},
		{"missing date", Event{Title: "t", Description: "d"}, "eventDate"},
		{"bad date", Event{Title: "t", Description: "d", EventDate: "next tuesday"}, "eventDate"},
		{"bad link", Event{Title: "t", Description: "d", EventDate: "2025-01-01T10:00", RegistrationLink: "not a url"}, "registrationLink"},
		{"window reversed", Event{Title: "t", Description: "d", EventDate: "2025-01-01T10:00",
			RegistrationOpenDate: "2024-12-10T10:00", RegistrationCloseDate: "2024-12-01T10:00"}, "registrationCloseDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.ToRecord(tt.form, nil, auth.Anonymous)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("error = %v, want validation failure", err)
			}
			var ce *apperrors.CustomError
			if !errors.As(err, &ce) || ce.Details["field"] != tt.field {
				t.Errorf("error field = %v, want %q", ce, tt.field)
			}
		})
	}
}

func TestTeamMemberCodecRoundTrip(t *testing.T) {
	codec := TeamMemberCodec{}
	rec, err := codec.ToRecord(TeamMember{Name: "Ada", Role: "Club Mentor", Contact: ""}, nil, auth.Anonymous)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	if rec.Contact != nil || rec.PhotoURL != nil {
		t.Errorf("empty optionals not nil: %+v", rec)
	}
	if got := codec.FromRecord(rec); got != (TeamMember{Name: "Ada", Role: "Club Mentor"}) {
		t.Errorf("FromRecord() = %+v", got)
	}
}

func TestClubInfoCodecKeepsDelimiters(t *testing.T) {
	desc := "• one\n• two\n\n"
	rec, err := ClubInfoCodec{}.ToRecord(ClubInfo{Section: " Mission", Title: "Mission", Description: desc}, nil, auth.Anonymous)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	if rec.Section != "Mission" || rec.Description != desc {
		t.Errorf("ToRecord() = %+v", rec)
	}
}

func TestCodecsRejectBlankRequiredText(t *testing.T) {
	events := EventCodec{Location: time.UTC}
	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{"event title", func() error {
			_, err := events.ToRecord(Event{Title: "   ", Description: "d", EventDate: "2025-01-01T10:00"}, nil, auth.Anonymous)
			return err
		}, "title"},
		{"event description", func() error {
			_, err := events.ToRecord(Event{Title: "t", Description: "\n\t", EventDate: "2025-01-01T10:00"}, nil, auth.Anonymous)
			return err
		}, "description"},
		{"team name", func() error {
			_, err := TeamMemberCodec{}.ToRecord(TeamMember{Name: " ", Role: "Club Mentor"}, nil, auth.Anonymous)
			return err
		}, "name"},
		{"team role", func() error {
			_, err := TeamMemberCodec{}.ToRecord(TeamMember{Name: "Ada", Role: "  "}, nil, auth.Anonymous)
			return err
		}, "role"},
		{"about section", func() error {
			_, err := ClubInfoCodec{}.ToRecord(ClubInfo{Section: " ", Title: "t", Description: "d"}, nil, auth.Anonymous)
			return err
		}, "section"},
		{"upload title", func() error {
			original := models.Resource{Title: "Old"}
			_, err := ResourceCodec{}.ToRecord(Upload{Title: "\t"}, &original, auth.Anonymous)
			return err
		}, "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			var ce *apperrors.CustomError
			if !errors.As(err, &ce) || !errors.Is(err, apperrors.ErrValidationFailed) || ce.Details["field"] != tt.field {
				t.Errorf("error = %v, want validation failure on %q", err, tt.field)
			}
		})
	}
}

func TestBindingEngineKnowsFormRules(t *testing.T) {
	if err := binding.Validator.ValidateStruct(&TeamMember{Name: " ", Role: "Club Mentor"}); err == nil {
		t.Error("gin binding accepted a blank name")
	}
	if err := binding.Validator.ValidateStruct(&TeamMember{Name: "Ada", Role: "Club Mentor"}); err != nil {
		t.Errorf("gin binding rejected a valid form: %v", err)
	}
}

func TestUploadCodecsRequireExistingRecord(t *testing.T) {
	if _, err := (ResourceCodec{}).ToRecord(Upload{Title: "Slides"}, nil, auth.Anonymous); !errors.Is(err, apperrors.ErrUploadRequired) {
		t.Errorf("resource create without blob error = %v", err)
	}
	original := models.GalleryImage{Title: "Old", ImageURL: "http://x/gallery/1.png"}
	rec, err := (GalleryCodec{}).ToRecord(Upload{Title: "New", Description: " "}, &original, auth.Anonymous)
	if err != nil {
		t.Fatalf("ToRecord: %v", err)
	}
	if rec.Title != "New" || rec.Description != nil || rec.ImageURL != original.ImageURL {
		t.Errorf("metadata edit = %+v", rec)
	}
}
