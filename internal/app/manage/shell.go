package manage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/forms"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/services"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/notify"
)

// Admin tabs
const (
	TabEvents    = "events"
	TabResources = "resources"
	TabGallery   = "gallery"
	TabTeam      = "team"
	TabAbout     = "about"
)

// Tabs lists the admin tabs in display order.
var Tabs = []string{TabEvents, TabResources, TabGallery, TabTeam, TabAbout}

// Shell mounts admin screens. It holds the wiring but no screen state.
type Shell struct {
	services *services.Services
	location *time.Location
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewShell creates a Shell. notifier receives every screen notification in
// addition to the per-request listener passed at mount time.
func NewShell(svcs *services.Services, location *time.Location, notifier notify.Notifier, logger zerolog.Logger) *Shell {
	if location == nil {
		location = time.UTC
	}
	return &Shell{
		services: svcs,
		location: location,
		notifier: notifier,
		logger:   logger,
	}
}

func (sh *Shell) authorize(session auth.Session) error {
	if !session.IsAdmin() {
		return apperrors.NewForbiddenError("admin access required")
	}
	return nil
}

func (sh *Shell) fanout(listener notify.Notifier) notify.Notifier {
	return notify.Fanout{sh.notifier, listener}
}

// Mount returns the screen for tab.
func (sh *Shell) Mount(tab string, session auth.Session, listener notify.Notifier) (Tab, error) {
	var (
		screen Tab
		err    error
	)
	switch tab {
	case TabEvents:
		screen, err = sh.Events(session, listener)
	case TabResources:
		screen, err = sh.Resources(session, listener)
	case TabGallery:
		screen, err = sh.Gallery(session, listener)
	case TabTeam:
		screen, err = sh.Team(session, listener)
	case TabAbout:
		screen, err = sh.About(session, listener)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownTab, tab)
	}
	if err != nil {
		return nil, err
	}
	return screen, nil
}

// Events mounts the events screen.
func (sh *Shell) Events(session auth.Session, listener notify.Notifier) (*Screen[models.Event, forms.Event], error) {
	if err := sh.authorize(session); err != nil {
		return nil, err
	}
	return NewScreen[models.Event, forms.Event](Config{Name: TabEvents, Label: "Event"},
		sh.services.Events, forms.EventCodec{Location: sh.location}, session, sh.fanout(listener), sh.logger), nil
}

// Team mounts the team members screen.
func (sh *Shell) Team(session auth.Session, listener notify.Notifier) (*Screen[models.Coordinator, forms.TeamMember], error) {
	if err := sh.authorize(session); err != nil {
		return nil, err
	}
	return NewScreen[models.Coordinator, forms.TeamMember](Config{Name: TabTeam, Label: "Team member"},
		sh.services.Team, forms.TeamMemberCodec{}, session, sh.fanout(listener), sh.logger), nil
}

// About mounts the club info screen.
func (sh *Shell) About(session auth.Session, listener notify.Notifier) (*Screen[models.ClubInfo, forms.ClubInfo], error) {
	if err := sh.authorize(session); err != nil {
		return nil, err
	}
	return NewScreen[models.ClubInfo, forms.ClubInfo](Config{Name: TabAbout, Label: "Section"},
		sh.services.ClubInfo, forms.ClubInfoCodec{}, session, sh.fanout(listener), sh.logger), nil
}

// Resources mounts the files screen.
func (sh *Shell) Resources(session auth.Session, listener notify.Notifier) (*UploadScreen[models.Resource], error) {
	if err := sh.authorize(session); err != nil {
		return nil, err
	}
	return NewUploadScreen[models.Resource](Config{Name: TabResources, Label: "File"},
		sh.services.Resources, forms.ResourceCodec{}, session, sh.fanout(listener), sh.logger), nil
}

// Gallery mounts the gallery screen.
func (sh *Shell) Gallery(session auth.Session, listener notify.Notifier) (*UploadScreen[models.GalleryImage], error) {
	if err := sh.authorize(session); err != nil {
		return nil, err
	}
	return NewUploadScreen[models.GalleryImage](Config{Name: TabGallery, Label: "Image"},
		sh.services.Gallery, forms.GalleryCodec{}, session, sh.fanout(listener), sh.logger), nil
}
