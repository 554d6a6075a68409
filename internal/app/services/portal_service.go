package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/about"
	"github.com/setnu/clubportal/internal/app/models"
)

// EventView is an event with its state relative to now.
type EventView struct {
	models.Event
	Upcoming           bool                      `json:"upcoming"`
	RegistrationStatus models.RegistrationStatus `json:"registrationStatus"`
}

// EventsPage splits events at now. Upcoming is soonest first, Past most recent first.
type EventsPage struct {
	Upcoming []EventView `json:"upcoming"`
	Past     []EventView `json:"past"`
}

// TeamMemberView is a team member with its presentation group.
type TeamMemberView struct {
	models.Coordinator
	Mentor bool   `json:"mentor"`
	Icon   string `json:"icon"`
}

// TeamPage groups members into mentors and coordinators, keeping list order.
type TeamPage struct {
	Mentors      []TeamMemberView `json:"mentors"`
	Coordinators []TeamMemberView `json:"coordinators"`
}

// Counts per entity, shown on the home page.
type Counts struct {
	Events    int `json:"events"`
	Resources int `json:"resources"`
	Gallery   int `json:"gallery"`
	Team      int `json:"team"`
}

// HomePage is the landing page summary.
type HomePage struct {
	Counts         Counts                `json:"counts"`
	UpcomingEvents []EventView           `json:"upcomingEvents"`
	LatestGallery  []models.GalleryImage `json:"latestGallery"`
}

// PortalService assembles the public, read-only pages.
type PortalService struct {
	events    *ContentService[models.Event]
	resources *UploadService[models.Resource]
	gallery   *UploadService[models.GalleryImage]
	team      *ContentService[models.Coordinator]
	clubInfo  *ContentService[models.ClubInfo]

	upcomingOnHome int
	galleryOnHome  int
	now            func() time.Time
	logger         zerolog.Logger
}

// PortalLimits bounds the home page lists
type PortalLimits struct {
	UpcomingOnHome int
	GalleryOnHome  int
}

// NewPortalService creates a PortalService
func NewPortalService(s *Services, limits PortalLimits, logger zerolog.Logger) *PortalService {
	return &PortalService{
		events:         s.Events,
		resources:      s.Resources,
		gallery:        s.Gallery,
		team:           s.Team,
		clubInfo:       s.ClubInfo,
		upcomingOnHome: limits.UpcomingOnHome,
		galleryOnHome:  limits.GalleryOnHome,
		now:            time.Now,
		logger:         logger,
	}
}

func (p *PortalService) eventViews(events []models.Event, now time.Time) EventsPage {
	page := EventsPage{Upcoming: []EventView{}, Past: []EventView{}}
	for _, e := range events {
		view := EventView{Event: e, Upcoming: e.IsUpcoming(now), RegistrationStatus: e.RegistrationStatusAt(now)}
		if view.Upcoming {
			page.Upcoming = append(page.Upcoming, view)
		} else {
			page.Past = append(page.Past, view)
		}
	}
	// events arrive by date ascending; past reads most recent first
	for i, j := 0, len(page.Past)-1; i < j; i, j = i+1, j-1 {
		page.Past[i], page.Past[j] = page.Past[j], page.Past[i]
	}
	return page
}

// Events returns the events page
func (p *PortalService) Events(ctx context.Context) (*EventsPage, error) {
	events, err := p.events.List(ctx)
	if err != nil {
		return nil, err
	}
	page := p.eventViews(events, p.now())
	return &page, nil
}

// Home returns the landing page summary
func (p *PortalService) Home(ctx context.Context) (*HomePage, error) {
	events, err := p.events.List(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := p.resources.List(ctx)
	if err != nil {
		return nil, err
	}
	gallery, err := p.gallery.List(ctx)
	if err != nil {
		return nil, err
	}
	team, err := p.team.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := Counts{
		Events:    len(events),
		Resources: len(resources),
		Gallery:   len(gallery),
		Team:      len(team),
	}

	upcoming := firstN(p.eventViews(events, p.now()).Upcoming, p.upcomingOnHome)
	gallery = firstN(gallery, p.galleryOnHome)

	return &HomePage{
		Counts:         counts,
		UpcomingEvents: upcoming,
		LatestGallery:  gallery,
	}, nil
}

// Resources returns the resources matching search, newest first
func (p *PortalService) Resources(ctx context.Context, search string) ([]models.Resource, error) {
	resources, err := p.resources.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterResources(resources, search), nil
}

// Gallery returns every gallery image, newest first
func (p *PortalService) Gallery(ctx context.Context) ([]models.GalleryImage, error) {
	return p.gallery.List(ctx)
}

// Team returns the team page
func (p *PortalService) Team(ctx context.Context) (*TeamPage, error) {
	members, err := p.team.List(ctx)
	if err != nil {
		return nil, err
	}
	page := &TeamPage{Mentors: []TeamMemberView{}, Coordinators: []TeamMemberView{}}
	for _, m := range members {
		view := TeamMemberView{Coordinator: m, Mentor: m.IsMentor(), Icon: "user"}
		if view.Mentor {
			view.Icon = "graduation-cap"
			page.Mentors = append(page.Mentors, view)
		} else {
			page.Coordinators = append(page.Coordinators, view)
		}
	}
	return page, nil
}

// About returns the rendered about sections, ordered by section
func (p *PortalService) About(ctx context.Context) ([]about.Section, error) {
	infos, err := p.clubInfo.List(ctx)
	if err != nil {
		return nil, err
	}
	return about.RenderAll(infos, p.logger), nil
}

// firstN truncates list to n items. A negative n leaves it whole.
func firstN[T any](list []T, n int) []T {
	if n >= 0 && len(list) > n {
		return list[:n]
	}
	return list
}
