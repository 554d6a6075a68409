package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/about"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/repositories"
	"github.com/setnu/clubportal/internal/pkg/filestorage"
)

func newTestPortal(t *testing.T, now time.Time) (*Services, *PortalService) {
	t.Helper()
	repos := repositories.NewMemoryRepositories()
	svcs := NewServices(repos, newFakeBlobs(), zerolog.Nop())
	portal := NewPortalService(svcs, PortalLimits{UpcomingOnHome: 3, GalleryOnHome: 2}, zerolog.Nop())
	portal.now = func() time.Time { return now }
	return svcs, portal
}

func TestPortalEventsSplitsAtNow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svcs, portal := newTestPortal(t, now)

	for i, offset := range []int{-48, -24, 24, 48, 72, 96} {
		e := &models.Event{Title: string(rune('A' + i)), EventDate: now.Add(time.Duration(offset) * time.Hour)}
		if err := svcs.Events.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := portal.Events(ctx)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(page.Upcoming) != 4 || len(page.Past) != 2 {
		t.Fatalf("upcoming=%d past=%d, want 4 and 2", len(page.Upcoming), len(page.Past))
	}
	if page.Upcoming[0].Title != "C" {
		t.Errorf("first upcoming = %s, want the soonest (C)", page.Upcoming[0].Title)
	}
	if page.Past[0].Title != "B" {
		t.Errorf("first past = %s, want the most recent (B)", page.Past[0].Title)
	}

	home, err := portal.Home(ctx)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if home.Counts.Events != 6 {
		t.Errorf("event count = %d, want 6", home.Counts.Events)
	}
	if len(home.UpcomingEvents) != 3 {
		t.Errorf("home upcoming = %d, want 3", len(home.UpcomingEvents))
	}
}

func TestPortalHomeLatestGallery(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svcs, portal := newTestPortal(t, now)

	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		blob := filestorage.Blob{Filename: name, Size: 1, Body: strings.NewReader("x")}
		if _, err := svcs.Gallery.Upload(ctx, admin, blob, name, ""); err != nil {
			t.Fatalf("Upload %s: %v", name, err)
		}
		time.Sleep(time.Millisecond)
	}

	home, err := portal.Home(ctx)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if home.Counts.Gallery != 3 {
		t.Errorf("gallery count = %d, want 3", home.Counts.Gallery)
	}
	if len(home.LatestGallery) != 2 || home.LatestGallery[0].Title != "c.jpg" {
		t.Errorf("latest gallery = %+v, want c.jpg then b.jpg", home.LatestGallery)
	}
}

func TestPortalHomeWithNegativeLimitsShowsEverything(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svcs, _ := newTestPortal(t, now)
	portal := NewPortalService(svcs, PortalLimits{UpcomingOnHome: -1, GalleryOnHome: -5}, zerolog.Nop())
	portal.now = func() time.Time { return now }

	for i := 1; i <= 4; i++ {
		e := &models.Event{Title: "Meetup", EventDate: now.Add(time.Duration(i) * time.Hour)}
		if err := svcs.Events.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	blob := filestorage.Blob{Filename: "a.jpg", Size: 1, Body: strings.NewReader("x")}
	if _, err := svcs.Gallery.Upload(ctx, admin, blob, "a.jpg", ""); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	home, err := portal.Home(ctx)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if len(home.UpcomingEvents) != 4 || len(home.LatestGallery) != 1 {
		t.Errorf("upcoming=%d gallery=%d, want 4 and 1", len(home.UpcomingEvents), len(home.LatestGallery))
	}
}

func TestPortalTeamGroupsMentors(t *testing.T) {
	ctx := context.Background()
	svcs, portal := newTestPortal(t, time.Now())

	for _, m := range []models.Coordinator{
		{Name: "Ada", Role: "Faculty Mentor"},
		{Name: "Linus", Role: "Student Coordinator"},
		{Name: "Grace", Role: "club mentor"},
	} {
		m := m
		if err := svcs.Team.Create(ctx, &m); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := portal.Team(ctx)
	if err != nil {
		t.Fatalf("Team: %v", err)
	}
	if len(page.Mentors) != 2 || len(page.Coordinators) != 1 {
		t.Fatalf("mentors=%d coordinators=%d", len(page.Mentors), len(page.Coordinators))
	}
	if page.Mentors[0].Icon != "graduation-cap" || page.Coordinators[0].Icon != "user" {
		t.Errorf("icons = %s/%s", page.Mentors[0].Icon, page.Coordinators[0].Icon)
	}
}

func TestPortalAboutRendersSections(t *testing.T) {
	ctx := context.Background()
	svcs, portal := newTestPortal(t, time.Now())

	infos := []models.ClubInfo{
		{Section: "vision", Title: "Vision", Description: "Build things."},
		{Section: "mission", Title: "Mission", Description: "• Learn • Share"},
	}
	for i := range infos {
		if err := svcs.ClubInfo.Create(ctx, &infos[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sections, err := portal.About(ctx)
	if err != nil {
		t.Fatalf("About: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}
	// ordered by section name
	if sections[0].Kind != about.KindMission || sections[1].Kind != about.KindVision {
		t.Errorf("kinds = %s, %s", sections[0].Kind, sections[1].Kind)
	}
	if len(sections[0].Items) != 2 {
		t.Errorf("mission items = %v", sections[0].Items)
	}
}
