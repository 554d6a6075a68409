package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/repositories"
)

// DefaultClubInfo is the about-page content a fresh installation starts with.
// Descriptions use the delimiters the about renderer parses.
var DefaultClubInfo = []models.ClubInfo{
	{
		Section:     "vision",
		Title:       "Our Vision",
		Description: "To build a community of students who learn by building, share what they know, and grow into confident engineers.",
	},
	{
		Section:     "mission",
		Title:       "Our Mission",
		Description: "• Run hands-on workshops every month • Connect students with mentors from faculty and industry • Ship open source projects as teams • Keep every resource free and open to members",
	},
	{
		Section: "objectives",
		Title:   "Objectives",
		Description: "Learning: Give every member a path from first program to production-grade project.\n\n" +
			"Collaboration: Pair beginners with experienced members on real work.\n\n" +
			"Outreach: Take part in inter-college events and hackathons.",
	},
	{
		Section: "rules",
		Title:   "Club Rules",
		Description: "Membership\nMembership is open to all enrolled students.\nMembers attend at least one event per term.\n\n" +
			"Conduct\nBe respectful in every club channel and event.\n\n" +
			"Disciplinary Action\nA first violation results in a warning.\nRepeated violations lead to suspension of membership.",
	},
}

// CreateDefaultData seeds the about sections when the club_info table is empty.
// An installation that already has content is left untouched.
func CreateDefaultData(ctx context.Context, clubInfo repositories.Table[models.ClubInfo], lgr zerolog.Logger) error {
	existing, err := clubInfo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("sections", len(existing)).Msg("Club info already present, skipping default data")
		return nil
	}

	lgr.Info().Msg("Creating default club info sections...")
	var finalErr error // collect errors without stopping
	for _, section := range DefaultClubInfo {
		section := section
		if err := clubInfo.Create(ctx, &section); err != nil {
			lgr.Error().Err(err).Str("section", section.Section).Msg("Error creating default club info section")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("sections", len(DefaultClubInfo)).Msg("Default club info created")
	}
	return finalErr
}
