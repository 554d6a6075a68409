package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/about"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/pkg/memstore"
)

func TestCreateDefaultDataSeedsOnce(t *testing.T) {
	ctx := context.Background()
	table := memstore.NewTable[models.ClubInfo](models.ClubInfoLess)

	if err := CreateDefaultData(ctx, table, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}
	if table.Len() != len(DefaultClubInfo) {
		t.Fatalf("rows = %d, want %d", table.Len(), len(DefaultClubInfo))
	}

	if err := CreateDefaultData(ctx, table, zerolog.Nop()); err != nil {
		t.Fatalf("second CreateDefaultData: %v", err)
	}
	if table.Len() != len(DefaultClubInfo) {
		t.Errorf("seeding twice created duplicates: %d rows", table.Len())
	}
}

func TestDefaultClubInfoParses(t *testing.T) {
	for _, info := range DefaultClubInfo {
		section := about.Render(info, zerolog.Nop())
		if section.Kind != about.KindOf(info.Section) {
			t.Errorf("default %s section renders as %s", info.Section, section.Kind)
		}
	}
}
