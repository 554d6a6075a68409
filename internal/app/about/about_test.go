package about

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/models"
)

func TestKindOf(t *testing.T) {
	tests := map[string]SectionKind{
		"vision":     KindVision,
		" Mission ":  KindMission,
		"objectives": KindObjectives,
		"RULES":      KindRules,
		"history":    KindPlain,
		"":           KindPlain,
	}
	for in, want := range tests {
		if got := KindOf(in); got != want {
			t.Errorf("KindOf(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseObjectives(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Objective
	}{
		{
			name: "two plain cards",
			in:   "Be bold.\n\nLead with integrity.",
			want: []Objective{{Title: "Be bold."}, {Title: "Lead with integrity."}},
		},
		{
			name: "title and body split on first separator",
			in:   "Learning: Weekly workshops: hands on\n\nCommunity: Meet peers",
			want: []Objective{
				{Title: "Learning", Body: "Weekly workshops: hands on"},
				{Title: "Community", Body: "Meet peers"},
			},
		},
		{
			name: "blank blocks dropped",
			in:   "\n\nOnly one\n\n\n\n",
			want: []Objective{{Title: "Only one"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseObjectives(tt.in)
			if err != nil {
				t.Fatalf("ParseObjectives: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseObjectives() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRules(t *testing.T) {
	in := "General Conduct\nBe on time\nRespect others\n\nDisciplinary Action\nRepeated absence leads to removal\n\nMembership"
	got, err := ParseRules(in)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	want := []RuleGroup{
		{Title: "General Conduct", Items: []string{"Be on time", "Respect others"}},
		{Title: "Disciplinary Action", Disciplinary: true, Paragraph: "Repeated absence leads to removal"},
		{Title: "Membership"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRules() = %+v, want %+v", got, want)
	}
	if got[0].Disciplinary {
		t.Error("non-disciplinary group flagged")
	}
}

func TestParseMission(t *testing.T) {
	got, err := ParseMission("• Teach Go\n• Build tools • \n•")
	if err != nil {
		t.Fatalf("ParseMission: %v", err)
	}
	if want := []string{"Teach Go", "Build tools"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMission() = %q, want %q", got, want)
	}
	if _, err := ParseMission("no bullets here"); err != ErrMalformed {
		t.Errorf("ParseMission without bullets error = %v", err)
	}
}

func TestRenderFallsBackToPlain(t *testing.T) {
	logger := zerolog.Nop()
	tests := []struct {
		name     string
		info     models.ClubInfo
		wantKind SectionKind
		wantIcon string
	}{
		{"vision is text", models.ClubInfo{Section: "vision", Description: "A better club"}, KindVision, "lightbulb"},
		{"mission without bullets", models.ClubInfo{Section: "mission", Description: "Just a sentence"}, KindPlain, "target"},
		{"empty rules", models.ClubInfo{Section: "rules", Description: "  \n\n "}, KindPlain, "shield"},
		{"unknown section", models.ClubInfo{Section: "history", Description: "Founded 2019"}, KindPlain, "book-open"},
		{"objectives parse", models.ClubInfo{Section: "objectives", Description: "A: b"}, KindObjectives, "book-open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.info, logger)
			if got.Kind != tt.wantKind || got.Icon != tt.wantIcon {
				t.Errorf("Render() kind=%s icon=%s, want %s %s", got.Kind, got.Icon, tt.wantKind, tt.wantIcon)
			}
			if got.Kind == KindPlain && got.Text != tt.info.Description {
				t.Errorf("plain fallback text = %q", got.Text)
			}
		})
	}
}

func TestSectionKindJSON(t *testing.T) {
	data, err := json.Marshal(Section{Kind: KindRules})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"kind":"rules"`) {
		t.Errorf("kind not encoded by name: %s", data)
	}
}
