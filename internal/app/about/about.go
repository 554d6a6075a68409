// Package about turns club_info rows into structured about-page sections.
//
// Stored descriptions use a small text grammar per section:
// mission items are separated by "•", objectives are blank-line separated
// blocks of "Title: body", and rules are blank-line separated groups whose
// first line is the group title.
package about

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/models"
)

// Delimiters of the stored text grammar.
const (
	bulletDelimiter = "•"
	blockDelimiter  = "\n\n"
	titleDelimiter  = ": "
	disciplinaryTag = "Disciplinary"
)

// ErrMalformed is returned when a description does not follow its section's grammar.
var ErrMalformed = errors.New("section content does not match its format")

// SectionKind selects how a club_info description is parsed.
type SectionKind int

const (
	KindPlain SectionKind = iota
	KindVision
	KindMission
	KindObjectives
	KindRules
)

var kindNames = map[SectionKind]string{
	KindPlain:      "plain",
	KindVision:     "vision",
	KindMission:    "mission",
	KindObjectives: "objectives",
	KindRules:      "rules",
}

func (k SectionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "plain"
}

// MarshalText renders the kind by name in JSON.
func (k SectionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Icon names the icon the front end shows next to the section.
func (k SectionKind) Icon() string {
	switch k {
	case KindVision:
		return "lightbulb"
	case KindMission:
		return "target"
	case KindRules:
		return "shield"
	default:
		return "book-open"
	}
}

// KindOf maps a section discriminator to its kind. Unknown sections are plain.
func KindOf(section string) SectionKind {
	switch strings.ToLower(strings.TrimSpace(section)) {
	case "vision":
		return KindVision
	case "mission":
		return KindMission
	case "objectives":
		return KindObjectives
	case "rules":
		return KindRules
	}
	return KindPlain
}

// Objective is one objectives card.
type Objective struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// RuleGroup is one titled block of rules. Items is set when the group has
// more than one line after its title, Paragraph otherwise.
type RuleGroup struct {
	Title        string   `json:"title"`
	Disciplinary bool     `json:"disciplinary"`
	Items        []string `json:"items,omitempty"`
	Paragraph    string   `json:"paragraph,omitempty"`
}

// Section is a rendered club_info row. Exactly one of Text, Items,
// Objectives or Rules is populated, according to Kind.
type Section struct {
	ID         uuid.UUID   `json:"id"`
	Section    string      `json:"section"`
	Kind       SectionKind `json:"kind"`
	Icon       string      `json:"icon"`
	Title      string      `json:"title"`
	Text       string      `json:"text,omitempty"`
	Items      []string    `json:"items,omitempty"`
	Objectives []Objective `json:"objectives,omitempty"`
	Rules      []RuleGroup `json:"rules,omitempty"`
}

// Render parses info according to its section kind. Content that does not
// follow the grammar is rendered as plain text and a warning is logged.
func Render(info models.ClubInfo, logger zerolog.Logger) Section {
	kind := KindOf(info.Section)
	out := Section{
		ID:      info.ID,
		Section: info.Section,
		Title:   info.Title,
	}

	var err error
	switch kind {
	case KindMission:
		out.Items, err = ParseMission(info.Description)
	case KindObjectives:
		out.Objectives, err = ParseObjectives(info.Description)
	case KindRules:
		out.Rules, err = ParseRules(info.Description)
	default:
		out.Text = info.Description
	}

	if err != nil {
		logger.Warn().Err(err).
			Str("section", info.Section).
			Str("id", info.ID.String()).
			Msg("Club info content does not parse, rendering as plain text")
		kind = KindPlain
		out.Items, out.Objectives, out.Rules = nil, nil, nil
		out.Text = info.Description
	}

	out.Kind = kind
	out.Icon = KindOf(info.Section).Icon()
	return out
}

// RenderAll renders rows in the order given.
func RenderAll(infos []models.ClubInfo, logger zerolog.Logger) []Section {
	sections := make([]Section, 0, len(infos))
	for _, info := range infos {
		sections = append(sections, Render(info, logger))
	}
	return sections
}

// ParseMission splits on the bullet delimiter and drops blank items.
func ParseMission(text string) ([]string, error) {
	if !strings.Contains(text, bulletDelimiter) {
		return nil, ErrMalformed
	}
	var items []string
	for _, part := range strings.Split(text, bulletDelimiter) {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, ErrMalformed
	}
	return items, nil
}

// ParseObjectives splits into blank-line separated cards; each card splits on
// the first ": " into title and body. A card without ": " is all title.
func ParseObjectives(text string) ([]Objective, error) {
	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, ErrMalformed
	}
	objectives := make([]Objective, 0, len(blocks))
	for _, block := range blocks {
		title, body, found := strings.Cut(block, titleDelimiter)
		if !found {
			objectives = append(objectives, Objective{Title: block})
			continue
		}
		objectives = append(objectives, Objective{
			Title: strings.TrimSpace(title),
			Body:  strings.TrimSpace(body),
		})
	}
	return objectives, nil
}

// ParseRules splits into blank-line separated groups. The first line of a
// group is its title; a title containing "Disciplinary" flags the group.
func ParseRules(text string) ([]RuleGroup, error) {
	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, ErrMalformed
	}
	groups := make([]RuleGroup, 0, len(blocks))
	for _, block := range blocks {
		lines := nonEmptyLines(block)
		group := RuleGroup{
			Title:        lines[0],
			Disciplinary: strings.Contains(lines[0], disciplinaryTag),
		}
		rest := lines[1:]
		switch {
		case len(rest) > 1:
			group.Items = rest
		case len(rest) == 1:
			group.Paragraph = rest[0]
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// splitBlocks normalises line endings and returns the trimmed non-blank blocks.
func splitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []string
	for _, part := range strings.Split(text, blockDelimiter) {
		if block := strings.TrimSpace(part); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
