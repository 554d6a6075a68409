package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalInputLayout is the minute-precision wall-clock format used by
// datetime-local form fields.
const LocalInputLayout = "2006-01-02T15:04"

var localInputLayouts = []string{
	LocalInputLayout,
	"2006-01-02T15:04:05",
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ToLocalInput renders an instant as a form value in loc.
func ToLocalInput(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LocalInputLayout)
}

// ToLocalInputPtr renders an optional instant, empty when nil.
func ToLocalInputPtr(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return ToLocalInput(*t, loc)
}

// ParseLocalInput interprets a form value as wall-clock time in loc and
// returns the absolute instant in UTC. Full RFC 3339 timestamps are accepted
// as-is.
func ParseLocalInput(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}
	for _, layout := range localInputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: expected %s", s, LocalInputLayout)
	}
	return t.UTC(), nil
}

// ParseOptionalLocalInput is ParseLocalInput for optional fields: empty input yields nil.
func ParseOptionalLocalInput(s string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseLocalInput(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// KeepIfUnchanged resolves a submitted form value against the stored instant.
// When the form still shows exactly what ToLocalInput rendered for original,
// the original instant is returned untouched so sub-minute precision survives
// an edit that did not change the field.
func KeepIfUnchanged(formValue string, original *time.Time, loc *time.Location) (*time.Time, error) {
	if original != nil && strings.TrimSpace(formValue) == ToLocalInput(*original, loc) {
		kept := *original
		return &kept, nil
	}
	return ParseOptionalLocalInput(formValue, loc)
}
