package helpers

import "strings"

// NullIfEmpty converts a form string to an optional value.
// Whitespace-only input is treated as empty.
func NullIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := s
	return &v
}

// ValueOrEmpty is the inverse of NullIfEmpty, used when pre-populating forms.
func ValueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
