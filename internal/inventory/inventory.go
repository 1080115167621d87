// Package inventory maps device and SIM top-up sheets onto the database
// records and back.
package inventory

import "strings"

// Options tune the reconcilers built by this package. Zero values fall back
// to the reconcile defaults.
type Options struct {
	BatchSize        int
	MaxErrorMessages int
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func withDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
