package domain

import "strings"

// Version is a release identifier split into its numeric precedence components.
//
// Only the leading run of dot-separated numeric components takes part in
// precedence. Whatever follows (pre-release, post-release or local tags) is kept
// in Suffix and only matters as a tie-breaker through Raw.
type Version struct {
	// Raw is the identifier exactly as published by the index.
	Raw string

	// Components holds the numeric components as digit strings without leading zeros.
	Components []string

	// Suffix is the unparsed remainder after the numeric components.
	Suffix string
}

// ParseVersion splits a raw release identifier into precedence components.
// It never fails: an identifier without a leading number has no components and
// sorts below every identifier that has one.
func ParseVersion(raw string) Version {
	v := Version{Raw: raw}

	s := raw
	if len(s) > 1 && (s[0] == 'v' || s[0] == 'V') && isDigit(s[1]) {
		s = s[1:]
	}

	for {
		end := 0
		for end < len(s) && isDigit(s[end]) {
			end++
		}
		if end == 0 {
			break
		}

		v.Components = append(v.Components, trimLeadingZeros(s[:end]))
		s = s[end:]

		if len(s) < 2 || s[0] != '.' || !isDigit(s[1]) {
			break
		}
		s = s[1:]
	}

	v.Suffix = s
	return v
}

// Compare returns -1, 0 or 1 depending on whether v sorts before, equal to or after other.
func (v Version) Compare(other Version) int {
	if c := compareComponents(v.Components, other.Components); c != 0 {
		return c
	}
	return strings.Compare(v.Raw, other.Raw)
}

// String returns the raw identifier.
func (v Version) String() string {
	return v.Raw
}

// Normalized returns the numeric components joined with dots.
func (v Version) Normalized() string {
	return strings.Join(v.Components, ".")
}

// CompareVersions orders two raw release identifiers.
//
// Numeric components are compared left to right as arbitrary precision
// integers, a missing component sorts below zero, and identifiers that
// normalize to the same components are ordered by their raw strings.
func CompareVersions(a, b string) int {
	return ParseVersion(a).Compare(ParseVersion(b))
}

// LatestVersion returns the greatest identifier in releases.
// The boolean is false when releases is empty.
func LatestVersion(releases []string) (string, bool) {
	if len(releases) == 0 {
		return "", false
	}

	best := ParseVersion(releases[0])
	for _, raw := range releases[1:] {
		candidate := ParseVersion(raw)
		if candidate.Compare(best) > 0 {
			best = candidate
		}
	}
	return best.Raw, true
}

func compareComponents(a, b []string) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		switch {
		case i >= len(a):
			return -1
		case i >= len(b):
			return 1
		}

		if len(a[i]) != len(b[i]) {
			if len(a[i]) < len(b[i]) {
				return -1
			}
			return 1
		}
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
