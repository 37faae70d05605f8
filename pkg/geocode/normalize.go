package geocode

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// countryRe matches a trailing ", United States" / ", US" / ", USA".
	countryRe = regexp.MustCompile(`(?i)^(.*),\s*(?:United States|USA|US)\s*$`)

	// countyRe matches the 4-segment "<number+street>, <city>, <county>,
	// <state>" shape. The street segment admits periods for abbreviations
	// ("S. West Street"); the state segment admits whitespace for
	// multi-word state names.
	countyRe = regexp.MustCompile(`^([\w\s.]+),\s*([\w\s]+),\s*([\w\s]+),\s*([\w\s]+)$`)
)

// Normalize cleans a raw location string ahead of structural parsing. It is
// pure and total: (1) re-encode to clean UTF-8, (2) strip a trailing country
// designation, (3) drop the county segment from a 4-part address. Strings
// matching neither pattern pass through unchanged.
func Normalize(raw string) string {
	s := strings.TrimPrefix(raw, "\ufeff")
	s = strings.ToValidUTF8(s, "")
	s = norm.NFC.String(s)

	if m := countryRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	// Best-effort heuristic, not a full grammar: addresses are assumed not
	// to need county disambiguation for this service.
	if m := countyRe.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1]) + ", " + strings.TrimSpace(m[2]) + ", " + strings.TrimSpace(m[4])
	}

	return s
}
