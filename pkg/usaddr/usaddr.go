// Package usaddr tokenizes one-line US postal addresses into structured
// fields. Parsing is a pure function over the input string; an effort is only
// made to support US-based addresses.
package usaddr

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// Address holds the decomposed fields of a one-line US address. Every field
// is optional at the type level; callers decide which fields they require.
type Address struct {
	Number string // house number, e.g. "4600"
	Street string // street name, e.g. "Silver Hill"
	Type   string // street type as written, e.g. "Rd."
	Suffix string // trailing directional, e.g. "NW"
	City   string
	State  string // two-letter abbreviation or spelled-out name
}

// ErrNoAddress signals that the input could not be tokenized into an address.
var ErrNoAddress = eris.New("usaddr: no parseable address")

// streetTypes lists recognized street type tokens, keyed lowercase without a
// trailing period.
var streetTypes = map[string]struct{}{
	"alley": {}, "aly": {},
	"ave": {}, "avenue": {},
	"blvd": {}, "boulevard": {},
	"cir": {}, "circle": {},
	"ct": {}, "court": {},
	"dr": {}, "drive": {},
	"expy": {}, "expressway": {},
	"hwy": {}, "highway": {},
	"ln": {}, "lane": {},
	"loop": {}, "pike": {},
	"pkwy": {}, "parkway": {},
	"pl": {}, "place": {}, "plaza": {},
	"rd": {}, "road": {},
	"sq": {}, "square": {},
	"st": {}, "street": {},
	"ter": {}, "terrace": {},
	"trl": {}, "trail": {},
	"way": {},
}

// directionals lists recognized directional suffix tokens, keyed lowercase.
var directionals = map[string]struct{}{
	"n": {}, "s": {}, "e": {}, "w": {},
	"ne": {}, "nw": {}, "se": {}, "sw": {},
	"north": {}, "south": {}, "east": {}, "west": {},
	"northeast": {}, "northwest": {}, "southeast": {}, "southwest": {},
}

var houseNumberRe = regexp.MustCompile(`^\d+[A-Za-z]?$`)

// Parse tokenizes a one-line address of the form
// "<number> <street> <type> [<suffix>], <city>, <state>" or "<city>, <state>".
// It returns ErrNoAddress when the input has no recognizable city/state
// structure.
func Parse(s string) (*Address, error) {
	segments := splitSegments(s)

	switch len(segments) {
	case 3:
		addr := parseStreetPart(segments[0])
		addr.City = segments[1]
		addr.State = segments[2]
		return addr, nil
	case 2:
		return &Address{City: segments[0], State: segments[1]}, nil
	default:
		return nil, eris.Wrapf(ErrNoAddress, "parse %q", s)
	}
}

// splitSegments splits on commas and drops empty segments.
func splitSegments(s string) []string {
	parts := strings.Split(s, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// parseStreetPart decomposes "<number> <name...> <type> [<suffix>]". Tokens
// that do not match the number/type/suffix tables stay part of the street
// name, so unrecognized addresses degrade to a bare street string.
func parseStreetPart(s string) *Address {
	addr := &Address{}
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return addr
	}

	if houseNumberRe.MatchString(tokens[0]) && len(tokens) > 1 {
		addr.Number = tokens[0]
		tokens = tokens[1:]
	}

	if len(tokens) > 1 {
		if _, ok := directionals[normalizeToken(tokens[len(tokens)-1])]; ok {
			addr.Suffix = tokens[len(tokens)-1]
			tokens = tokens[:len(tokens)-1]
		}
	}

	if len(tokens) > 1 {
		if _, ok := streetTypes[normalizeToken(tokens[len(tokens)-1])]; ok {
			addr.Type = tokens[len(tokens)-1]
			tokens = tokens[:len(tokens)-1]
		}
	}

	addr.Street = strings.Join(tokens, " ")
	return addr
}

// normalizeToken lowercases a token and strips a trailing period so "Rd."
// matches the "rd" table entry.
func normalizeToken(tok string) string {
	return strings.TrimSuffix(strings.ToLower(tok), ".")
}
