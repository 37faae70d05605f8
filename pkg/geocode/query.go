package geocode

import (
	"net/url"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/census-geocode/pkg/usaddr"
)

const censusBenchmark = "Public_AR_Current"

// buildQuery maps a tokenized address onto the parameter set the Census
// locations endpoint requires. City and state are mandatory; the street
// parameter is synthesized from number + street + type (+ suffix) when a
// street is present.
func buildQuery(addr *usaddr.Address) (url.Values, error) {
	if addr.City == "" || addr.State == "" {
		return nil, eris.Wrap(ErrMissingField, "build query")
	}

	params := url.Values{
		"format":    {"json"},
		"benchmark": {censusBenchmark},
		"city":      {addr.City},
		"state":     {addr.State},
	}

	if street := formatStreet(addr); street != "" {
		params.Set("street", street)
	}

	return params, nil
}

// formatStreet reassembles the street query value, omitting absent pieces.
func formatStreet(addr *usaddr.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{addr.Number, addr.Street, addr.Type, addr.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
