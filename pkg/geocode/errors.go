package geocode

import "github.com/rotisserie/eris"

// Hard-failure sentinels. Address-quality and remote-service conditions are
// soft by contract: they are logged at warn level and Geocode returns no
// result, so a caller can loop over many candidate addresses without one bad
// address aborting the batch.
var (
	// ErrInvalidUsage signals a malformed call: nil input or empty location.
	ErrInvalidUsage = eris.New("geocode: location is required")

	// ErrMissingField signals an address lacking the city or state the
	// remote API requires.
	ErrMissingField = eris.New("geocode: address lacks city/state")

	// ErrUnsupported signals an operation this client does not implement.
	ErrUnsupported = eris.New("geocode: reverse geocoding is not supported")
)
