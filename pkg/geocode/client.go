// Package geocode converts free-form U.S. postal address strings into
// geographic coordinates by querying the Census Bureau geocoding endpoint.
// The pipeline between the caller's raw string and the decoded JSON result
// is normalize, tokenize, cache lookup, rate-limit wait, HTTP GET, decode,
// cache store.
package geocode

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/census-geocode/pkg/cache"
	"github.com/sells-group/census-geocode/pkg/usaddr"
)

const (
	// DefaultHost is the Census locations endpoint queried by default,
	// overridable at construction with WithHost.
	DefaultHost = "https://geocoding.geo.census.gov/geocoder/locations/address"

	defaultUserAgent = "census-geocode/1.0 (+https://github.com/sells-group/census-geocode)"
	defaultTimeout   = 30 * time.Second

	// cacheKeyPrefix namespaces our keys so a shared backing store does not
	// collide with unrelated cache usage.
	cacheKeyPrefix = "geocode:"
)

// Doer issues a single HTTP request. *http.Client satisfies it; tests and
// alternate HTTP stacks supply their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is the decoded geocoder response, passed through verbatim without
// interpretation. The nominal shape is
// {"result": {"addressMatches": [{"coordinates": {"x": lon, "y": lat}}]}}.
type Result map[string]any

// AddressMatches returns the result.addressMatches array, or nil when the
// response carries none.
func (r Result) AddressMatches() []any {
	inner, ok := r["result"].(map[string]any)
	if !ok {
		return nil
	}
	matches, _ := inner["addressMatches"].([]any)
	return matches
}

// Input identifies the location to geocode: either a bare Location string or
// a Record with a location field. The variant is resolved once at the entry
// point; nil inputs and empty locations fail with ErrInvalidUsage.
type Input interface {
	location() (string, error)
}

// Location is a bare location string input.
type Location string

func (l Location) location() (string, error) {
	if strings.TrimSpace(string(l)) == "" {
		return "", eris.Wrap(ErrInvalidUsage, "empty location")
	}
	return string(l), nil
}

// Record is a structured input carrying a location field.
type Record struct {
	Location string `json:"location"`
}

func (r Record) location() (string, error) {
	return Location(r.Location).location()
}

// Client geocodes addresses against a single remote endpoint. A Client owns
// its HTTP client, cache handle, and rate state for its lifetime. Geocode is
// synchronous and not safe for concurrent use on one instance; run one
// Client per goroutine or synchronize externally.
type Client struct {
	httpClient Doer
	host       string
	userAgent  string
	cache      cache.Cache
	cacheTTL   time.Duration
	pace       pacer
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHost overrides the geocoding endpoint URL.
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithHTTPClient injects the HTTP client used for outbound requests.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.httpClient = d }
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithCache injects the cache backend holding previously decoded results.
func WithCache(store cache.Cache) Option {
	return func(c *Client) { c.cache = store }
}

// WithCacheTTL sets the lifetime of stored results.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cacheTTL = ttl }
}

// WithMinInterval sets the minimum wall-clock interval between outbound
// requests. Zero, the default, never blocks.
func WithMinInterval(d time.Duration) Option {
	return func(c *Client) { c.pace.interval = d }
}

// New creates a Client. Defaults: the Census locations endpoint, a 30s
// timeout HTTP client with proxy-from-environment support, an in-memory
// cache with a one-day TTL, and no rate limiting.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		host:       DefaultHost,
		userAgent:  defaultUserAgent,
		cache:      cache.NewMemory(cache.DefaultTTL),
		cacheTTL:   cache.DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetHTTPClient replaces the HTTP client. This is the only collaborator a
// Client replaces after construction.
func (c *Client) SetHTTPClient(d Doer) {
	c.httpClient = d
}

// Geocode resolves a location to a decoded geocoder response. A nil result
// with a nil error means no result: the address lacked a resolvable
// city/state or the remote call failed, both reported at warn level. Only
// malformed inputs surface as errors.
func (c *Client) Geocode(ctx context.Context, in Input) (Result, error) {
	if in == nil {
		return nil, eris.Wrap(ErrInvalidUsage, "nil input")
	}
	loc, err := in.location()
	if err != nil {
		return nil, err
	}

	normalized := Normalize(loc)

	addr, parseErr := usaddr.Parse(normalized)
	if parseErr != nil || addr.City == "" || addr.State == "" {
		zap.L().Warn("geocode: address lacks required city/state",
			zap.String("location", normalized),
		)
		return nil, nil
	}

	params, err := buildQuery(addr)
	if err != nil {
		zap.L().Warn("geocode: build query",
			zap.String("location", normalized),
			zap.Error(err),
		)
		return nil, nil
	}
	reqURL := c.host + "?" + params.Encode()

	// The key derives from the normalized string, not the raw input, so
	// distinct raw spellings of one address share an entry.
	key := cacheKey(normalized)
	if result, ok := c.checkCache(ctx, key); ok {
		return result, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.pace.wait()
	resp, err := c.httpClient.Do(req)
	c.pace.stamp()
	if err != nil {
		zap.L().Warn("geocode: request failed",
			zap.String("url", reqURL),
			zap.Error(err),
		)
		return nil, nil
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zap.L().Warn("geocode: remote error",
			zap.String("url", reqURL),
			zap.String("status", resp.Status),
		)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.L().Warn("geocode: read response",
			zap.String("url", reqURL),
			zap.Error(err),
		)
		return nil, nil
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		zap.L().Warn("geocode: decode response",
			zap.String("url", reqURL),
			zap.Error(err),
		)
		return nil, nil
	}

	// Cached iff a successful response was decoded; the raw body is stored
	// so a hit replays the identical payload.
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		zap.L().Debug("geocode: cache store failed", zap.Error(err))
	}

	return result, nil
}

// ReverseGeocode always fails: converting coordinates back to an address is
// not supported by this client.
func (c *Client) ReverseGeocode(_ context.Context, lat, lng float64) (Result, error) {
	return nil, eris.Wrapf(ErrUnsupported, "reverse geocode (%v, %v)", lat, lng)
}

// checkCache returns a previously decoded result. Cache hits never touch
// the rate limiter.
func (c *Client) checkCache(ctx context.Context, key string) (Result, bool) {
	payload, err := c.cache.Get(ctx, key)
	if err != nil {
		if !eris.Is(err, cache.ErrNotFound) {
			zap.L().Debug("geocode: cache lookup failed", zap.Error(err))
		}
		return nil, false
	}

	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		zap.L().Debug("geocode: cached payload undecodable", zap.Error(err))
		return nil, false
	}

	zap.L().Debug("geocode: cache hit", zap.String("key", shortKey(key)))
	return result, true
}

// cacheKey returns the namespaced SHA-256 hex of the normalized location.
func cacheKey(normalized string) string {
	h := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + fmt.Sprintf("%x", h)
}

func shortKey(key string) string {
	if len(key) > 20 {
		return key[:20]
	}
	return key
}
