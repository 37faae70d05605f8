package geocode

import "time"

// pacer enforces a minimum wall-clock interval between outbound requests.
// The last-request timestamp belongs to one Client instance and is read and
// written without synchronization; concurrent Geocode calls on the same
// instance require external locking.
type pacer struct {
	interval time.Duration
	last     time.Time
}

// wait blocks until at least interval has elapsed since the last stamped
// request. A zero interval (the default) or no prior request returns
// immediately. The sleep is a plain blocking wait on the calling goroutine.
func (p *pacer) wait() {
	if p.interval <= 0 || p.last.IsZero() {
		return
	}
	if remaining := p.interval - time.Since(p.last); remaining > 0 {
		time.Sleep(remaining)
	}
}

// stamp records the time of an attempted request. It runs after every HTTP
// call whether or not the call succeeded, and never on a cache hit, so a
// failed call still consumes rate budget.
func (p *pacer) stamp() {
	p.last = time.Now()
}
