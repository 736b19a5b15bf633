package clock

import "time"

// Clock abstracts "now" so the reconciler never reads the system clock
// directly and tests can pin an instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a Clock pinned to UTC so day buckets do not drift
// across server instances in different timezones.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	Instant time.Time
}

func NewFixed(t time.Time) Fixed {
	return Fixed{Instant: t}
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
