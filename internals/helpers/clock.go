package helper

import "time"

// Clock abstracts "now" so month-sensitive paths (current-month report
// refresh, first-of-month export) stay testable.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
