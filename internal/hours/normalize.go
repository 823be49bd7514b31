package hours

import (
	"math"
	"time"
)

// clockLayout renders instants back to the 12-hour clock for output,
// e.g. "09:00AM".
const clockLayout = "03:04PM"

// Window is a single open/close pair of naive local instants. Close is never
// before Open once the midnight rollover has been applied by the extractor.
type Window struct {
	Open  time.Time
	Close time.Time
}

// Normalized is the output form of a window: formatted clock strings and the
// elapsed open minutes.
type Normalized struct {
	OpenTime    string
	CloseTime   string
	MinutesOpen int
}

// Normalize computes the wall-clock minutes between open and close, rounded
// to the nearest minute, and formats both instants on the 12-hour clock.
func Normalize(w Window) Normalized {
	minutes := int(math.Round(w.Close.Sub(w.Open).Seconds() / 60))
	return Normalized{
		OpenTime:    w.Open.Format(clockLayout),
		CloseTime:   w.Close.Format(clockLayout),
		MinutesOpen: minutes,
	}
}
