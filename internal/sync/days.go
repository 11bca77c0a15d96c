package sync

import (
	"fmt"
	"time"
)

const dateFormat = "2006-01-02"

// DateRange is an inclusive span of calendar days, no time component.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseRange builds a DateRange from two YYYY-MM-DD strings.
func ParseRange(start, end string) (DateRange, error) {
	s, err := time.Parse(dateFormat, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date %q: %w", start, err)
	}
	e, err := time.Parse(dateFormat, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date %q: %w", end, err)
	}
	return DateRange{Start: s, End: e}, nil
}

// Days returns one date per calendar day from Start to End inclusive.
// An inverted range yields nil, not an error: the sync loop simply runs
// zero times. This sequence alone decides how many rows a run produces;
// feed contents only fill rows in, they never add or remove them.
func (r DateRange) Days() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}
	n := int(r.End.Sub(r.Start).Hours()/24) + 1
	days := make([]time.Time, 0, n)
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
