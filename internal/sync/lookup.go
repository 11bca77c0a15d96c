package sync

import (
	"time"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

// dayKey normalizes a record's date attribute to YYYY-MM-DD. The feeds
// have not been consistent about representation over time: some fields
// arrive as bare dates, some as full RFC3339 timestamps. Comparing raw
// strings would silently miss matches, so everything funnels through
// here before equality checks.
func dayKey(s string) string {
	if t, err := time.Parse(dateFormat, s); err == nil {
		return t.Format(dateFormat)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dateFormat)
	}
	return s
}

// SummariesOn returns every daily summary whose day equals target.
// More than one match is a feed anomaly the caller has to deal with.
func SummariesOn(records []internal.DailySummary, target time.Time) []internal.DailySummary {
	key := target.Format(dateFormat)
	var out []internal.DailySummary
	for _, r := range records {
		if dayKey(r.Day) == key {
			out = append(out, r)
		}
	}
	return out
}

// SessionsOn returns every sleep session that started on target. Multiple
// matches are normal: a main sleep plus any naps.
func SessionsOn(records []internal.SleepSession, target time.Time) []internal.SleepSession {
	key := target.Format(dateFormat)
	var out []internal.SleepSession
	for _, r := range records {
		if dayKey(r.Day) == key {
			out = append(out, r)
		}
	}
	return out
}
