package sync

import (
	"time"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

// Reconciler turns the two feeds into exactly one canonical row per day.
type Reconciler struct {
	IncludeNaps bool
	Logger      internal.Logger
}

// RowFor builds the canonical row for one calendar day from the full feed
// results. A day with no summary record gets a zero-valued placeholder
// row (classified RowDefaulted) rather than being skipped: missing data
// is expected — the device just wasn't worn — and must still occupy its
// slot in the table.
func (r *Reconciler) RowFor(day time.Time, summaries []internal.DailySummary, sessions []internal.SleepSession) (internal.SleepRow, internal.RowClass) {
	key := day.Format(dateFormat)

	daySummaries := SummariesOn(summaries, day)
	daySessions := SessionsOn(sessions, day)
	if len(daySessions) > 1 {
		r.Logger.Debugf("%s had %d sleep sessions", key, len(daySessions))
	}
	totals := CombineSessions(daySessions, r.IncludeNaps)

	if len(daySummaries) == 0 {
		return internal.SleepRow{Date: key}, internal.RowDefaulted
	}
	if len(daySummaries) > 1 {
		// One summary per day is the feed's contract; keep the first but
		// make the anomaly visible instead of dropping it silently.
		r.Logger.Warnf("%s had %d summary records, using the first", key, len(daySummaries))
	}

	s := daySummaries[0]
	return internal.SleepRow{
		Date:               key,
		Score:              s.Score,
		DeepSleep:          s.Contributors.DeepSleep,
		Efficiency:         s.Contributors.Efficiency,
		Latency:            s.Contributors.Latency,
		RemSleep:           s.Contributors.RemSleep,
		Restfulness:        s.Contributors.Restful,
		Timing:             s.Contributors.Timing,
		TotalSleep:         s.Contributors.TotalSleep,
		TotalSleepDuration: totals.TotalSleepDuration,
		RemSleepDuration:   totals.RemSleepDuration,
		TimeInBed:          totals.TimeInBed,
		DeepSleepDuration:  totals.DeepSleepDuration,
	}, internal.RowComplete
}
