package sync

import (
	"github.com/sam-roberts/oura-data-visualiser/internal"
)

// CombineSessions reduces one day's sessions to a single totals record.
//
// With includeNaps the four durations are summed across every session, so
// the result is total time asleep that day. Without it, the first
// long_sleep session is taken verbatim and naps are ignored; if the day
// has no long_sleep session the totals stay zero. The two policies give
// genuinely different output, which is why includeNaps is configuration
// and not a constant.
func CombineSessions(sessions []internal.SleepSession, includeNaps bool) internal.SessionTotals {
	var totals internal.SessionTotals
	for _, s := range sessions {
		if includeNaps {
			totals.TotalSleepDuration += s.TotalSleepDuration
			totals.RemSleepDuration += s.RemSleepDuration
			totals.TimeInBed += s.TimeInBed
			totals.DeepSleepDuration += s.DeepSleepDuration
			continue
		}
		if s.Type == internal.SessionTypeLongSleep {
			totals.TotalSleepDuration = s.TotalSleepDuration
			totals.RemSleepDuration = s.RemSleepDuration
			totals.TimeInBed = s.TimeInBed
			totals.DeepSleepDuration = s.DeepSleepDuration
			return totals
		}
	}
	return totals
}
