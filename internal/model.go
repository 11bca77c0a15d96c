package internal

// SessionTypeLongSleep marks the primary sleep period of a day. Anything
// else (naps, rest periods) only counts when include_naps is on.
const SessionTypeLongSleep = "long_sleep"

// Contributors are the named sub-metrics behind a daily sleep score.
type Contributors struct {
	DeepSleep  int `json:"deep_sleep" validate:"gte=0"`
	Efficiency int `json:"efficiency" validate:"gte=0"`
	Latency    int `json:"latency" validate:"gte=0"`
	RemSleep   int `json:"rem_sleep" validate:"gte=0"`
	Restful    int `json:"restfulness" validate:"gte=0"`
	Timing     int `json:"timing" validate:"gte=0"`
	TotalSleep int `json:"total_sleep" validate:"gte=0"`
}

// DailySummary is one record from the daily sleep feed: at most one per
// calendar day, carrying the overall score and its contributors.
type DailySummary struct {
	Day          string       `json:"day" validate:"required"`
	Score        int          `json:"score"`
	Contributors Contributors `json:"contributors"`
}

// SleepSession is one record from the per-session feed. A day can have
// zero, one, or several (main sleep plus naps). Durations are seconds.
type SleepSession struct {
	Day                string `json:"day" validate:"required"`
	Type               string `json:"type" validate:"required"`
	TotalSleepDuration int    `json:"total_sleep_duration" validate:"gte=0"`
	RemSleepDuration   int    `json:"rem_sleep_duration" validate:"gte=0"`
	TimeInBed          int    `json:"time_in_bed" validate:"gte=0"`
	DeepSleepDuration  int    `json:"deep_sleep_duration" validate:"gte=0"`
}

// SessionTotals is the per-day reduction of SleepSessions. The zero value
// is the placeholder for days with no usable session data.
type SessionTotals struct {
	TotalSleepDuration int
	RemSleepDuration   int
	TimeInBed          int
	DeepSleepDuration  int
}

// SleepRow is the canonical persisted record for one calendar day: the
// date key plus 13 value columns. Built once during reconciliation and
// never mutated afterwards.
type SleepRow struct {
	Date               string `json:"date"`
	Score              int    `json:"score"`
	DeepSleep          int    `json:"deep_sleep"`
	Efficiency         int    `json:"efficiency"`
	Latency            int    `json:"latency"`
	RemSleep           int    `json:"rem_sleep"`
	Restfulness        int    `json:"restfulness"`
	Timing             int    `json:"timing"`
	TotalSleep         int    `json:"total_sleep"`
	TotalSleepDuration int    `json:"total_sleep_duration"`
	RemSleepDuration   int    `json:"rem_sleep_duration"`
	TimeInBed          int    `json:"time_in_bed"`
	DeepSleepDuration  int    `json:"deep_sleep_duration"`
}

// RowClass says whether a reconciled row carries real feed data or is a
// zero-valued placeholder for a day with no data.
type RowClass int

const (
	RowComplete RowClass = iota
	RowDefaulted
)
