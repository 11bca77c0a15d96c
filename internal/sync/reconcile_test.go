package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

func testLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func TestRowFor_CompleteRow(t *testing.T) {
	rec := &Reconciler{IncludeNaps: false, Logger: testLogger()}
	summaries := []internal.DailySummary{{
		Day:   "2023-06-01",
		Score: 82,
		Contributors: internal.Contributors{
			DeepSleep: 90, Efficiency: 95, Latency: 70, RemSleep: 88,
			Restful: 60, Timing: 45, TotalSleep: 93,
		},
	}}
	sessions := []internal.SleepSession{{
		Day: "2023-06-01", Type: internal.SessionTypeLongSleep,
		TotalSleepDuration: 27000, RemSleepDuration: 5400, TimeInBed: 30000, DeepSleepDuration: 6000,
	}}

	row, class := rec.RowFor(day(t, "2023-06-01"), summaries, sessions)

	assert.Equal(t, internal.RowComplete, class)
	assert.Equal(t, "2023-06-01", row.Date)
	assert.Equal(t, 82, row.Score)
	assert.Equal(t, 90, row.DeepSleep)
	assert.Equal(t, 93, row.TotalSleep)
	assert.Equal(t, 27000, row.TotalSleepDuration)
	assert.Equal(t, 30000, row.TimeInBed)
}

func TestRowFor_NoDataDefaultsToZeroRow(t *testing.T) {
	rec := &Reconciler{Logger: testLogger()}

	row, class := rec.RowFor(day(t, "2023-06-05"), nil, nil)

	assert.Equal(t, internal.RowDefaulted, class)
	assert.Equal(t, internal.SleepRow{Date: "2023-06-05"}, row)
}

func TestRowFor_SessionsWithoutSummaryStillDefault(t *testing.T) {
	// A session-only day has no score to anchor the row, so it defaults.
	rec := &Reconciler{IncludeNaps: true, Logger: testLogger()}
	sessions := []internal.SleepSession{{Day: "2023-06-05", Type: "sleep", TotalSleepDuration: 600}}

	row, class := rec.RowFor(day(t, "2023-06-05"), nil, sessions)

	assert.Equal(t, internal.RowDefaulted, class)
	assert.Equal(t, 0, row.TotalSleepDuration)
}

func TestRowFor_DuplicateSummariesFirstWins(t *testing.T) {
	rec := &Reconciler{Logger: testLogger()}
	summaries := []internal.DailySummary{
		{Day: "2023-06-01", Score: 70},
		{Day: "2023-06-01", Score: 95},
	}

	row, class := rec.RowFor(day(t, "2023-06-01"), summaries, nil)

	assert.Equal(t, internal.RowComplete, class)
	assert.Equal(t, 70, row.Score)
}

func TestRowFor_NapPolicyChangesDurations(t *testing.T) {
	summaries := []internal.DailySummary{{Day: "2023-06-01", Score: 80}}
	sessions := []internal.SleepSession{
		{Day: "2023-06-01", Type: internal.SessionTypeLongSleep, TotalSleepDuration: 400},
		{Day: "2023-06-01", Type: "sleep", TotalSleepDuration: 20},
	}

	withNaps := &Reconciler{IncludeNaps: true, Logger: testLogger()}
	row, _ := withNaps.RowFor(day(t, "2023-06-01"), summaries, sessions)
	assert.Equal(t, 420, row.TotalSleepDuration)

	withoutNaps := &Reconciler{IncludeNaps: false, Logger: testLogger()}
	row, _ = withoutNaps.RowFor(day(t, "2023-06-01"), summaries, sessions)
	assert.Equal(t, 400, row.TotalSleepDuration)
}
