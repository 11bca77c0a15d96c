package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

const dateFormat = "2006-01-02"

var errBadDate = errors.New("dates must be YYYY-MM-DD")

// rangeParams reads optional ?start= and ?end= query params, defaulting
// to everything synced so far.
func rangeParams(c *gin.Context) (string, string, error) {
	start := c.DefaultQuery("start", "0001-01-01")
	end := c.DefaultQuery("end", "9999-12-31")
	for _, d := range []string{start, end} {
		if _, err := time.Parse(dateFormat, d); err != nil {
			return "", "", errBadDate
		}
	}
	return start, end, nil
}

// GetSleep returns the canonical day rows in a date range, placeholders
// included, oldest first.
func GetSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, err := rangeParams(c)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid date range")
			return
		}

		rows, err := app.Store().ListRange(c.Request.Context(), start, end)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch rows")
			return
		}

		HandleSuccess(c, app.Logger(), rows, map[string]any{"count": len(rows)})
	}
}

// GetSleepAverages returns mean score and sleep duration over the range.
// Zero-score placeholder rows are excluded: they mean "no data", and
// averaging them in would drag every metric toward zero.
func GetSleepAverages(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, err := rangeParams(c)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid date range")
			return
		}

		rows, err := app.Store().ListRange(c.Request.Context(), start, end)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch rows")
			return
		}

		var score, duration, counted int
		for _, r := range rows {
			if r.Score == 0 {
				continue
			}
			score += r.Score
			duration += r.TotalSleepDuration
			counted++
		}
		meta := map[string]any{"days": len(rows), "days_with_data": counted}
		if counted > 0 {
			meta["average_score"] = float64(score) / float64(counted)
			meta["average_sleep_seconds"] = float64(duration) / float64(counted)
		}
		HandleSuccess(c, app.Logger(), nil, meta)
	}
}

// NewRouter wires the read-only visualiser API.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.GET("/api/sleep", GetSleep(app))
	r.GET("/api/sleep/averages", GetSleepAverages(app))
	return r
}
