// Package stats computes per-habit completion rates over a window of
// habit entries.
package stats

import (
	"math"
	"time"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
)

// Level is a display bucket for a completion rate.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// MonthAll disables month filtering in Aggregate.
const MonthAll time.Month = 0

// YearStart returns the ISO date of January 1 in t's year, the default
// lower bound of the aggregation window.
func YearStart(t time.Time) string {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location()).Format(constants.DateFormat)
}

// Aggregate groups entry records by habit id and computes each habit's
// completion percentage, optionally keeping only entries whose calendar
// month matches month (MonthAll keeps everything). Results preserve the
// order in which each habit is first encountered. Records with dates
// that do not parse as YYYY-MM-DD are skipped.
//
// Grouping is keyed by habit id, not name: two habits that share a name
// stay separate, each carrying the name only for display.
func Aggregate(records []models.EntryRecord, month time.Month) []models.HabitStat {
	type group struct {
		name      string
		total     int
		completed int
	}

	groups := make(map[int64]*group)
	var order []int64

	for _, r := range records {
		day, err := time.Parse(constants.DateFormat, r.Date)
		if err != nil {
			continue
		}
		if month != MonthAll && day.Month() != month {
			continue
		}

		g, ok := groups[r.HabitID]
		if !ok {
			g = &group{name: r.Name}
			groups[r.HabitID] = g
			order = append(order, r.HabitID)
		}
		g.total++
		if r.Completed {
			g.completed++
		}
	}

	stats := make([]models.HabitStat, 0, len(order))
	for _, id := range order {
		g := groups[id]
		stats = append(stats, models.HabitStat{
			HabitID: id,
			Name:    g.name,
			Rate:    rate(g.completed, g.total),
		})
	}

	return stats
}

func rate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// Bucket classifies a completion rate: above 80 is high, 50 through 80
// is medium, below 50 is low.
func Bucket(rate int) Level {
	switch {
	case rate > constants.BucketHighMin:
		return LevelHigh
	case rate >= constants.BucketMediumMin:
		return LevelMedium
	default:
		return LevelLow
	}
}
