package services

import (
	"sort"
	"time"

	"fleetdash-backend/models"
)

// calendarCells is the fixed grid size: 6 rows of 7 days, so the month view
// keeps a constant height regardless of how the month lands on the week.
const calendarCells = 42

// BuildMonthGrid produces the 6x7 calendar grid for the given month. The
// grid starts on the Sunday on or before the 1st, covers days 1..N of the
// target month, and pads forward into the next month until all 42 cells are
// filled. Items are bucketed onto the cell matching their due date's
// calendar day, time-of-day ignored. Output is deterministic for a fixed
// (year, month, items, now): items within a cell are ordered by due date,
// then id.
func BuildMonthGrid(year int, month time.Month, items []models.MaintenanceItem, now time.Time) []models.DaySchedule {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) // 0 = Sunday
	start := first.AddDate(0, 0, -lead)

	buckets := bucketByDay(items)

	grid := make([]models.DaySchedule, 0, calendarCells)
	for i := 0; i < calendarCells; i++ {
		day := start.AddDate(0, 0, i)

		cellItems := buckets[dayKey(day)]
		if cellItems == nil {
			cellItems = []models.MaintenanceItem{}
		}

		grid = append(grid, models.DaySchedule{
			Date:           day,
			Items:          cellItems,
			IsToday:        sameDay(day, now),
			IsCurrentMonth: day.Year() == year && day.Month() == month,
		})
	}

	return grid
}

// bucketByDay groups items by the calendar day of their due date, each
// bucket sorted by due date then id
func bucketByDay(items []models.MaintenanceItem) map[string][]models.MaintenanceItem {
	buckets := make(map[string][]models.MaintenanceItem)
	for _, item := range items {
		key := dayKey(item.DueDate)
		buckets[key] = append(buckets[key], item)
	}

	for _, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool {
			if !bucket[i].DueDate.Equal(bucket[j].DueDate) {
				return bucket[i].DueDate.Before(bucket[j].DueDate)
			}
			return bucket[i].ID < bucket[j].ID
		})
	}

	return buckets
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// sameDay compares two instants on their calendar day only
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
