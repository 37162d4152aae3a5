package services

import (
	"fmt"
	"strings"
	"time"

	"fleetdash-backend/models"

	"github.com/shopspring/decimal"
)

// frequencyNames are the cadence labels used when the interval is 1
var frequencyNames = map[models.Frequency]string{
	models.FrequencyDaily:     "Daily",
	models.FrequencyWeekly:    "Weekly",
	models.FrequencyMonthly:   "Monthly",
	models.FrequencyQuarterly: "Quarterly",
	models.FrequencyYearly:    "Yearly",
}

// frequencyUnits are the singular unit names used when the interval is
// greater than 1. Daily is listed explicitly: "daily" has no "ly" suffix to
// strip, so a naive suffix rule would mangle it.
var frequencyUnits = map[models.Frequency]string{
	models.FrequencyDaily:     "day",
	models.FrequencyWeekly:    "week",
	models.FrequencyMonthly:   "month",
	models.FrequencyQuarterly: "quarter",
	models.FrequencyYearly:    "year",
}

// DescribeFrequency renders the human-readable cadence of a schedule:
// "Daily", "Every 2 weeks", "Every 5,000 km".
func DescribeFrequency(schedule models.RecurringSchedule) string {
	if schedule.Frequency == models.FrequencyMileageBased {
		return fmt.Sprintf("Every %s km", groupThousands(schedule.FrequencyValue))
	}

	if schedule.FrequencyValue == 1 {
		if name, ok := frequencyNames[schedule.Frequency]; ok {
			return name
		}
		return string(schedule.Frequency)
	}

	unit, ok := frequencyUnits[schedule.Frequency]
	if !ok {
		unit = string(schedule.Frequency)
	}
	return fmt.Sprintf("Every %d %ss", schedule.FrequencyValue, unit)
}

// NextOccurrence projects when the schedule fires next: the last execution
// (or from, when it has never run) advanced by the frequency interval.
// Month, quarter and year arithmetic clamps month-end overflow, so Jan 31
// plus one month lands on the last day of February. Mileage-based cadences
// return ok=false: without an odometer feed there is no calendar projection,
// and fabricating one would be worse than admitting unknown.
func NextOccurrence(schedule models.RecurringSchedule, from time.Time) (time.Time, bool) {
	if schedule.FrequencyValue <= 0 {
		return time.Time{}, false
	}

	base := from
	if schedule.LastExecuted != nil {
		base = *schedule.LastExecuted
	}

	switch schedule.Frequency {
	case models.FrequencyDaily:
		return base.AddDate(0, 0, schedule.FrequencyValue), true
	case models.FrequencyWeekly:
		return base.AddDate(0, 0, 7*schedule.FrequencyValue), true
	case models.FrequencyMonthly:
		return addMonthsClamped(base, schedule.FrequencyValue), true
	case models.FrequencyQuarterly:
		return addMonthsClamped(base, 3*schedule.FrequencyValue), true
	case models.FrequencyYearly:
		return addMonthsClamped(base, 12*schedule.FrequencyValue), true
	default:
		return time.Time{}, false
	}
}

// MonthlyCostEstimate approximates the fleet's monthly spend on active
// recurring schedules. Weekly cadences count four times per month, monthly
// once; every other frequency is excluded from the estimate. A narrow
// approximation, but it matches what the dashboard tile promises.
func MonthlyCostEstimate(schedules []models.RecurringSchedule) decimal.Decimal {
	total := decimal.Zero
	for _, s := range schedules {
		if !s.IsActive || s.FrequencyValue <= 0 {
			continue
		}

		var multiplier int64
		switch s.Frequency {
		case models.FrequencyWeekly:
			multiplier = 4
		case models.FrequencyMonthly:
			multiplier = 1
		default:
			continue
		}

		contribution := s.EstimatedCost.
			Mul(decimal.NewFromInt(multiplier)).
			Div(decimal.NewFromInt(int64(s.FrequencyValue)))
		total = total.Add(contribution)
	}
	return total
}

// BuildScheduleView decorates a schedule with its cadence label and
// projected next occurrence
func BuildScheduleView(schedule models.RecurringSchedule, from time.Time) models.ScheduleView {
	view := models.ScheduleView{
		RecurringSchedule: schedule,
		CadenceLabel:      DescribeFrequency(schedule),
	}
	if next, ok := NextOccurrence(schedule, from); ok {
		view.NextOccurrence = &next
	}
	return view
}

// addMonthsClamped advances t by whole calendar months, clamping the day to
// the target month's length instead of letting it roll into the next month.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	anchor := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	last := daysInMonth(anchor.Year(), anchor.Month())
	if d > last {
		d = last
	}

	return time.Date(anchor.Year(), anchor.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// groupThousands formats n with comma digit grouping ("5000" -> "5,000")
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
