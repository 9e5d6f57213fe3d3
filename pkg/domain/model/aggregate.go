package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/curbside/pkg/domain/types"
)

// ActionBucket aggregates all entries of one action type on one day
type ActionBucket struct {
	Type     types.ActionType `json:"type"`
	Count    int              `json:"count"`
	Approved bool             `json:"approved"`
}

// DaySummary aggregates all entries sharing a date
type DaySummary struct {
	Date    types.Day      `json:"date"`
	Actions []ActionBucket `json:"actions"`
}

// Summarize groups entries by date, then by action type. A bucket's count is
// the number of entries in it and it is approved only if every entry is.
// Days and buckets keep first-seen order; use SortDaySummaries for display.
func Summarize(entries []*Entry) []DaySummary {
	days := make([]DaySummary, 0)
	dayIndex := make(map[types.Day]int)

	for _, e := range entries {
		di, ok := dayIndex[e.Date]
		if !ok {
			di = len(days)
			dayIndex[e.Date] = di
			days = append(days, DaySummary{Date: e.Date, Actions: []ActionBucket{}})
		}

		day := &days[di]
		found := false
		for i := range day.Actions {
			if day.Actions[i].Type == e.Action {
				day.Actions[i].Count++
				day.Actions[i].Approved = day.Actions[i].Approved && e.Approved
				found = true
				break
			}
		}
		if !found {
			day.Actions = append(day.Actions, ActionBucket{
				Type:     e.Action,
				Count:    1,
				Approved: e.Approved,
			})
		}
	}

	return days
}

// SortDaySummaries orders days by date descending and the buckets of each
// day by the canonical action order. It sorts in place.
func SortDaySummaries(days []DaySummary) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	for _, d := range days {
		sort.Slice(d.Actions, func(i, j int) bool {
			return d.Actions[i].Type.Order() < d.Actions[j].Type.Order()
		})
	}
}

// StartOfWeek returns the most recent Sunday at midnight in loc, which is
// today when now is a Sunday.
func StartOfWeek(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()-int(local.Weekday()), 0, 0, 0, 0, loc)
}

// StartOfMonth returns the first day of now's month at midnight in loc
func StartOfMonth(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}

// WeekDays returns the seven days of now's week, Sunday first
func WeekDays(now time.Time, loc *time.Location) []types.Day {
	start := StartOfWeek(now, loc)
	days := make([]types.Day, 7)
	for i := range days {
		days[i] = types.DayOf(start.AddDate(0, 0, i))
	}
	return days
}

// RollupResult is the legacy week/month summary of daily counters
type RollupResult struct {
	DailyTotals  map[string]int `json:"daily"`
	WeeklyTotal  int            `json:"weeklyTotal"`
	MonthlyTotal int            `json:"monthlyTotal"`
}

// Rollup sums counters per day (keyed by YYYY-MM-DD in loc) and into the
// current week and month. Lower bounds are inclusive and there is no upper
// bound, so counters dated in the future are counted too.
func Rollup(counters []*DailyCounter, now time.Time, loc *time.Location) RollupResult {
	startOfWeek := StartOfWeek(now, loc)
	startOfMonth := StartOfMonth(now, loc)

	result := RollupResult{
		DailyTotals: make(map[string]int),
	}

	for _, c := range counters {
		key := c.Date.In(loc).Format(types.DayLayout)
		result.DailyTotals[key] += c.Count

		if !c.Date.Before(startOfWeek) {
			result.WeeklyTotal += c.Count
		}
		if !c.Date.Before(startOfMonth) {
			result.MonthlyTotal += c.Count
		}
	}

	return result
}
