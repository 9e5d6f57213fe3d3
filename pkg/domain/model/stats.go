package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/curbside/pkg/domain/types"
)

// MonthSummary groups day summaries of one YYYY-MM month
type MonthSummary struct {
	Month string       `json:"month"`
	Days  []DaySummary `json:"days"`
}

// DashboardStats is the overview shown above the action history
type DashboardStats struct {
	Total        int                      `json:"total"`
	Approved     int                      `json:"approved"`
	Pending      int                      `json:"pending"`
	ByAction     map[types.ActionType]int `json:"byAction"`
	WeeklyTotal  int                      `json:"weeklyTotal"`
	MonthlyTotal int                      `json:"monthlyTotal"`
	Week         []types.Day              `json:"week"`
	Months       []MonthSummary           `json:"months"`
}

// ComputeStats derives dashboard statistics from day summaries. Occurrences
// count as approved only when their whole bucket is approved. Weekly and
// monthly totals include every day on or after the start of the current
// week/month in loc.
func ComputeStats(days []DaySummary, now time.Time, loc *time.Location) DashboardStats {
	weekStart := types.DayOf(StartOfWeek(now, loc))
	monthStart := types.DayOf(StartOfMonth(now, loc))

	stats := DashboardStats{
		ByAction: make(map[types.ActionType]int),
		Week:     WeekDays(now, loc),
		Months:   []MonthSummary{},
	}
	for _, a := range types.AllActionTypes() {
		stats.ByAction[a] = 0
	}

	monthIndex := make(map[string]int)
	for _, day := range days {
		for _, bucket := range day.Actions {
			stats.Total += bucket.Count
			if bucket.Approved {
				stats.Approved += bucket.Count
			}
			stats.ByAction[bucket.Type] += bucket.Count

			// YYYY-MM-DD strings order the same way as the days they name
			if day.Date >= weekStart {
				stats.WeeklyTotal += bucket.Count
			}
			if day.Date >= monthStart {
				stats.MonthlyTotal += bucket.Count
			}
		}

		month := day.Date.Month()
		mi, ok := monthIndex[month]
		if !ok {
			mi = len(stats.Months)
			monthIndex[month] = mi
			stats.Months = append(stats.Months, MonthSummary{Month: month})
		}
		stats.Months[mi].Days = append(stats.Months[mi].Days, day)
	}

	stats.Pending = max(stats.Total-stats.Approved, 0)

	sort.Slice(stats.Months, func(i, j int) bool {
		return stats.Months[i].Month > stats.Months[j].Month
	})

	return stats
}
