package model_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
)

func entry(day string, action types.ActionType, approved bool) *model.Entry {
	return &model.Entry{
		ID:       model.NewEntryID(),
		Date:     types.Day(day),
		Action:   action,
		Approved: approved,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty input yields empty non-nil result", func(t *testing.T) {
		days := model.Summarize(nil)
		gt.Bool(t, days != nil).True()
		gt.A(t, days).Length(0)
	})

	t.Run("counts duplicates of the same day and action", func(t *testing.T) {
		days := model.Summarize([]*model.Entry{
			entry("2024-03-10", types.ActionTypeBinOut, false),
			entry("2024-03-10", types.ActionTypeBinOut, false),
			entry("2024-03-10", types.ActionTypeBinOut, false),
		})

		gt.A(t, days).Length(1).Required()
		gt.Value(t, days[0]).Equal(model.DaySummary{
			Date: "2024-03-10",
			Actions: []model.ActionBucket{
				{Type: types.ActionTypeBinOut, Count: 3, Approved: false},
			},
		})
	})

	t.Run("approval is the AND of all entries in a bucket", func(t *testing.T) {
		days := model.Summarize([]*model.Entry{
			entry("2024-03-10", types.ActionTypeNewBag, true),
			entry("2024-03-10", types.ActionTypeNewBag, false),
			entry("2024-03-10", types.ActionTypeTrashToCurb, true),
			entry("2024-03-10", types.ActionTypeTrashToCurb, true),
		})

		gt.A(t, days).Length(1).Required()
		gt.A(t, days[0].Actions).Length(2).Required()
		gt.Value(t, days[0].Actions[0]).Equal(model.ActionBucket{Type: types.ActionTypeNewBag, Count: 2, Approved: false})
		gt.Value(t, days[0].Actions[1]).Equal(model.ActionBucket{Type: types.ActionTypeTrashToCurb, Count: 2, Approved: true})
	})

	t.Run("same day only when date strings are equal", func(t *testing.T) {
		days := model.Summarize([]*model.Entry{
			entry("2024-03-10", types.ActionTypeBinOut, false),
			entry("2024-03-11", types.ActionTypeBinOut, false),
		})
		gt.A(t, days).Length(2)
	})

	t.Run("keeps first-seen order", func(t *testing.T) {
		days := model.Summarize([]*model.Entry{
			entry("2024-03-09", types.ActionTypeRecycleFromCurb, false),
			entry("2024-03-12", types.ActionTypeBinOut, false),
			entry("2024-03-09", types.ActionTypeBinOut, false),
		})

		gt.A(t, days).Length(2).Required()
		gt.Value(t, days[0].Date).Equal(types.Day("2024-03-09"))
		gt.Value(t, days[1].Date).Equal(types.Day("2024-03-12"))
		gt.Value(t, days[0].Actions[0].Type).Equal(types.ActionTypeRecycleFromCurb)
		gt.Value(t, days[0].Actions[1].Type).Equal(types.ActionTypeBinOut)
	})

	t.Run("counts do not depend on input order", func(t *testing.T) {
		entries := []*model.Entry{
			entry("2024-03-10", types.ActionTypeBinOut, true),
			entry("2024-03-10", types.ActionTypeBinOut, false),
			entry("2024-03-10", types.ActionTypeNewBag, true),
			entry("2024-03-11", types.ActionTypeRecycleToCurb, true),
			entry("2024-03-11", types.ActionTypeRecycleToCurb, true),
			entry("2024-02-28", types.ActionTypeTrashFromCurb, false),
		}
		want := model.Summarize(entries)
		model.SortDaySummaries(want)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 20; i++ {
			shuffled := make([]*model.Entry, len(entries))
			copy(shuffled, entries)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			got := model.Summarize(shuffled)
			model.SortDaySummaries(got)
			gt.Value(t, got).Equal(want)
		}
	})
}

func TestSortDaySummaries(t *testing.T) {
	days := []model.DaySummary{
		{Date: "2024-03-09", Actions: []model.ActionBucket{
			{Type: types.ActionTypeRecycleFromCurb, Count: 1},
			{Type: types.ActionTypeBinOut, Count: 1},
		}},
		{Date: "2024-03-12", Actions: []model.ActionBucket{}},
		{Date: "2023-12-31", Actions: []model.ActionBucket{}},
	}

	model.SortDaySummaries(days)

	gt.Value(t, days[0].Date).Equal(types.Day("2024-03-12"))
	gt.Value(t, days[1].Date).Equal(types.Day("2024-03-09"))
	gt.Value(t, days[2].Date).Equal(types.Day("2023-12-31"))
	gt.Value(t, days[1].Actions[0].Type).Equal(types.ActionTypeBinOut)
	gt.Value(t, days[1].Actions[1].Type).Equal(types.ActionTypeRecycleFromCurb)
}

func TestStartOfWeek(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "wednesday goes back to sunday",
			now:  time.Date(2024, 3, 13, 15, 4, 5, 0, loc),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday is its own start",
			now:  time.Date(2024, 3, 10, 8, 0, 0, 0, loc),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "saturday crosses into previous month",
			now:  time.Date(2024, 3, 2, 23, 59, 0, 0, loc),
			want: time.Date(2024, 2, 25, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, model.StartOfWeek(tt.now, loc).Equal(tt.want)).Equal(true)
		})
	}
}

func TestStartOfWeek_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// Saturday 20:00 UTC is already Sunday in Tokyo
	now := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)

	got := model.StartOfWeek(now, tokyo)
	gt.Value(t, got.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, tokyo))).Equal(true)

	gotMonth := model.StartOfMonth(now, tokyo)
	gt.Value(t, gotMonth.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, tokyo))).Equal(true)
}

func TestWeekDays(t *testing.T) {
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
	gt.Value(t, model.WeekDays(now, time.UTC)).Equal([]types.Day{
		"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13",
		"2024-03-14", "2024-03-15", "2024-03-16",
	})
}

func TestRollup(t *testing.T) {
	loc := time.UTC
	day := func(y int, m time.Month, d, count int) *model.DailyCounter {
		return &model.DailyCounter{
			ID:    model.NewCounterID(),
			Date:  time.Date(y, m, d, 0, 0, 0, 0, loc),
			Count: count,
		}
	}

	t.Run("week and month sums", func(t *testing.T) {
		// Wednesday; the week starts on Sunday 2024-03-10
		now := time.Date(2024, 3, 13, 12, 0, 0, 0, loc)
		counters := []*model.DailyCounter{
			day(2024, 3, 10, 2), // week + month
			day(2024, 3, 13, 1), // week + month
			day(2024, 3, 13, 2), // same day, summed
			day(2024, 3, 5, 3),  // month only
			day(2024, 2, 29, 4), // last month, excluded from both
			day(2024, 3, 20, 1), // future, still counted
		}

		got := model.Rollup(counters, now, loc)

		gt.Value(t, got.WeeklyTotal).Equal(6)
		gt.Value(t, got.MonthlyTotal).Equal(9)
		gt.Value(t, got.DailyTotals).Equal(map[string]int{
			"2024-03-10": 2,
			"2024-03-13": 3,
			"2024-03-05": 3,
			"2024-02-29": 4,
			"2024-03-20": 1,
		})
	})

	t.Run("week spanning a month boundary", func(t *testing.T) {
		// Tuesday 2024-10-01; the week started on Sunday 2024-09-29
		now := time.Date(2024, 10, 1, 9, 0, 0, 0, loc)
		counters := []*model.DailyCounter{
			day(2024, 9, 28, 5), // before the week
			day(2024, 9, 29, 1), // week only
			day(2024, 9, 30, 2), // week only
			day(2024, 10, 1, 3), // week + month
		}

		got := model.Rollup(counters, now, loc)
		gt.Value(t, got.WeeklyTotal).Equal(6)
		gt.Value(t, got.MonthlyTotal).Equal(3)
	})

	t.Run("empty input", func(t *testing.T) {
		got := model.Rollup(nil, time.Now(), loc)
		gt.Value(t, got.WeeklyTotal).Equal(0)
		gt.Value(t, got.MonthlyTotal).Equal(0)
		gt.Number(t, len(got.DailyTotals)).Equal(0)
	})
}
