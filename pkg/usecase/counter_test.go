package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
	"github.com/secmon-lab/curbside/pkg/repository/memory"
	"github.com/secmon-lab/curbside/pkg/usecase"
)

func intPtr(v int) *int {
	return &v
}

func TestCounterAdd(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("JST", 9*60*60)

	t.Run("creates counter at local midnight with default count", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLocation(loc))

		created, err := uc.Counter.Add(ctx, "2024-03-12", nil)
		gt.NoError(t, err).Required()
		gt.Number(t, created.Count).Equal(1)
		gt.Bool(t, created.Date.Equal(time.Date(2024, 3, 12, 0, 0, 0, 0, loc))).True()
	})

	t.Run("increments existing counter of the same day", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLocation(loc))

		first, err := uc.Counter.Add(ctx, "2024-03-12", intPtr(2))
		gt.NoError(t, err).Required()

		updated, err := uc.Counter.Add(ctx, "2024-03-12", intPtr(3))
		gt.NoError(t, err).Required()
		gt.Value(t, updated.ID).Equal(first.ID)
		gt.Number(t, updated.Count).Equal(5)

		counters, err := repo.Counter().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, counters).Length(1)
	})

	t.Run("different days get separate counters", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLocation(loc))

		_, err := uc.Counter.Add(ctx, "2024-03-12", nil)
		gt.NoError(t, err).Required()
		_, err = uc.Counter.Add(ctx, "2024-03-13", nil)
		gt.NoError(t, err).Required()

		counters, err := repo.Counter().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, counters).Length(2)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		_, err := uc.Counter.Add(ctx, "", nil)
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Counter.Add(ctx, "12/03/2024", nil)
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Counter.Add(ctx, "2024-03-12", intPtr(0))
		gt.Error(t, err).Is(usecase.ErrValidation)

		counters, err := repo.Counter().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, counters).Length(0)
	})

	t.Run("rejects increment that would overflow the count", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLocation(loc))

		_, err := uc.Counter.Add(ctx, "2024-03-12", intPtr(1))
		gt.NoError(t, err).Required()

		_, err = uc.Counter.Add(ctx, "2024-03-12", intPtr(math.MaxInt))
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Counter.Add(ctx, "2024-03-12", intPtr(model.MaxCounterCount))
		gt.Error(t, err).Is(usecase.ErrValidation)

		summary, err := uc.Counter.Summary(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, summary.DailyTotals["2024-03-12"]).Equal(1)
	})

	t.Run("fills a counter up to the daily maximum", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLocation(loc))

		_, err := uc.Counter.Add(ctx, "2024-03-12", intPtr(math.MaxInt))
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Counter.Add(ctx, "2024-03-12", intPtr(model.MaxCounterCount-1))
		gt.NoError(t, err).Required()

		updated, err := uc.Counter.Add(ctx, "2024-03-12", nil)
		gt.NoError(t, err).Required()
		gt.Number(t, updated.Count).Equal(model.MaxCounterCount)
	})
}

func TestCounterRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements count above one", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithLocation(time.UTC))

		_, err := uc.Counter.Add(ctx, "2024-03-12", intPtr(2))
		gt.NoError(t, err).Required()

		updated, err := uc.Counter.Remove(ctx, "2024-03-12")
		gt.NoError(t, err).Required()
		gt.Value(t, updated).NotNil().Required()
		gt.Number(t, updated.Count).Equal(1)
	})

	t.Run("deletes counter instead of storing zero", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLocation(time.UTC))

		_, err := uc.Counter.Add(ctx, "2024-03-12", nil)
		gt.NoError(t, err).Required()

		removed, err := uc.Counter.Remove(ctx, "2024-03-12")
		gt.NoError(t, err).Required()
		gt.Value(t, removed).NotNil()

		counters, err := repo.Counter().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, counters).Length(0)
	})

	t.Run("missing counter is a no-op", func(t *testing.T) {
		uc := usecase.New(memory.New())

		removed, err := uc.Counter.Remove(ctx, "2024-03-12")
		gt.NoError(t, err).Required()
		gt.Value(t, removed).Nil()
	})

	t.Run("requires date", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Counter.Remove(ctx, "")
		gt.Error(t, err).Is(usecase.ErrValidation)
	})
}

func TestCounterSummary(t *testing.T) {
	ctx := context.Background()
	// Wednesday
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
	uc := usecase.New(memory.New(),
		usecase.WithLocation(time.UTC),
		usecase.WithClock(fixedClock(now)))

	for _, d := range []types.Day{"2024-03-12", "2024-03-12", "2024-03-05", "2024-02-28"} {
		_, err := uc.Counter.Add(ctx, d, nil)
		gt.NoError(t, err).Required()
	}

	summary, err := uc.Counter.Summary(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, summary.DailyTotals["2024-03-12"]).Equal(2)
	gt.Number(t, summary.DailyTotals["2024-03-05"]).Equal(1)
	gt.Number(t, summary.WeeklyTotal).Equal(2)
	gt.Number(t, summary.MonthlyTotal).Equal(3)
	gt.Array(t, summary.Entries).Length(3)
}
