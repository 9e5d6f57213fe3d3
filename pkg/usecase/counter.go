package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
)

// CounterUseCase serves the legacy single-counter-per-day view
type CounterUseCase struct {
	repo     interfaces.Repository
	clock    func() time.Time
	location *time.Location
}

func NewCounterUseCase(repo interfaces.Repository, clock func() time.Time, loc *time.Location) *CounterUseCase {
	return &CounterUseCase{
		repo:     repo,
		clock:    clock,
		location: loc,
	}
}

// CounterSummary is the rollup of all counters together with the counters themselves
type CounterSummary struct {
	model.RollupResult
	Entries []*model.DailyCounter `json:"entries"`
}

func (uc *CounterUseCase) dayWindow(day types.Day) (time.Time, time.Time, error) {
	if day == "" {
		return time.Time{}, time.Time{}, newValidationError(ReasonDateRequired)
	}

	if !day.IsValid() {
		return time.Time{}, time.Time{}, newValidationError(ReasonInvalidDate)
	}

	start, err := day.Start(uc.location)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError(ReasonInvalidDate)
	}

	return start, start.AddDate(0, 0, 1), nil
}

// Add increments the counter of day by count, creating it when absent.
// A nil count means 1.
func (uc *CounterUseCase) Add(ctx context.Context, day types.Day, count *int) (*model.DailyCounter, error) {
	from, to, err := uc.dayWindow(day)
	if err != nil {
		return nil, err
	}

	n := 1
	if count != nil {
		n = *count
	}
	if n < 1 {
		return nil, newValidationError(ReasonInvalidCount)
	}
	if n > model.MaxCounterCount {
		return nil, newValidationError(ReasonCountTooLarge)
	}

	existing, err := uc.repo.Counter().FindInRange(ctx, from, to)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find counter", goerr.V("date", day))
	}

	if existing == nil {
		created, err := uc.repo.Counter().Create(ctx, &model.DailyCounter{
			Date:  from,
			Count: n,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create counter", goerr.V("date", day))
		}
		logging.From(ctx).Info("counter created", "id", created.ID, "date", day, "count", created.Count)
		return created, nil
	}

	if n > model.MaxCounterCount-existing.Count {
		return nil, newValidationError(ReasonCountTooLarge)
	}
	existing.Count += n
	updated, err := uc.repo.Counter().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update counter",
			goerr.V("id", existing.ID),
			goerr.V("date", day))
	}

	logging.From(ctx).Info("counter incremented", "id", updated.ID, "date", day, "count", updated.Count)
	return updated, nil
}

// Remove decrements the counter of day, deleting it instead of storing zero.
// It returns the counter's last state, or nil when there was no counter.
func (uc *CounterUseCase) Remove(ctx context.Context, day types.Day) (*model.DailyCounter, error) {
	from, to, err := uc.dayWindow(day)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.Counter().FindInRange(ctx, from, to)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find counter", goerr.V("date", day))
	}
	if existing == nil {
		return nil, nil
	}

	if existing.Count > 1 {
		existing.Count--
		updated, err := uc.repo.Counter().Update(ctx, existing)
		if err != nil {
			if isNotFound(err) {
				return nil, nil
			}
			return nil, goerr.Wrap(err, "failed to update counter",
				goerr.V("id", existing.ID),
				goerr.V("date", day))
		}
		logging.From(ctx).Info("counter decremented", "id", updated.ID, "date", day, "count", updated.Count)
		return updated, nil
	}

	if err := uc.repo.Counter().Delete(ctx, existing.ID); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to delete counter",
			goerr.V("id", existing.ID),
			goerr.V("date", day))
	}

	logging.From(ctx).Info("counter deleted", "id", existing.ID, "date", day)
	return existing, nil
}

// Summary returns the rollup of every counter relative to the current time
func (uc *CounterUseCase) Summary(ctx context.Context) (*CounterSummary, error) {
	counters, err := uc.repo.Counter().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list counters")
	}

	return &CounterSummary{
		RollupResult: model.Rollup(counters, uc.clock(), uc.location),
		Entries:      counters,
	}, nil
}
